package kgp

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReverseConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	inputs := []struct {
		uni    string
		legacy string
	}{
		{"ಕನ್ನಡ", "PÀ££ÀqÀ"},
		{"ಕೈ", "PÉÊ"},
		{"ಕೀ", "QÃ"},
		{"ಖೀ", "RÂÃ"},        // no ligature for ಖಿ, composed from the bare hook
		{"ಅಮ್ಮ", "CªÀÄïªÀÄ"}, // no subscript in reverse, explicit halant instead
		{"", ""},
	}
	conv := NewConverter()
	for i, inp := range inputs {
		out, err := conv.FromUnicode(inp.uni)
		if err != nil {
			t.Errorf("test %d: reverse conversion of %q failed: %v", i, inp.uni, err)
		} else if out != inp.legacy {
			t.Errorf("test %d: expected %q to reverse to %q, got %q", i, inp.uni, inp.legacy, out)
		}
	}
}

func TestReverseIsLossy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	// The canonical legacy spelling uses the ottu glyph ß for the
	// second ನ. The reverse conversion spells the cluster with a dead
	// consonant instead: the spelling changes, the text does not.
	canonical := "PÀ£ÀßqÀ"
	uni, err := ToUnicode(canonical)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	back, err := FromUnicode(uni)
	if err != nil {
		t.Fatalf("reverse conversion failed: %v", err)
	}
	if back == canonical {
		t.Errorf("expected reverse to lose the ottu spelling, got the original %q", back)
	}
	again, err := ToUnicode(back)
	if err != nil {
		t.Fatalf("re-conversion failed: %v", err)
	}
	if again != uni {
		t.Errorf("reverse spelling must still convert to %q, got %q", uni, again)
	}
}

func TestReverseDropsJoiner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	uni, err := ToUnicode("¸ïY") // ಸ್ + ZWJ + ಙ
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	back, err := FromUnicode(uni)
	if err != nil {
		t.Fatalf("reverse conversion failed: %v", err)
	}
	if back != "¸Y" {
		t.Errorf("expected joiner to vanish in reverse, got %q", back)
	}
	again, err := ToUnicode(back)
	if err != nil {
		t.Fatalf("re-conversion failed: %v", err)
	}
	if again != uni {
		t.Errorf("joiner must reappear in forward conversion, got %q", again)
	}
}

func TestReverseLeavesUnknownAlone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	out, err := FromUnicode("ಕನ್ನಡ 123, ok?")
	if err != nil {
		t.Fatalf("reverse conversion failed: %v", err)
	}
	if out != "PÀ££ÀqÀ 123, ok?" {
		t.Errorf("expected non-Kannada text to pass through, got %q", out)
	}
}

func TestReverseCeiling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	conv := NewConverter()
	conv.SetInputLimit(3)
	_, err := conv.FromUnicode("ಕನ್ನಡ")
	if !errors.Is(err, ErrInputTooLong) {
		t.Errorf("expected ErrInputTooLong, got %v", err)
	}
}
