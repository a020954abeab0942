package kgp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWordConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	inputs := []struct {
		legacy string
		uni    string
	}{
		{"PÀ£ÀßqÀ", "ಕನ್ನಡ"},
		{"CPÀÌ", "ಅಕ್ಕ"},
		{"CªÀÄä", "ಅಮ್ಮ"},
		{"ªÀÄ£É", "ಮನೆ"},
		{"¨sÁµÉ", "ಭಾಷೆ"},
		{"ºÀ¼ÉUÀ£ÀßqÀ", "ಹಳೆಗನ್ನಡ"},
		{"¸ÀA¸ÀÌÈvÀ", "ಸಂಸ್ಕೃತ"},
		{"zsÀªÀÄð", "ಧರ್ಮ"},
		{"PÁAiÀÄð", "ಕಾರ್ಯ"},
		{"PÀ£ï", "ಕನ್"},
		{"", ""},
	}
	conv := NewConverter()
	for i, inp := range inputs {
		out, err := conv.ToUnicode(inp.legacy)
		if err != nil {
			t.Errorf("test %d: conversion of %q failed: %v", i, inp.legacy, err)
		} else if out != inp.uni {
			t.Errorf("test %d: expected %q to convert to %q, got %q", i, inp.legacy, inp.uni, out)
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	// 'A' alone is the anusvara, but as the head of the 4-glyph
	// sequence for ಯ it must not be matched on its own. Same game for
	// 'g' = ರ within the sequence for ಝ.
	inputs := []struct {
		legacy string
		uni    string
	}{
		{"A", "ಂ"},
		{"AiÀÄ", "ಯ"},
		{"AiÀÄªÀÄ", "ಯಮ"},
		{"gÀ", "ರ"},
		{"gÀhÄ", "ಝ"},
	}
	for i, inp := range inputs {
		out, err := ToUnicode(inp.legacy)
		if err != nil {
			t.Errorf("test %d: conversion of %q failed: %v", i, inp.legacy, err)
		} else if out != inp.uni {
			t.Errorf("test %d: expected %q to convert to %q, got %q", i, inp.legacy, inp.uni, out)
		}
	}
}

func TestClusterRelocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	// The subscript glyph follows the vowel sign in typing order; the
	// consonant it stands for belongs before it.
	out, err := ToUnicode("CQÌ")
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if out != "ಅಕ್ಕಿ" {
		t.Errorf("expected ottu to move before the vowel sign, got %q", out)
	}
}

func TestMedialR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	// The arkavattu trails the syllable; the ರ್ it stands for heads it.
	inputs := []struct {
		legacy string
		uni    string
	}{
		{"PÀªÀÄð", "ಕರ್ಮ"},
		{"QÃwð", "ಕೀರ್ತಿ"},
	}
	for i, inp := range inputs {
		out, err := ToUnicode(inp.legacy)
		if err != nil {
			t.Errorf("test %d: conversion of %q failed: %v", i, inp.legacy, err)
		} else if out != inp.uni {
			t.Errorf("test %d: expected %q to convert to %q, got %q", i, inp.legacy, inp.uni, out)
		}
	}
}

func TestLengthMarks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	inputs := []struct {
		legacy string
		uni    string
	}{
		{"QÃ", "ಕೀ"},
		{"PÉÃ", "ಕೇ"},
		{"PÉÆÃn", "ಕೋಟಿ"},
		{"PÉÊ", "ಕೈ"},
	}
	for i, inp := range inputs {
		out, err := ToUnicode(inp.legacy)
		if err != nil {
			t.Errorf("test %d: conversion of %q failed: %v", i, inp.legacy, err)
		} else if out != inp.uni {
			t.Errorf("test %d: expected %q to convert to %q, got %q", i, inp.legacy, inp.uni, out)
		}
	}
}

func TestMarkersOnEmptyBuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	// Marker glyphs at the start of a word have nothing to rewrite.
	// Conversion must stay total: degraded output, no panic.
	inputs := []struct {
		legacy string
		uni    string
	}{
		{"Ì", "್ಕ"},
		{"ð", "ರ್"},
		{"Ã", "ೕ"},
	}
	for i, inp := range inputs {
		out, err := ToUnicode(inp.legacy)
		if err != nil {
			t.Errorf("test %d: conversion of %q failed: %v", i, inp.legacy, err)
		} else if out != inp.uni {
			t.Errorf("test %d: expected %q to convert to %q, got %q", i, inp.legacy, inp.uni, out)
		}
	}
}

func TestJoinerInsertion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	// ಙ has no subscript form: a ZWJ keeps the halant of ಸ್ visible.
	// ಕ has one, so no joiner is inserted there.
	out, err := ToUnicode("¸ïY")
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if out != "ಸ್\u200dಙ" {
		t.Errorf("expected joiner after dead consonant, got %q", out)
	}
	out, err = ToUnicode("¸ïPÀ")
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if out != "ಸ್ಕ" {
		t.Errorf("expected no joiner before subscript-capable ಕ, got %q", out)
	}
}

func TestIgnoredGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	out, err := ToUnicode("PÀü")
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if out != "ಕ" {
		t.Errorf("expected font artifact to be dropped, got %q", out)
	}
}

func TestPassThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	inputs := []struct {
		legacy string
		uni    string
	}{
		{"9:30", "9:30"},
		{"PÀ£ÀßqÀ 123", "ಕನ್ನಡ 123"},
		{"PÀ£ÀßqÀ, ¨sÁµÉ!", "ಕನ್ನಡ, ಭಾಷೆ!"},
	}
	for i, inp := range inputs {
		out, err := ToUnicode(inp.legacy)
		if err != nil {
			t.Errorf("test %d: conversion of %q failed: %v", i, inp.legacy, err)
		} else if out != inp.uni {
			t.Errorf("test %d: expected %q to convert to %q, got %q", i, inp.legacy, inp.uni, out)
		}
	}
}

func TestWordsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	// Lookback must not cross a word boundary: with a space between
	// them, the dead consonant and ಙ do not attract a joiner.
	out, err := ToUnicode("¸ï Y")
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if out != "ಸ್ ಙ" {
		t.Errorf("expected no joiner across word boundary, got %q", out)
	}
	out, err = ToUnicode("C\nD")
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if out != "ಅ\nಆ" {
		t.Errorf("expected newline to be preserved, got %q", out)
	}
}

func TestInputCeiling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.kgp")
	defer teardown()
	conv := NewConverter()
	conv.SetInputLimit(5)
	out, err := conv.ToUnicode("PÀ£ÀßqÀ") // 7 glyphs
	if !errors.Is(err, ErrInputTooLong) {
		t.Errorf("expected ErrInputTooLong, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no partial output, got %q", out)
	}
	if _, err = conv.ToUnicode("CPÀÌ"); err != nil { // 4 glyphs, fits
		t.Errorf("input within limit should convert, got %v", err)
	}
	conv.SetInputLimit(0) // back to default
	if _, err = conv.ToUnicode("PÀ£ÀßqÀ"); err != nil {
		t.Errorf("default limit should accept ordinary words, got %v", err)
	}
}

func ExampleToUnicode() {
	out, err := ToUnicode("PÀ£ÀßqÀ ¨sÁµÉ")
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println(out)
	// Output: ಕನ್ನಡ ಭಾಷೆ
}
