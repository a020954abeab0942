package detect

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.detect")
	defer teardown()
	stats := Measure("PÀ£ÀßqÀ", "ಕನ್ನಡ")
	if stats.OriginalLength != 7 {
		t.Errorf("expected 7 input runes, got %d", stats.OriginalLength)
	}
	if stats.ConvertedLength != 5 {
		t.Errorf("expected 5 output runes, got %d", stats.ConvertedLength)
	}
	if stats.ScriptRunes != 5 {
		t.Errorf("expected 5 Kannada runes, got %d", stats.ScriptRunes)
	}
	if stats.Compression != 5.0/7.0 {
		t.Errorf("expected compression 5/7, got %f", stats.Compression)
	}
}

func TestMeasureNonKannada(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.detect")
	defer teardown()
	stats := Measure("hello", "hello")
	if stats.ScriptRunes != 0 || stats.Compression != 1.0 {
		t.Errorf("expected no Kannada and ratio 1 for ASCII text, got %v", stats)
	}
	empty := Measure("", "")
	if empty.Compression != 0 {
		t.Errorf("empty input must not divide by zero, got %v", empty)
	}
}

func TestStatsString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara.detect")
	defer teardown()
	s := Measure("PÀ£ÀßqÀ", "ಕನ್ನಡ").String()
	if !strings.Contains(s, "5 Kannada") || !strings.Contains(s, "0.71") {
		t.Errorf("unexpected stats rendering %q", s)
	}
}
