package akshara

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara")
	defer teardown()
	tests := []struct {
		r         rune
		kannada   bool
		consonant bool
		depVowel  bool
		depMark   bool
	}{
		{'ಕ', true, true, false, false},
		{'ಳ', true, true, false, false},
		{'ೞ', true, true, false, false},
		{'ಅ', true, false, false, false},
		{'ಔ', true, false, false, false},
		{'ಾ', true, false, true, true},
		{'ಿ', true, false, true, true},
		{'ೌ', true, false, true, true},
		{Virama, true, false, false, true},
		{LengthMark, true, false, true, true},
		{AILengthMark, true, false, true, true},
		{Anusvara, true, false, false, false},
		{'k', false, false, false, false},
		{'9', false, false, false, false},
		{ZWJ, false, false, false, false},
	}
	for _, test := range tests {
		if got := IsKannada(test.r); got != test.kannada {
			t.Errorf("IsKannada(%#U) = %v, want %v", test.r, got, test.kannada)
		}
		if got := IsConsonant(test.r); got != test.consonant {
			t.Errorf("IsConsonant(%#U) = %v, want %v", test.r, got, test.consonant)
		}
		if got := IsDependentVowel(test.r); got != test.depVowel {
			t.Errorf("IsDependentVowel(%#U) = %v, want %v", test.r, got, test.depVowel)
		}
		if got := IsDependentMark(test.r); got != test.depMark {
			t.Errorf("IsDependentMark(%#U) = %v, want %v", test.r, got, test.depMark)
		}
	}
}

func TestViramaIsNoVowel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "akshara")
	defer teardown()
	if IsDependentVowel(Virama) {
		t.Errorf("virama classified as dependent vowel, should only be a dependent mark")
	}
	if !IsDependentMark(Virama) {
		t.Errorf("virama not classified as dependent mark")
	}
}
