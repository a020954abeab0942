package akshara

import "unicode"

// Named code-points of the Unicode Kannada block (U+0C80–U+0CFF) and the
// joiner controls. The converter automaton refers to these by name.
const (
	Anusvara     rune = 'ಂ'      // KANNADA SIGN ANUSVARA
	Visarga      rune = 'ಃ'      // KANNADA SIGN VISARGA
	Virama       rune = '್'      // KANNADA SIGN VIRAMA, the vowel-killer
	LengthMark   rune = 'ೕ'      // KANNADA LENGTH MARK
	AILengthMark rune = 'ೖ'      // KANNADA AI LENGTH MARK
	RA           rune = 'ರ'      // KANNADA LETTER RA, hoisted by the arkavattu rule
	ZWJ          rune = '\u200d' // ZERO WIDTH JOINER
	ZWNJ         rune = '\u200c' // ZERO WIDTH NON-JOINER
)

// Consonants of the Kannada block, including the deprecated letter FA
// (U+0CDE), which still occurs in converted legacy documents.
var consonants = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0c95, Hi: 0x0cb9, Stride: 1},
		{Lo: 0x0cde, Hi: 0x0cde, Stride: 1},
	},
}

// Dependent vowel signs, i.e. the combining marks a consonant carries to
// change its inherent vowel. The two length marks are included: they are
// the second halves of the two-part signs ೀ, ೇ, ೈ, ೋ.
var dependentVowels = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0cbe, Hi: 0x0cc4, Stride: 1},
		{Lo: 0x0cc6, Hi: 0x0cc8, Stride: 1},
		{Lo: 0x0cca, Hi: 0x0ccc, Stride: 1},
		{Lo: 0x0cd5, Hi: 0x0cd6, Stride: 1},
	},
}

// IsKannada returns true if r is part of the Unicode Kannada block.
func IsKannada(r rune) bool {
	return unicode.Is(unicode.Kannada, r)
}

// IsConsonant returns true if r is a Kannada consonant letter.
func IsConsonant(r rune) bool {
	return unicode.Is(consonants, r)
}

// IsDependentVowel returns true if r is a dependent vowel sign (matra),
// including the length marks.
func IsDependentVowel(r rune) bool {
	return unicode.Is(dependentVowels, r)
}

// IsDependentMark returns true if r is a combining mark that attaches to a
// preceding consonant: a dependent vowel sign or the virama. This is the
// set the converter automaton recognizes when it inspects already emitted
// output.
func IsDependentMark(r rune) bool {
	return r == Virama || unicode.Is(dependentVowels, r)
}
