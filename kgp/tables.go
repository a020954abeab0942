package kgp

import (
	"sync"

	"github.com/npillmayer/akshara"
)

// The glyph repertoire, split the way the KGP fonts organize it. The
// source maps below are seed data; setupGlyphTables assembles them into
// the one frozen lookup table the converter scans against.

// Independent vowels, anusvara and visarga. These glyphs are complete
// characters of their own.
var vowelGlyphs = map[string]string{
	"C": "ಅ", "D": "ಆ", "E": "ಇ", "F": "ಈ", "G": "ಉ", "H": "ಊ",
	"IÄ": "ಋ", "J": "ಎ", "K": "ಏ", "L": "ಐ", "M": "ಒ", "N": "ಓ", "O": "ಔ",
	"A": "ಂ", "B": "ಃ",
}

// Consonants whose full form (inherent vowel a) is a single glyph
// sequence of its own, plus the irregular multi-unit forms.
var fullFormGlyphs = map[string]string{
	"R": "ಖ", "Y": "ಙ", "d": "ಜ", "k": "ಞ", "l": "ಟ", "t": "ಣ",
	"§": "ಬ", "®": "ಲ",
	"ªÀÄ": "ಮ", "AiÀÄ": "ಯ", "gÀhÄ": "ಝ", "PëÀ": "ಕ್ಷ",
}

// Skeleton glyphs: consonant shapes awaiting a vowel completion. The
// table builder derives their full and vowelled forms; a bare skeleton
// (input truncated before its completion) maps to the dead consonant.
var skeletonGlyphs = map[string]rune{
	"P": 'ಕ', "S": 'ಖ', "U": 'ಗ', "W": 'ಘ', "Z": 'ಚ', "b": 'ಛ', "e": 'ಜ',
	"m": 'ಟ', "o": 'ಠ', "q": 'ಡ', "qs": 'ಢ', "u": 'ಣ', "v": 'ತ', "x": 'ಥ',
	"z": 'ದ', "zs": 'ಧ', "£": 'ನ', "¥": 'ಪ', "¥s": 'ಫ', "¨": 'ಬ', "¨s": 'ಭ',
	"g": 'ರ', "¯": 'ಲ', "ª": 'ವ', "±": 'ಶ', "µ": 'ಷ', "¸": 'ಸ', "º": 'ಹ',
	"¼": 'ಳ',
}

// Vowel completions a skeleton combines with. The empty sign is the
// inherent vowel; the ಿ row is missing because the fonts precompose it.
var completionGlyphs = []struct {
	glyph string
	sign  string
}{
	{"À", ""},
	{"Á", "ಾ"},
	{"É", "ೆ"},
	{"ÉÆ", "ೊ"},
	{"Ë", "ೌ"},
}

// Precomposed consonant+ಿ ligature glyphs.
var iFormGlyphs = map[string]string{
	"Q": "ಕಿ", "V": "ಗಿ", "a": "ಚಿ", "f": "ಜಿ", "n": "ಟಿ", "w": "ತಿ",
	"j": "ರಿ", "¢": "ದಿ", "¤": "ನಿ", "¦": "ಪಿ", "©": "ಬಿ", "«": "ವಿ",
	"²": "ಶಿ", "¹": "ಸಿ", "»": "ಹಿ", "½": "ಳಿ", "°": "ಲಿ",
}

// Dependent signs that append to whatever precedes them, and the
// explicit halant form. The bare ಿ hook is rare in running text (the
// fonts precompose it) but exists for consonants without a ligature.
var signGlyphs = map[string]string{
	"Á": "ಾ", "Â": "ಿ", "Ä": "ು", "Æ": "ೂ", "È": "ೃ", "É": "ೆ", "ÉÆ": "ೊ",
	"Ë": "ೌ", "ï": "್",
}

// Subscript consonant glyphs (ottu). The glyph is written after the
// complete syllable; the base consonant it selects belongs before the
// syllable's vowel sign. ಙ and ಝ have no subscript form in the fonts.
var clusterGlyphs = map[rune]rune{
	'Ì': 'ಕ', 'Í': 'ಖ', 'Î': 'ಗ', 'Ï': 'ಘ', 'Ñ': 'ಚ', 'Ò': 'ಛ', 'Ó': 'ಜ',
	'Õ': 'ಞ', 'Ö': 'ಟ', '×': 'ಠ', 'Ø': 'ಡ', 'Ù': 'ಢ', 'Ú': 'ಣ', 'Û': 'ತ',
	'Ü': 'ಥ', 'Ý': 'ದ', 'Þ': 'ಧ', 'ß': 'ನ', 'à': 'ಪ', 'á': 'ಫ', 'â': 'ಬ',
	'ã': 'ಭ', 'ä': 'ಮ', 'å': 'ಯ', 'æ': 'ರ', 'è': 'ಲ', 'é': 'ವ', 'ê': 'ಶ',
	'ë': 'ಷ', 'ì': 'ಸ', 'í': 'ಹ', 'î': 'ಳ',
}

// The arkavattu: a mark written after a syllable, standing for a ರ್ that
// logically precedes it.
var medialRGlyphs = map[rune]rune{
	'ð': akshara.RA,
}

// A lengthRule resolves one of the shared length-mark glyphs: if the
// preceding sign has a registered long form, it is upgraded in place,
// otherwise def is appended standalone.
type lengthRule struct {
	def     rune
	upgrade map[rune]rune
}

// The two length-mark glyphs. Their upgrades are the two-part vowel sign
// compositions of Unicode Kannada (ಿ+ೕ→ೀ and friends).
var lengthGlyphs = map[rune]lengthRule{
	'Ã': {def: akshara.LengthMark, upgrade: map[rune]rune{
		'ಿ': 'ೀ',
		'ೆ': 'ೇ',
		'ೊ': 'ೋ',
	}},
	'Ê': {def: akshara.AILengthMark, upgrade: map[rune]rune{
		'ೆ': 'ೈ',
	}},
}

// Font-only artifacts that carry no character: consumed without output.
var ignoreGlyphs = map[rune]bool{
	'ü': true,
	'þ': true,
}

var glyphTable map[string]string // the assembled forward table
var clusterBases map[rune]bool   // consonants reachable as subscript forms
var glyphUnits map[rune]bool     // every rune occurring in any glyph sequence
var maxGlyphLen int              // longest legacy sequence, in runes

var setupOnce sync.Once

// SetupGlyphTables is the top-level preparation function: it assembles
// the frozen forward table from the seed maps. Called implicitly by
// NewConverter; idempotent and safe for concurrent use.
func SetupGlyphTables() {
	setupOnce.Do(setupGlyphTables)
}

func setupGlyphTables() {
	glyphTable = make(map[string]string, 300)
	for k, v := range vowelGlyphs {
		glyphTable[k] = v
	}
	for k, v := range fullFormGlyphs {
		glyphTable[k] = v
	}
	for k, v := range iFormGlyphs {
		glyphTable[k] = v
	}
	for k, v := range signGlyphs {
		glyphTable[k] = v
	}
	for skel, c := range skeletonGlyphs {
		glyphTable[skel] = string(c) + string(akshara.Virama)
		glyphTable[skel+"ï"] = string(c) + string(akshara.Virama)
		for _, compl := range completionGlyphs {
			glyphTable[skel+compl.glyph] = string(c) + compl.sign
		}
	}
	clusterBases = make(map[rune]bool, len(clusterGlyphs))
	for _, base := range clusterGlyphs {
		clusterBases[base] = true
	}
	glyphUnits = make(map[rune]bool, 200)
	maxGlyphLen = 0
	for k := range glyphTable {
		if l := len([]rune(k)); l > maxGlyphLen {
			maxGlyphLen = l
		}
		for _, r := range k {
			glyphUnits[r] = true
		}
	}
	for r := range clusterGlyphs {
		glyphUnits[r] = true
	}
	for r := range medialRGlyphs {
		glyphUnits[r] = true
	}
	for r := range lengthGlyphs {
		glyphUnits[r] = true
	}
	for r := range ignoreGlyphs {
		glyphUnits[r] = true
	}
	tracer().Infof("KGP glyph table assembled, %d entries", len(glyphTable))
}

// lookupGlyph reports the longest table entry matching a prefix of
// word[i:], honoring maximal munch.
func lookupGlyph(word []rune, i int) (expansion string, matched int, ok bool) {
	limit := min(maxGlyphLen, len(word)-i)
	for l := limit; l >= 1; l-- {
		if exp, hit := glyphTable[string(word[i:i+l])]; hit {
			return exp, l, true
		}
	}
	return "", 0, false
}

// IsGlyphUnit returns true if r occurs in any glyph sequence of the
// repertoire, as a table key unit or as a marker handled by the rewrite
// chain. The encoding-detection heuristic in package detect relies on
// this.
func IsGlyphUnit(r rune) bool {
	SetupGlyphTables()
	return glyphUnits[r]
}
