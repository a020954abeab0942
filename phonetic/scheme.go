package phonetic

import "github.com/npillmayer/akshara"

// Seed data for the transliteration scheme. buildTables composes it
// into the three lookup tables the scanner works with: every consonant
// (or cluster) is crossed with every vowel ending, plus a bare dead
// form for cluster building.

type mapping struct {
	rom string
	uni string
}

// Consonant bases of the folded scheme. Digraph aspirates sort after
// their plain partner only by accident of spelling; lookup order is by
// length, so "kha" never parses as "k"+"ha".
var baseConsonants = []mapping{
	{"k", "ಕ"}, {"kh", "ಖ"}, {"g", "ಗ"}, {"gh", "ಘ"},
	{"ch", "ಚ"}, {"c", "ಚ"}, {"chh", "ಛ"}, {"j", "ಜ"}, {"jh", "ಝ"},
	{"t", "ತ"}, {"th", "ಥ"}, {"d", "ದ"}, {"dh", "ಧ"}, {"n", "ನ"},
	{"p", "ಪ"}, {"ph", "ಫ"}, {"f", "ಫ"}, {"b", "ಬ"}, {"bh", "ಭ"},
	{"m", "ಮ"}, {"y", "ಯ"}, {"r", "ರ"}, {"l", "ಲ"}, {"v", "ವ"},
	{"w", "ವ"}, {"sh", "ಶ"}, {"s", "ಸ"}, {"h", "ಹ"},
}

// Additional bases of the case-sensitive scheme: retroflex consonants
// in the Baraha tradition.
var casedConsonants = []mapping{
	{"T", "ಟ"}, {"Th", "ಠ"}, {"D", "ಡ"}, {"Dh", "ಢ"}, {"N", "ಣ"},
	{"S", "ಷ"}, {"Sh", "ಷ"}, {"L", "ಳ"},
}

// Vowel endings and their dependent signs. The empty sign is the
// inherent vowel.
var baseMatras = []mapping{
	{"a", ""}, {"aa", "ಾ"}, {"i", "ಿ"}, {"ii", "ೀ"}, {"ee", "ೀ"},
	{"u", "ು"}, {"uu", "ೂ"}, {"oo", "ೂ"},
	{"e", "ೆ"}, {"ai", "ೈ"}, {"o", "ೊ"}, {"au", "ೌ"}, {"ou", "ೌ"},
}

var casedMatras = []mapping{
	{"A", "ಾ"}, {"I", "ೀ"}, {"U", "ೂ"}, {"E", "ೇ"}, {"O", "ೋ"},
	{"Ru", "ೃ"},
}

// Independent vowels, for word-initial position and vowel sequences.
var baseVowels = []mapping{
	{"a", "ಅ"}, {"aa", "ಆ"}, {"i", "ಇ"}, {"ii", "ಈ"}, {"ee", "ಈ"},
	{"u", "ಉ"}, {"uu", "ಊ"}, {"oo", "ಊ"},
	{"e", "ಎ"}, {"ai", "ಐ"}, {"o", "ಒ"}, {"au", "ಔ"}, {"ou", "ಔ"},
}

var casedVowels = []mapping{
	{"A", "ಆ"}, {"I", "ಈ"}, {"U", "ಊ"}, {"E", "ಏ"}, {"O", "ಓ"},
	{"Ru", "ಋ"}, {"M", "ಂ"}, {"H", "ಃ"},
}

// Cluster literals the composition rules below cannot derive: ಷ and ಞ
// are unreachable in the folded scheme except through these.
var literalClusters = []mapping{
	{"ksh", "ಕ್ಷ"},
	{"jn", "ಜ್ಞ"},
	{"gn", "ಜ್ಞ"},
}

// Geminates of the aspirated consonants double the plain partner:
// ಕ್ಖ is romanized "kkh", not "khkh".
var aspirateGeminates = []mapping{
	{"kkh", "ಕ್ಖ"}, {"ggh", "ಗ್ಘ"}, {"cch", "ಚ್ಛ"}, {"jjh", "ಜ್ಝ"},
	{"tth", "ತ್ಥ"}, {"ddh", "ದ್ಧ"}, {"pph", "ಪ್ಫ"}, {"bbh", "ಬ್ಭ"},
}

// dictionary is the stock whole-word fast path: common words whose
// folded romanization the tables cannot spell exactly (vowel length,
// retroflexes, anusvara). Keys are lower case.
var dictionary = map[string]string{
	"namaskara":  "ನಮಸ್ಕಾರ",
	"namaste":    "ನಮಸ್ತೆ",
	"kannada":    "ಕನ್ನಡ",
	"karnataka":  "ಕರ್ನಾಟಕ",
	"bengaluru":  "ಬೆಂಗಳೂರು",
	"mysuru":     "ಮೈಸೂರು",
	"dhanyavada": "ಧನ್ಯವಾದ",
	"shubhodaya": "ಶುಭೋದಯ",
	"chennagide": "ಚೆನ್ನಾಗಿದೆ",
	"hrudaya":    "ಹೃದಯ",
}

// buildTables composes the seed data into the three scan tables.
// Conjunct entries are generated, not listed: single-letter geminates
// (kk → ಕ್ಕ), r-clusters (kr → ಕ್ರ, also shr → ಶ್ರ), aspirate
// geminates and the literals, each crossed with every vowel ending.
func buildTables(caseSensitive bool) (conjuncts, consonants, vowels map[string]string) {
	consonantSet := baseConsonants
	matraSet := baseMatras
	vowelSet := baseVowels
	if caseSensitive {
		consonantSet = append(append([]mapping{}, baseConsonants...), casedConsonants...)
		matraSet = append(append([]mapping{}, baseMatras...), casedMatras...)
		vowelSet = append(append([]mapping{}, baseVowels...), casedVowels...)
	}
	syllables := func(table map[string]string, rom, cluster string) {
		table[rom] = cluster + string(akshara.Virama) // bare dead form
		for _, m := range matraSet {
			table[rom+m.rom] = cluster + m.uni
		}
	}
	consonants = make(map[string]string, len(consonantSet)*(len(matraSet)+1))
	for _, c := range consonantSet {
		syllables(consonants, c.rom, c.uni)
	}
	conjuncts = make(map[string]string, 3*len(consonantSet)*(len(matraSet)+1))
	for _, c := range consonantSet {
		if len(c.rom) == 1 {
			syllables(conjuncts, c.rom+c.rom, c.uni+string(akshara.Virama)+c.uni)
		}
		syllables(conjuncts, c.rom+"r", c.uni+string(akshara.Virama)+string(akshara.RA))
	}
	for _, g := range aspirateGeminates {
		syllables(conjuncts, g.rom, g.uni)
	}
	for _, l := range literalClusters {
		syllables(conjuncts, l.rom, l.uni)
	}
	vowels = make(map[string]string, len(vowelSet))
	for _, v := range vowelSet {
		vowels[v.rom] = v.uni
	}
	tracer().Infof("phonetic tables assembled, %d+%d+%d entries",
		len(conjuncts), len(consonants), len(vowels))
	return conjuncts, consonants, vowels
}
