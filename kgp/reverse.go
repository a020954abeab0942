package kgp

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/akshara"
)

// The reverse direction needs no automaton: it is a plain substitution
// over the inverted glyph table, applied longest Unicode sequence
// first. Where the forward table offers several legacy spellings for
// the same character, the shortest one wins, which makes the reverse
// conversion deterministic but lossy: converting back will not in
// general reproduce the original legacy spelling.

var reverseOnce sync.Once
var reverseIndex *treemap.Map       // Unicode sequence → legacy spelling, longest first
var reverseGlyphs map[string]string // plain lookup view of the same entries
var maxReverseLen int               // longest Unicode key, in runes

// byLengthDesc orders reverse keys longest first, with a lexical
// tie-break. Longer sequences must be substituted before their
// sub-sequences.
func byLengthDesc(a, b interface{}) int {
	ka, kb := a.(string), b.(string)
	la, lb := len([]rune(ka)), len([]rune(kb))
	if la != lb {
		return lb - la
	}
	return strings.Compare(ka, kb)
}

// shorterLegacy decides between competing legacy spellings for the same
// Unicode sequence. Keep-shortest with a lexical tie-break is
// independent of map iteration order.
func shorterLegacy(a, b string) bool {
	la, lb := len([]rune(a)), len([]rune(b))
	if la != lb {
		return la < lb
	}
	return a < b
}

func setupReverseIndex() {
	SetupGlyphTables()
	reverseGlyphs = make(map[string]string, len(glyphTable))
	put := func(uni, legacy string) {
		if prev, seen := reverseGlyphs[uni]; !seen || shorterLegacy(legacy, prev) {
			reverseGlyphs[uni] = legacy
		}
	}
	for legacy, uni := range glyphTable {
		put(uni, legacy)
	}
	// The long vowels ೀ ೇ ೈ ೋ have no glyph of their own; the fonts
	// compose them from a short sign plus a length mark. Derive their
	// spellings the same way.
	for trigger, rule := range lengthGlyphs {
		for short, long := range rule.upgrade {
			for legacy, uni := range glyphTable {
				runes := []rune(uni)
				if len(runes) == 0 || runes[len(runes)-1] != short {
					continue
				}
				composed := string(runes[:len(runes)-1]) + string(long)
				put(composed, legacy+string(trigger))
			}
		}
	}
	put(string(akshara.LengthMark), "Ã")
	put(string(akshara.AILengthMark), "Ê")
	// Joiners have no legacy counterpart; the forward conversion
	// re-inserts them where needed.
	put(string(akshara.ZWJ), "")
	put(string(akshara.ZWNJ), "")
	reverseIndex = treemap.NewWith(byLengthDesc)
	maxReverseLen = 0
	for uni, legacy := range reverseGlyphs {
		reverseIndex.Put(uni, legacy)
		if l := len([]rune(uni)); l > maxReverseLen {
			maxReverseLen = l
		}
	}
	tracer().Infof("KGP reverse index assembled, %d entries", reverseIndex.Size())
}

// FromUnicode converts Unicode Kannada text to the legacy KGP encoding.
// Characters without a reverse mapping are left as they are. The result
// renders correctly under the KGP fonts but may spell clusters
// differently than hand-typed legacy text would.
func (c *Converter) FromUnicode(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	if len([]rune(text)) > c.maxInput {
		return "", ErrInputTooLong
	}
	reverseOnce.Do(setupReverseIndex)
	out := text
	reverseIndex.Each(func(key, value interface{}) {
		out = strings.ReplaceAll(out, key.(string), value.(string))
	})
	return out, nil
}
