package kgp

import "github.com/npillmayer/akshara"

// The KGP fonts write some characters out of logical order: subscript
// consonants and the arkavattu follow the syllable they logically
// precede, and the length marks complete a vowel sign emitted earlier.
// A rewriteRule inspects one such trigger glyph and splices the
// character into its logical place in the output buffer. Rules return
// false if the trigger is not theirs, handing it to the next rule in
// the chain.
type rewriteRule func(buf *akshara.Buffer, trigger rune) bool

// rewriteRules is the rewrite chain, checked in order for every glyph
// the table lookup does not match.
var rewriteRules = []rewriteRule{
	rewriteCluster,
	rewriteMedialR,
	rewriteLength,
}

// rewrite runs the trigger through the rewrite chain. Unclaimed runes
// are passed through unchanged.
func rewrite(buf *akshara.Buffer, trigger rune) {
	for _, rule := range rewriteRules {
		if rule(buf, trigger) {
			return
		}
	}
	buf.Append(trigger)
}

// rewriteCluster handles subscript consonant glyphs (ottu). The
// subscript follows the complete syllable in typing order, but its
// consonant belongs before the syllable's vowel sign:
//
//	ಅ ಕ ಿ | ಕ-subscript   ⇒   ಅ ಕ ್ ಕ ಿ
//
// If the syllable carries no vowel sign yet, virama and consonant are
// simply appended.
func rewriteCluster(buf *akshara.Buffer, trigger rune) bool {
	base, ok := clusterGlyphs[trigger]
	if !ok {
		return false
	}
	if last, has := buf.Last(); has && akshara.IsDependentMark(last) {
		buf.SpliceTail(1, akshara.Virama, base, last)
	} else {
		buf.SpliceTail(0, akshara.Virama, base)
	}
	tracer().Debugf("cluster rewrite %#U, buffer now %q", trigger, buf.String())
	return true
}

// rewriteMedialR handles the arkavattu: a trailing mark standing for a
// ರ್ that logically precedes the whole syllable it follows:
//
//	ಕ ೀ ತ ಿ | arkavattu   ⇒   ಕ ೀ ರ ್ ತ ಿ
func rewriteMedialR(buf *akshara.Buffer, trigger rune) bool {
	liquid, ok := medialRGlyphs[trigger]
	if !ok {
		return false
	}
	last, has := buf.Last()
	switch {
	case has && akshara.IsDependentMark(last) && buf.Len() >= 2:
		base := buf.At(buf.Len() - 2)
		buf.SpliceTail(2, liquid, akshara.Virama, base, last)
	case has:
		buf.SpliceTail(1, liquid, akshara.Virama, last)
	default:
		buf.SpliceTail(0, liquid, akshara.Virama)
	}
	tracer().Debugf("medial-R rewrite %#U, buffer now %q", trigger, buf.String())
	return true
}

// rewriteLength handles the shared length-mark glyphs. If the last
// output rune has a registered long form the mark upgrades it in place
// (ಿ becomes ೀ), otherwise the standalone mark is appended.
func rewriteLength(buf *akshara.Buffer, trigger rune) bool {
	rule, ok := lengthGlyphs[trigger]
	if !ok {
		return false
	}
	if last, has := buf.Last(); has {
		if long, canUpgrade := rule.upgrade[last]; canUpgrade {
			buf.SpliceTail(1, long)
			return true
		}
	}
	buf.Append(rule.def)
	return true
}
