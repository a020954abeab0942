/*
Package kgp transcodes between the legacy KGP glyph encoding for Kannada
and Unicode.

The Kannada Ganaka Parishat (KGP) glyph repertoire is the 8-bit encoding
behind the Nudi and Baraha compatible fonts of the pre-Unicode era. Each
code unit selects a glyph shape: consonant skeletons, vowel completions,
subscript consonant forms (ottu), the medial-r mark (arkavattu) and shared
length marks. Text is stored in visual typing order.

Unicode Kannada instead wants logical order, base consonant first and
combining marks after, so forward conversion is more than lookup: a small
automaton inspects the tail of the already emitted output and reorders,
merges or joins when one of the special glyphs arrives.
Conversion is word-scoped; words are independent of each other.

The reverse direction (Unicode to glyphs) is a greedy longest-first
substitution over an inverted table. It has no automaton and cannot
reproduce the special-glyph constructs, so round trips will not in
general return the original spelling.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

License information is available in the LICENSE file.
*/
package kgp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'akshara.kgp'
func tracer() tracing.Trace {
	return tracing.Select("akshara.kgp")
}
