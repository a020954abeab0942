/*
Package akshara provides conversion between legacy 8-bit Kannada text
encodings and Unicode.

Description

Before Unicode support became ubiquitous, Kannada text was commonly stored
in "glyph encodings": 8-bit character sets in which each code unit selects
a visual glyph of a particular font rather than an abstract character.
The de-facto standard repertoire for these fonts was published by the
Kannada Ganaka Parishat (KGP) and shipped with the Nudi and Baraha editors.
A large body of documents, web pages and databases survives in this
encoding and is unreadable without the matching fonts.

Converting such text to Unicode is more than table lookup. Glyph encodings
store characters in visual (typing) order, while Unicode Kannada requires
logical order: base consonant first, then combining marks in a fixed
sequence. Several glyph conventions have no direct Unicode counterpart,
among them subscript consonant forms (ottu), the medial-r mark (arkavattu)
and length marks shared between several vowels. Their code units must be
merged and reordered into the already emitted output, with a zero-width
joiner inserted where distinct spellings would otherwise collapse. The
conversion is therefore a small lookback automaton over the emitted
output, implemented in package kgp.

Contents

Package akshara itself holds the script model: named code-points of the
Unicode Kannada block and classification predicates used by the converter
automaton. The conversion machinery lives in sub-packages:

▪︎ kgp: transcoding between the KGP/Nudi glyph encoding and Unicode,
including a streaming encoding.Encoding for io plumbing and batch
conversion with per-item degradation.

▪︎ phonetic: transliteration of romanized (Latin-alphabet) Kannada
syllables to Unicode, with a learned-words dictionary and a bounded
result cache.

▪︎ detect: a cheap statistical heuristic to decide whether a text is
legacy-encoded, and conversion statistics.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package akshara

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'akshara'
func tracer() tracing.Trace {
	return tracing.Select("akshara")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
