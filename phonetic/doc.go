/*
Package phonetic turns romanized Kannada into Kannada script.

Input is the informal Latin romanization Kannada speakers type on QWERTY
keyboards ("namaskara", "kannada"). Conversion is a greedy longest-match
scan against three syllable tables (conjunct clusters, consonant+vowel
syllables, independent vowels), tried in that order. A small dictionary
of whole words short-circuits the scan for common words the folded
romanization cannot spell exactly, and clients can teach additional
words at runtime.

The default tables are case-folded: retroflex/dental pairs collapse and
vowel length is approximated, which is how people actually type. A
case-sensitive scheme in the Baraha tradition (T for ಟ, E for ೇ) is
available through Options.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

License information is available in the LICENSE file.
*/
package phonetic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'akshara.phonetic'
func tracer() tracing.Trace {
	return tracing.Select("akshara.phonetic")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
