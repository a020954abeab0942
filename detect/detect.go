/*
Package detect guesses whether a text still carries the legacy KGP
glyph encoding, and measures conversion results.

The heuristic is statistical, there is no marker byte to look for: it
counts runes that only make sense as legacy glyph units. ASCII letters
are never counted (a legacy text is full of them, but so is English),
so the verdict rests on the high Latin-1 glyph units the KGP repertoire
squats on.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

License information is available in the LICENSE file.
*/
package detect

import (
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/akshara"
	"github.com/npillmayer/akshara/kgp"
	"github.com/npillmayer/schuko/tracing"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'akshara.detect'
func tracer() tracing.Trace {
	return tracing.Select("akshara.detect")
}

// Context represents information about the text environment a client
// operates in: which script converted text is expected to be in, the
// user's locale, and how suspicious a text has to look before it is
// flagged as legacy-encoded.
type Context struct {
	Threshold float64         // share of glyph-unit runes that flags a text
	Script    language.Script // ISO 15924 script identifier
	Locale    string          // ISO 639/3166 locale string
}

// KannadaContext is the default context for Kannada text.
var KannadaContext = makeKannadaContext()

func makeKannadaContext() *Context {
	ctx := &Context{
		Threshold: 0.3,
		Script:    language.MustParseScript("Knda"),
		Locale:    "kn-IN",
	}
	return ctx
}

// ContextFromEnvironment creates a Context from the user's environment,
// i.e. the OS-level locale setting. With no locale to be found, the
// Kannada default applies.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = KannadaContext.Locale
		tracer().Infof("detection sets default user locale %v", userLocale)
	} else {
		tracer().Infof("detection found user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	script, _ := lang.Script()
	ctx := &Context{
		Threshold: KannadaContext.Threshold,
		Script:    script,
		Locale:    userLocale,
	}
	return ctx
}

// LooksEncoded reports whether text is probably legacy-encoded, i.e.
// whether running it through the kgp converter is worthwhile. A nil
// context means KannadaContext. Empty text is never flagged.
func LooksEncoded(text string, ctx *Context) bool {
	if ctx == nil {
		ctx = KannadaContext
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	evidence := lo.CountBy(runes, isLegacyEvidence)
	ratio := float64(evidence) / float64(len(runes))
	tracer().Debugf("%d of %d runes are legacy glyph units (%.2f)", evidence, len(runes), ratio)
	return ratio > ctx.Threshold
}

// isLegacyEvidence reports whether r counts toward the legacy verdict.
// Kannada runes are proof of the opposite, and ASCII is ambiguous: both
// are ignored.
func isLegacyEvidence(r rune) bool {
	if r <= unicode.MaxASCII || akshara.IsKannada(r) {
		return false
	}
	return kgp.IsGlyphUnit(r)
}
