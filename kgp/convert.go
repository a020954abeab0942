package kgp

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/akshara"
)

// MaxInput is the default ceiling for a single conversion call, counted
// in runes. Clients are expected to chunk long documents.
const MaxInput = 100_000

// ErrInputTooLong flags input beyond the converter's input limit. No
// partial output is produced for such input.
var ErrInputTooLong = errors.New("KGP converter: input too long")

// ConversionError reports a failure to convert a single word. The
// offending input is carried for clients that want to fall back to it.
type ConversionError struct {
	Op    string // "to-unicode" or "from-unicode"
	Input string // the word that failed
	Issue string // what went wrong
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("KGP converter: %s of %q failed: %s", e.Op, e.Input, e.Issue)
}

// Converter translates between the legacy KGP glyph encoding and
// Unicode Kannada. Converters are stateless between calls and safe for
// concurrent use. Create them with NewConverter.
type Converter struct {
	maxInput int
}

// NewConverter creates a Converter with the default input limit.
func NewConverter() *Converter {
	SetupGlyphTables()
	return &Converter{maxInput: MaxInput}
}

// SetInputLimit overrides the rune ceiling for subsequent conversions.
// A non-positive limit reinstates the default.
func (c *Converter) SetInputLimit(limit int) {
	if limit <= 0 {
		limit = MaxInput
	}
	c.maxInput = limit
}

// ToUnicode converts legacy-encoded text to Unicode Kannada. Conversion
// is word by word, whitespace is preserved. Characters the glyph table
// does not know pass through unchanged, so mixed Kannada/Latin text
// survives.
func (c *Converter) ToUnicode(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	if len([]rune(text)) > c.maxInput {
		return "", ErrInputTooLong
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		words := strings.Split(line, " ")
		for j, word := range words {
			conv, err := c.convertWord(word)
			if err != nil {
				return "", err
			}
			words[j] = conv
		}
		lines[i] = strings.Join(words, " ")
	}
	return strings.Join(lines, "\n"), nil
}

// convertWord runs the glyph automaton over a single word: maximal-munch
// table lookup first, then the rewrite chain for marker glyphs, with
// pass-through as the final fallback. Word boundaries reset the
// automaton, which is what makes converters stateless between calls.
func (c *Converter) convertWord(word string) (out string, err error) {
	if word == "" {
		return "", nil
	}
	buf := akshara.BorrowBuffer()
	defer buf.Release()
	defer func() {
		if r := recover(); r != nil {
			err = &ConversionError{Op: "to-unicode", Input: word, Issue: fmt.Sprint(r)}
			tracer().Errorf("%v", err)
			out = ""
		}
	}()
	runes := []rune(word)
	for i := 0; i < len(runes); {
		if ignoreGlyphs[runes[i]] {
			i++
			continue
		}
		if expansion, n, ok := lookupGlyph(runes, i); ok {
			exp := []rune(expansion)
			if last, has := buf.Last(); has && last == akshara.Virama &&
				akshara.IsConsonant(exp[0]) && !clusterBases[exp[0]] {
				// no subscript form exists, keep the halant visible
				buf.Append(akshara.ZWJ)
			}
			buf.AppendString(expansion)
			i += n
			continue
		}
		rewrite(buf, runes[i])
		i++
	}
	buf.Dump()
	return buf.String(), nil
}

var defOnce sync.Once
var defConverter *Converter

func defconv() *Converter {
	defOnce.Do(func() {
		defConverter = NewConverter()
	})
	return defConverter
}

// ToUnicode converts text with a package-default converter.
func ToUnicode(text string) (string, error) {
	return defconv().ToUnicode(text)
}

// FromUnicode converts text with a package-default converter.
func FromUnicode(text string) (string, error) {
	return defconv().FromUnicode(text)
}
