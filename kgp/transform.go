package kgp

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Encoding is the legacy KGP glyph encoding, wrapped as an
// encoding.Encoding for the x/text transform machinery. Its decoder
// turns legacy bytes into Unicode Kannada, its encoder goes the other
// way. This is the interface to use for streaming whole files:
//
//	r := transform.NewReader(file, kgp.Encoding.NewDecoder())
var Encoding encoding.Encoding = glyphEncoding{}

type glyphEncoding struct{}

func (glyphEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &glyphDecoder{conv: NewConverter()}}
}

func (glyphEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &glyphEncoder{}}
}

func (glyphEncoding) String() string {
	return "KGP"
}

// glyphDecoder accumulates one word at a time: the reordering automaton
// needs the complete word before its output is final. Words that cannot
// be converted degrade to their raw bytes instead of failing the
// stream.
type glyphDecoder struct {
	conv *Converter
	word []byte // current word, legacy bytes
	out  []byte // converted output not yet copied to dst
}

func (d *glyphDecoder) Reset() {
	d.word = d.word[:0]
	d.out = d.out[:0]
}

func (d *glyphDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		if len(d.out) > 0 {
			n := copy(dst[nDst:], d.out)
			nDst += n
			d.out = d.out[n:]
			if len(d.out) > 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
		}
		if nSrc == len(src) {
			if atEOF && len(d.word) > 0 {
				d.flushWord(nil)
				continue
			}
			return nDst, nSrc, nil
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		nSrc += size
		switch r {
		case ' ', '\t', '\n', '\r':
			d.flushWord(src[nSrc-size : nSrc])
		default:
			d.word = append(d.word, src[nSrc-size:nSrc]...)
		}
	}
}

// flushWord converts the accumulated word into d.out and appends sep.
// Oversized or unconvertible words pass through raw.
func (d *glyphDecoder) flushWord(sep []byte) {
	word := string(d.word)
	d.word = d.word[:0]
	if len([]rune(word)) > d.conv.maxInput {
		tracer().Errorf("streamed word passed through raw: %v", ErrInputTooLong)
		d.out = append(d.out, word...)
		d.out = append(d.out, sep...)
		return
	}
	conv, err := d.conv.convertWord(word)
	if err != nil {
		tracer().Errorf("streamed word passed through raw: %v", err)
		d.out = append(d.out, word...)
		d.out = append(d.out, sep...)
		return
	}
	d.out = append(d.out, conv...)
	d.out = append(d.out, sep...)
}

// glyphEncoder needs no word buffer: encoding is a pure longest-first
// lookup against the reverse index at every rune position.
type glyphEncoder struct{}

func (e *glyphEncoder) Reset() {}

func (e *glyphEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	reverseOnce.Do(setupReverseIndex)
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		legacy, n, ok := matchReverse(src[nSrc:], atEOF)
		if !ok {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst+len(legacy) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], legacy)
		nSrc += n
	}
	return nDst, nSrc, nil
}

// matchReverse finds the longest reverse-index entry at the start of
// src. With no entry matching, the leading rune passes through raw.
// ok is false if src may be the prefix of a longer match and more input
// could still arrive.
func matchReverse(src []byte, atEOF bool) (legacy string, n int, ok bool) {
	var ends [8]int
	count := 0
	for pos := 0; count < maxReverseLen && pos < len(src); count++ {
		if !utf8.FullRune(src[pos:]) {
			break
		}
		_, size := utf8.DecodeRune(src[pos:])
		pos += size
		ends[count] = pos
	}
	if count == 0 { // stray trailing bytes at EOF
		return string(src), len(src), true
	}
	if count < maxReverseLen && !atEOF {
		return "", 0, false
	}
	for l := count; l >= 1; l-- {
		if leg, hit := reverseGlyphs[string(src[:ends[l-1]])]; hit {
			return leg, ends[l-1], true
		}
	}
	return string(src[:ends[0]]), ends[0], true
}
