package phonetic

import (
	"errors"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Defaults for Options left at their zero value.
const (
	DefaultMaxCandidate = 10  // longest romanization candidate, in runes
	DefaultCacheSize    = 500 // recently transliterated inputs
	DefaultInputLimit   = 256 // input ceiling, in runes; longer input is truncated
)

// ErrUnlearnable flags Learn calls with entries the dictionary cannot
// hold: empty strings or multi-word keys.
var ErrUnlearnable = errors.New("phonetic transliterator: not a learnable entry")

// Options configure a Transliterator.
type Options struct {
	CaseSensitive bool // Baraha-style scheme: T is ಟ, E is ೇ
	MaxCandidate  int  // scan window bound; 0 means DefaultMaxCandidate
	CacheSize     int  // LRU size; 0 means DefaultCacheSize
	InputLimit    int  // truncation ceiling; 0 means DefaultInputLimit
}

// Transliterator converts romanized input to Kannada script. It is
// safe for concurrent use. The zero value is unusable; create
// transliterators with New.
type Transliterator struct {
	opts       Options
	conjuncts  map[string]string // cluster syllables, tried first
	consonants map[string]string // consonant+vowel syllables
	vowels     map[string]string // independent vowels
	cache      *lru.Cache[string, string]
	mx         sync.RWMutex      // guards learned
	learned    map[string]string // user-taught words, beat the stock dictionary
}

// New creates a Transliterator for the given options.
func New(opts Options) *Transliterator {
	if opts.MaxCandidate <= 0 {
		opts.MaxCandidate = DefaultMaxCandidate
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.InputLimit <= 0 {
		opts.InputLimit = DefaultInputLimit
	}
	t := &Transliterator{
		opts:    opts,
		learned: make(map[string]string),
	}
	t.conjuncts, t.consonants, t.vowels = buildTables(opts.CaseSensitive)
	cache, err := lru.New[string, string](opts.CacheSize)
	assert(err == nil, "LRU cache rejected a positive size")
	t.cache = cache
	return t
}

// Transliterate converts romanized input to Kannada script. Input is
// normalized first: surrounding whitespace is dropped, inner runs of
// whitespace collapse to one space, case is folded unless the scheme is
// case-sensitive, and input beyond the limit is truncated. Runes no
// table matches pass through unchanged.
//
// Transliterate panics when called on a zero-value Transliterator.
func (t *Transliterator) Transliterate(input string) string {
	assert(t.conjuncts != nil, "transliterator tables not initialized, use New")
	norm := t.normalize(input)
	if norm == "" {
		return ""
	}
	if out, ok := t.cache.Get(norm); ok {
		return out
	}
	words := strings.Split(norm, " ")
	for i, word := range words {
		words[i] = t.transliterateWord(word)
	}
	out := strings.Join(words, " ")
	t.cache.Add(norm, out)
	return out
}

// Learn adds a word to the user dictionary, overriding the stock
// dictionary and the syllable tables for that word. The romanized key
// is normalized like Transliterate input and must be a single word.
func (t *Transliterator) Learn(roman, kannada string) error {
	assert(t.conjuncts != nil, "transliterator tables not initialized, use New")
	key := t.normalize(roman)
	if key == "" || strings.ContainsRune(key, ' ') || kannada == "" {
		return ErrUnlearnable
	}
	t.mx.Lock()
	t.learned[key] = kannada
	t.mx.Unlock()
	t.cache.Purge() // cached phrases may contain the word
	t.cache.Add(key, kannada)
	tracer().Infof("learned %q = %q", key, kannada)
	return nil
}

// Forget drops all learned words.
func (t *Transliterator) Forget() {
	t.mx.Lock()
	t.learned = make(map[string]string)
	t.mx.Unlock()
	t.cache.Purge()
}

func (t *Transliterator) normalize(input string) string {
	if !t.opts.CaseSensitive {
		input = strings.ToLower(input)
	}
	norm := strings.Join(strings.Fields(input), " ")
	if runes := []rune(norm); len(runes) > t.opts.InputLimit {
		tracer().Infof("phonetic input truncated to %d runes", t.opts.InputLimit)
		norm = string(runes[:t.opts.InputLimit])
	}
	return norm
}

func (t *Transliterator) transliterateWord(word string) string {
	t.mx.RLock()
	out, ok := t.learned[word]
	t.mx.RUnlock()
	if ok {
		return out
	}
	if out, ok := dictionary[word]; ok {
		return out
	}
	return t.scanWord(word)
}

// scanWord is the greedy longest-match scan: at every position the
// longest candidate wins, and between tables of equal match length,
// conjuncts beat consonants beat vowels.
func (t *Transliterator) scanWord(word string) string {
	var sb strings.Builder
	runes := []rune(word)
	for i := 0; i < len(runes); {
		match, n := t.lookup(runes, i)
		if n == 0 {
			sb.WriteRune(runes[i])
			i++
			continue
		}
		sb.WriteString(match)
		i += n
	}
	return sb.String()
}

func (t *Transliterator) lookup(runes []rune, i int) (string, int) {
	for l := min(t.opts.MaxCandidate, len(runes)-i); l >= 1; l-- {
		cand := string(runes[i : i+l])
		if out, ok := t.conjuncts[cand]; ok {
			return out, l
		}
		if out, ok := t.consonants[cand]; ok {
			return out, l
		}
		if out, ok := t.vowels[cand]; ok {
			return out, l
		}
	}
	return "", 0
}

var setupOnce sync.Once
var global *Transliterator

func setup() *Transliterator {
	setupOnce.Do(func() {
		global = New(Options{})
	})
	return global
}

// Transliterate converts input with a package-default folded-scheme
// transliterator.
func Transliterate(input string) string {
	return setup().Transliterate(input)
}

// Learn teaches the package-default transliterator a word.
func Learn(roman, kannada string) error {
	return setup().Learn(roman, kannada)
}

// Forget drops the package-default transliterator's learned words.
func Forget() {
	setup().Forget()
}
