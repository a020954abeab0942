package akshara

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/tracing"
)

// A Buffer collects the Unicode output of a single word during conversion.
// It is the only state of the converter automaton: reordering rules decide
// by inspecting the last one or two emitted runes and rewrite the tail in
// place. A Buffer is created fresh per word and discarded after the word
// has been flushed to the result.
//
// Buffers are not safe for concurrent use; every conversion borrows its
// own from the pool.
type Buffer struct {
	runes []rune
}

// Len returns the number of runes emitted so far.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Append emits a single rune.
func (b *Buffer) Append(r rune) {
	b.runes = append(b.runes, r)
}

// AppendString emits all runes of s.
func (b *Buffer) AppendString(s string) {
	b.runes = append(b.runes, []rune(s)...)
}

// Last returns the most recently emitted rune. ok is false for an empty
// buffer.
func (b *Buffer) Last() (r rune, ok bool) {
	if len(b.runes) == 0 {
		return 0, false
	}
	return b.runes[len(b.runes)-1], true
}

// At returns the rune at position i, counted from the front.
func (b *Buffer) At(i int) rune {
	assert(i >= 0 && i < len(b.runes), "buffer index out of range")
	return b.runes[i]
}

// SpliceTail replaces the last n emitted runes with repl. n may be 0, in
// which case repl is simply appended. This is the single primitive all
// reordering rules are built from.
func (b *Buffer) SpliceTail(n int, repl ...rune) {
	assert(n >= 0 && n <= len(b.runes), "splice window exceeds buffer")
	b.runes = append(b.runes[:len(b.runes)-n], repl...)
}

// String returns the buffer content as a string.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.runes = b.runes[:0]
}

// Dump traces the buffer content at debug level, one line per rune.
// Intended for following the automaton's rewrite steps in a trace.
func (b *Buffer) Dump() {
	if tracer().GetTraceLevel() < tracing.LevelDebug {
		return
	}
	for i, r := range b.runes {
		tracer().Debugf("buffer[%d] = %+q", i, r)
	}
}

// Buffers are short-lived objects, one per converted word. To avoid
// multiple allocation of small objects we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			b := &Buffer{runes: make([]rune, 0, 32)}
			return b, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// BorrowBuffer returns an empty Buffer from the pool. Callers hand it back
// with Release after the word has been flushed.
func BorrowBuffer() *Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil { // unbounded pool, borrowing should not fail
		tracer().Errorf("buffer pool: %v", err)
		return &Buffer{runes: make([]rune, 0, 32)}
	}
	return o.(*Buffer)
}

// Release resets the buffer and puts it back into the pool.
func (b *Buffer) Release() {
	b.Reset()
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, b)
}
