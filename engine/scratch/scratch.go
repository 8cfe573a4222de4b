// Package scratch builds short per-frame strings, such as overlay labels,
// in one reusable byte buffer.
package scratch

import (
	"strconv"
	"time"
	"unicode/utf8"
)

// Buffer is reset once per frame. Lines are carved out of it with Begin and
// End; not safe for concurrent use.
type Buffer struct {
	buf  []byte
	mark int
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() { b.buf, b.mark = b.buf[:0], 0 }

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Begin starts a new line at the current end of the buffer.
func (b *Buffer) Begin() *Buffer { b.mark = len(b.buf); return b }

// End returns the text written since Begin as its own string.
func (b *Buffer) End() string { return string(b.buf[b.mark:]) }

func (b *Buffer) S(s string) *Buffer { b.buf = append(b.buf, s...); return b }

func (b *Buffer) R(r rune) *Buffer { b.buf = utf8.AppendRune(b.buf, r); return b }

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer { b.buf = strconv.AppendInt(b.buf, int64(v), 10); return b }

// F appends v with prec digits after the point.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

func (b *Buffer) Bool(v bool) *Buffer { b.buf = strconv.AppendBool(b.buf, v); return b }

// MB appends a byte count in mebibytes with three decimals.
func (b *Buffer) MB(n uint64) *Buffer { return b.F(float64(n)/(1<<20), 3).S(" MB") }

// Ms appends a duration in milliseconds with three decimals.
func (b *Buffer) Ms(d time.Duration) *Buffer {
	return b.F(float64(d)/float64(time.Millisecond), 3).S(" ms")
}

// Pad appends n copies of c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	for ; n > 0; n-- {
		b.buf = append(b.buf, c)
	}
	return b
}
