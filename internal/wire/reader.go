// Package wire implements the byte-level access layer for the dialog formats.
//
// Dialog text is stored as a sequence of 32-bit words whose bytes are in
// little-endian order, while the text grammar reads the bytes of each word
// from the most significant end. This package hides that detail: a Reader
// presents the buffer in logical (grammar) order and a Writer packs a logical
// byte sequence back into storage order.
package wire

import (
	"errors"
)

// GroupSize is the number of bytes in one stored word.
const GroupSize = 4

// ErrUnexpectedEOF is returned when a read goes past the end of the buffer.
var ErrUnexpectedEOF = errors.New("wire: unexpected end of input")

// Reader reads a stored buffer in logical byte order.
//
// The buffer is divided into consecutive groups of GroupSize bytes (the final
// group may be short) and the bytes within each group are yielded in reverse.
// Group order is unchanged. A Reader is single-pass and forward-only; callers
// needing another pass create a new Reader over the same data.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader from the given byte slice.
// The Reader does not copy the data; it reads directly from the slice.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, pos: 0}
}

// Pos returns the current logical read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total length of the underlying data.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of bytes left to read.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// EOF returns true if all bytes have been consumed.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

// Peek returns the next logical byte without advancing the position.
// Returns 0 and ErrUnexpectedEOF if at end of input.
func (r *Reader) Peek() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	return r.data[Physical(r.pos, len(r.data))], nil
}

// ReadByte reads the next logical byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	b := r.data[Physical(r.pos, len(r.data))]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n logical bytes and advances the position.
// Returns ErrUnexpectedEOF if fewer than n bytes remain; the position is left
// unchanged in that case.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, ErrUnexpectedEOF
	}
	result := make([]byte, n)
	for i := range result {
		result[i] = r.data[Physical(r.pos+i, len(r.data))]
	}
	r.pos += n
	return result, nil
}

// Physical maps a logical position to its index in a stored buffer of the
// given length.
func Physical(logical, length int) int {
	start := logical - logical%GroupSize
	size := min(GroupSize, length-start)
	return start + size - 1 - logical%GroupSize
}

// Unpack returns the whole buffer in logical order.
func Unpack(data []byte) []byte {
	out := make([]byte, len(data))
	for i := range out {
		out[i] = data[Physical(i, len(data))]
	}
	return out
}
