// Package binio implements little-endian integer I/O over a seekable byte
// slice, with bounded reads that refuse to overrun a declared segment.
package binio

import (
	"fmt"

	"crusader-assets/internal/codecerr"
)

// Reader is a cursor over an in-memory byte slice. It never allocates on
// read and never copies the underlying slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential little-endian reads starting at
// offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.data) }

// Seek moves the cursor to an absolute offset. It does not validate the
// offset against the buffer length; the next read will fail if it does.
func (r *Reader) Seek(offset int) { r.pos = offset }

// Remaining returns the number of bytes between the cursor and end. It
// returns 0 if the cursor is already at or past end.
func (r *Reader) Remaining(end int) int {
	if r.pos >= end {
		return 0
	}
	return end - r.pos
}

// Bytes returns n bytes at the cursor and advances it, failing with
// ErrUnexpectedEOF if fewer than n bytes remain in the buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			codecerr.ErrUnexpectedEOF, n, r.pos, len(r.data)-r.pos)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// BoundedBytes is like Bytes but additionally fails if the read would cross
// segmentEnd, reporting ErrUnexpectedEOF for the segment boundary.
func (r *Reader) BoundedBytes(n, segmentEnd int) ([]byte, error) {
	if r.pos+n > segmentEnd {
		return nil, fmt.Errorf("%w: read of %d bytes at offset %d crosses segment end %d",
			codecerr.ErrUnexpectedEOF, n, r.pos, segmentEnd)
	}
	return r.Bytes(n)
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}
