package fuzzprop

import "math"

// Source is a single-pass, position-tracked cursor over a finite byte
// buffer supplied by an external fuzzer.
//
// Reads advance the cursor monotonically and never block. Reading past
// the end of the buffer panics with the unexported outOfInput signal,
// which the Property Runner (runner.go) classifies as an OutcomeInvalid
// outcome, not an error - see outcome.go. A Source is owned exclusively
// by the generator invocation currently threading it; it is never read
// concurrently.
type Source struct {
	buf    []byte
	cursor int
}

// NewSource wraps buf in a fresh Source positioned at offset zero. buf is
// not copied; the caller must not mutate it while the Source is in use.
func NewSource(buf []byte) *Source {
	return &Source{buf: buf}
}

// Len reports the number of unread bytes remaining.
func (s *Source) Len() int {
	return len(s.buf) - s.cursor
}

// Exhausted reports whether every byte of the buffer has been consumed.
func (s *Source) Exhausted() bool {
	return s.cursor >= len(s.buf)
}

func (s *Source) take(n int) []byte {
	if n < 0 || s.cursor+n > len(s.buf) {
		s.cursor = len(s.buf)
		panic(outOfInput)
	}

	b := s.buf[s.cursor : s.cursor+n]
	s.cursor += n

	return b
}

// ReadU8 consumes one byte.
func (s *Source) ReadU8() uint8 {
	return s.take(1)[0]
}

// ReadU16 consumes two bytes and decodes them as little-endian uint16.
func (s *Source) ReadU16() uint16 {
	b := s.take(2)
	return uint16(b[0]) | uint16(b[1])<<8
}

// ReadU32 consumes four bytes and decodes them as little-endian uint32.
func (s *Source) ReadU32() uint32 {
	b := s.take(4)
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// ReadU64 consumes eight bytes and decodes them as little-endian uint64.
func (s *Source) ReadU64() uint64 {
	b := s.take(8)

	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return v
}

// ReadI8 consumes one byte, reinterpreted as two's-complement int8.
func (s *Source) ReadI8() int8 { return int8(s.ReadU8()) }

// ReadI16 consumes two bytes, reinterpreted as two's-complement int16.
func (s *Source) ReadI16() int16 { return int16(s.ReadU16()) }

// ReadI32 consumes four bytes, reinterpreted as two's-complement int32.
func (s *Source) ReadI32() int32 { return int32(s.ReadU32()) }

// ReadI64 consumes eight bytes, reinterpreted as two's-complement int64.
func (s *Source) ReadI64() int64 { return int64(s.ReadU64()) }

// ReadDouble consumes eight bytes and decodes them as an IEEE-754
// binary64, including NaNs, infinities, and subnormals - no filtering is
// performed.
func (s *Source) ReadDouble() float64 {
	return math.Float64frombits(s.ReadU64())
}

// ReadBytesVar consumes one length-prefix byte L, then L bytes, yielding
// a byte string of length 0..255.
func (s *Source) ReadBytesVar() []byte {
	n := int(s.ReadU8())
	return append([]byte(nil), s.take(n)...)
}

// ReadBytesFixed consumes exactly k bytes. k must be >= 0.
func (s *Source) ReadBytesFixed(k int) []byte {
	return append([]byte(nil), s.take(k)...)
}
