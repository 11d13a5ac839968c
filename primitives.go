package fuzzprop

import "fmt"

// Int generates a platform-word signed integer spanning the full range
// of Go's int (64 bits on every platform this module targets).
var Int = withDefaultPrinter(newGenerator(func(s *Source) int {
	return int(s.ReadI64())
}), ppInt)

// Uint8 generates a uint8 spanning its full range.
var Uint8 = withDefaultPrinter(newGenerator(func(s *Source) uint8 {
	return s.ReadU8()
}), ppUint8)

// Int8 generates an int8 spanning its full range.
var Int8 = withDefaultPrinter(newGenerator(func(s *Source) int8 {
	return s.ReadI8()
}), ppInt8)

// Uint16 generates a uint16 spanning its full range.
var Uint16 = withDefaultPrinter(newGenerator(func(s *Source) uint16 {
	return s.ReadU16()
}), ppUint16)

// Int16 generates an int16 spanning its full range.
var Int16 = withDefaultPrinter(newGenerator(func(s *Source) int16 {
	return s.ReadI16()
}), ppInt16)

// Uint32 generates a uint32 spanning its full range.
var Uint32 = withDefaultPrinter(newGenerator(func(s *Source) uint32 {
	return s.ReadU32()
}), ppUint32)

// Int32 generates an int32 spanning its full range.
var Int32 = withDefaultPrinter(newGenerator(func(s *Source) int32 {
	return s.ReadI32()
}), ppInt32)

// Uint64 generates a uint64 spanning its full range.
var Uint64 = withDefaultPrinter(newGenerator(func(s *Source) uint64 {
	return s.ReadU64()
}), ppUint64)

// Int64 generates an int64 spanning its full range.
var Int64 = withDefaultPrinter(newGenerator(func(s *Source) int64 {
	return s.ReadI64()
}), ppInt64)

// Float generates the full IEEE-754 binary64 range, including NaNs,
// infinities, and subnormals. No filtering is performed - properties
// that cannot tolerate a NaN or infinity must guard against it
// themselves with [Guard].
var Float = withDefaultPrinter(newGenerator(func(s *Source) float64 {
	return s.ReadDouble()
}), ppFloat)

// Bool reads one byte and yields true iff its low bit is set. This
// policy is fixed (spec.md §4.2) so the same input byte always
// reproduces the same boolean across runs and across implementations.
var Bool = withDefaultPrinter(newGenerator(func(s *Source) bool {
	return s.ReadU8()&1 == 1
}), ppBool)

// Bytes generates a variable-length byte string of length 0..255, via
// [Source.ReadBytesVar].
var Bytes = withDefaultPrinter(newGenerator(func(s *Source) []byte {
	return s.ReadBytesVar()
}), ppBytes)

// BytesFixed generates exactly k bytes. k must be >= 0; a negative k is
// a construction-time [ErrInvalidArgument].
func BytesFixed(k int) Generator[[]byte] {
	if k < 0 {
		panic(fmt.Errorf("fuzzprop.BytesFixed(%d): %w", k, ErrInvalidArgument))
	}

	return withDefaultPrinter(newGenerator(func(s *Source) []byte {
		return s.ReadBytesFixed(k)
	}), ppBytes)
}

// Range produces integers uniformly distributed, from the fuzzer's
// perspective, in [min, min+n). n must be >= 1; n <= 0 is a
// construction-time [ErrInvalidArgument].
func Range(min int, n int) Generator[int] {
	if n <= 0 {
		panic(fmt.Errorf("fuzzprop.Range(min=%d, n=%d): %w", min, n, ErrInvalidArgument))
	}

	return withDefaultPrinter(newGenerator(func(s *Source) int {
		v := s.ReadU64()
		return min + int(v%uint64(n))
	}), ppInt)
}
