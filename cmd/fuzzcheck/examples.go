package main

import (
	"github.com/calvinalkan/fuzzprop"
)

// These are the module's own dogfood tests, registered so the reference
// binary has something to run out of the box. A consumer of the library
// deletes this file and registers their own tests the same way.
func init() {
	fuzzprop.AddTest2("sum is commutative", fuzzprop.Int, fuzzprop.Int, func(a, b int) {
		fuzzprop.CheckEq(a+b, b+a)
	})

	fuzzprop.AddTest1("reversing a list twice is the identity", fuzzprop.List(fuzzprop.Uint8), func(xs []uint8) {
		once := reverseBytes(xs)
		twice := reverseBytes(once)

		fuzzprop.CheckEq(xs, twice, fuzzprop.WithEq(bytesEqual))
	})

	fuzzprop.AddTest2("range stays within bounds", fuzzprop.Range(10, 5), fuzzprop.Int, func(v int, _ int) {
		fuzzprop.Check(v >= 10 && v < 15, "range(10, 5) produced a value outside [10, 15)")
	})
}

func reverseBytes(xs []uint8) []uint8 {
	out := make([]uint8, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}

	return out
}

func bytesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
