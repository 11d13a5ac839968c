// Package fuzzprop is a property-based testing library driven by a
// coverage-guided, byte-stream fuzzer.
//
// Callers declare [Generator] values describing how to turn a raw byte
// buffer into a value of some Go type, compose generators with the
// combinators in this package (Map2, Choose, List, Fix, ...), and
// register properties against them with [AddTest1] / [AddTest2] / ....
// At runtime [RunHarness] repeatedly pulls a byte buffer from an external
// fuzzer, decodes it through the registered generator tree, runs the
// property, and reports the result back to the fuzzer.
//
// # Determinism
//
// Every generator is a pure, deterministic function of its input bytes:
// the same buffer run through the same generator tree always produces
// the same value and consumes the same number of bytes. This is load
// bearing - the external fuzzer replays saved seeds expecting identical
// behavior, and no shrinking happens inside this package; minimization
// is the fuzzer's job.
//
// # Outcome protocol
//
// A property function terminates in exactly one of four ways: it
// returns normally (OutcomePass), it calls [Fail], [FailF], [Check], or
// [CheckEq] with a failing condition (OutcomeFail), it calls [Guard],
// [BadTest], or [Nonetheless] to discard an uninteresting input
// (OutcomeInvalid), or it panics/crashes for any other reason (OutcomeCrash,
// treated like OutcomeFail with a synthetic message). The Property Runner
// classifies every termination into one of these outcomes without
// rethrowing; [RunHarness] then reports an OutcomeFail or OutcomeCrash to
// its error writer and panics, aborting the process so the fuzzer
// records the input.
//
// # Basic usage
//
//	fuzzprop.AddTest2("sum is commutative",
//	    fuzzprop.Int, fuzzprop.Int,
//	    func(a, b int) {
//	        fuzzprop.CheckEq(a+b, b+a)
//	    })
//
//	func main() {
//	    os.Exit(fuzzprop.RunHarness(os.Stdin, os.Stdout, os.Stderr, os.Args, envMap()))
//	}
package fuzzprop
