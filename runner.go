package fuzzprop

import "fmt"

// runProperty invokes thunk - which draws every generator in a test's
// generator list from s and calls the property - and classifies its
// termination into one of the four outcomes (spec.md §4.4, §7).
//
// This is the Property Runner's single recover() site and the only
// place in this package that distinguishes the three non-pass
// terminations. It never rethrows: every call to thunk produces a
// Result, even when thunk panics with something this package does not
// recognize.
func runProperty(name string, thunk func()) (result Result) {
	result = Result{TestName: name, Outcome: OutcomePass}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch sig := r.(type) {
		case outcomeSignal:
			result.Outcome = sig.outcome
			result.Message = sig.message
		case error:
			result.Outcome = OutcomeCrash
			result.Message = sig.Error()
		default:
			result.Outcome = OutcomeCrash
			result.Message = fmt.Sprintf("%v", sig)
		}
	}()

	thunk()

	return result
}
