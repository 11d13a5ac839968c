package fuzzprop

import (
	"errors"
	"fmt"
	"sync"
)

// ErrRegistryFrozen indicates a test was registered after the Harness
// Loop had already started running. The Test Registry is process-wide
// mutable state only during the single-writer construction phase
// (spec.md §5, §9); once a harness entry point has been invoked it is
// read-only, and further registrations are a programmer error.
var ErrRegistryFrozen = errors.New("fuzzprop: test registry is frozen")

// testEntry is one row of the Test Registry: a name paired with a
// closure that decodes a Source through the test's generator list and
// runs its property, already wrapped by [runProperty]'s outcome
// classification.
type testEntry struct {
	name string
	run  func(*Source) Result
}

type testRegistry struct {
	mu      sync.Mutex
	entries []testEntry
	frozen  bool
}

var defaultRegistry = &testRegistry{}

func (r *testRegistry) add(name string, run func(*Source) Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		panic(fmt.Errorf("add test %q: %w", name, ErrRegistryFrozen))
	}

	r.entries = append(r.entries, testEntry{name: name, run: run})
}

// freeze transitions the registry into its read-only phase. Called once
// by [RunHarness] before the first iteration; idempotent.
func (r *testRegistry) freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

func (r *testRegistry) byName(name string) (testEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.name == name {
			return e, true
		}
	}

	return testEntry{}, false
}

func (r *testRegistry) byIndex(i int) (testEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i < 0 || i >= len(r.entries) {
		return testEntry{}, false
	}

	return r.entries[i], true
}

func (r *testRegistry) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}

	return out
}

// AddTest0 registers a zero-argument property test under name.
func AddTest0(name string, property func()) {
	defaultRegistry.add(name, func(s *Source) Result {
		return runProperty(name, func() {
			property()
		})
	})
}

// AddTest1 registers a single-generator property test under name.
func AddTest1[A any](name string, ga Generator[A], property func(A)) {
	defaultRegistry.add(name, func(s *Source) Result {
		return runProperty(name, func() {
			a := ga.Draw(s)
			property(a)
		})
	})
}

// AddTest2 registers a two-generator property test under name. ga is
// drawn before gb, left to right, as with every combinator in this
// package.
func AddTest2[A, B any](name string, ga Generator[A], gb Generator[B], property func(A, B)) {
	defaultRegistry.add(name, func(s *Source) Result {
		return runProperty(name, func() {
			a := ga.Draw(s)
			b := gb.Draw(s)
			property(a, b)
		})
	})
}

// AddTest3 registers a three-generator property test under name.
func AddTest3[A, B, C any](
	name string, ga Generator[A], gb Generator[B], gc Generator[C], property func(A, B, C),
) {
	defaultRegistry.add(name, func(s *Source) Result {
		return runProperty(name, func() {
			a := ga.Draw(s)
			b := gb.Draw(s)
			c := gc.Draw(s)
			property(a, b, c)
		})
	})
}

// AddTest4 registers a four-generator property test under name.
func AddTest4[A, B, C, D any](
	name string, ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], property func(A, B, C, D),
) {
	defaultRegistry.add(name, func(s *Source) Result {
		return runProperty(name, func() {
			a := ga.Draw(s)
			b := gb.Draw(s)
			c := gc.Draw(s)
			d := gd.Draw(s)
			property(a, b, c, d)
		})
	})
}

// AddTest5 registers a five-generator property test under name.
func AddTest5[A, B, C, D, E any](
	name string,
	ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E],
	property func(A, B, C, D, E),
) {
	defaultRegistry.add(name, func(s *Source) Result {
		return runProperty(name, func() {
			a := ga.Draw(s)
			b := gb.Draw(s)
			c := gc.Draw(s)
			d := gd.Draw(s)
			e := ge.Draw(s)
			property(a, b, c, d, e)
		})
	})
}

// TestNames returns the names of every currently registered test, in
// registration order.
func TestNames() []string {
	return defaultRegistry.names()
}
