package fuzzprop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/fuzzprop"
)

// Equality priority (spec.md §8, item 7): WithEq wins over WithCmp and
// over the structural default, even when they'd disagree.
func Test_CheckEq_EqualityPriority_WithEqWinsOverWithCmpAndDefault(t *testing.T) {
	t.Parallel()

	alwaysEqual := func(a, b int) bool { return true }
	neverEqual := func(a, b int) int { return 1 }

	require.NotPanics(t, func() {
		fuzzprop.CheckEq(1, 2, fuzzprop.WithEq(alwaysEqual), fuzzprop.WithCmp(neverEqual))
	})
}

// With no WithEq, WithCmp wins over the structural default.
func Test_CheckEq_EqualityPriority_WithCmpWinsOverDefault(t *testing.T) {
	t.Parallel()

	alwaysZero := func(a, b int) int { return 0 }

	require.NotPanics(t, func() {
		fuzzprop.CheckEq(1, 2, fuzzprop.WithCmp(alwaysZero))
	})
}

func Test_CheckEq_Default_StructuralEquality(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }

	require.NotPanics(t, func() {
		fuzzprop.CheckEq(pair{1, 2}, pair{1, 2})
	})

	require.Panics(t, func() {
		fuzzprop.CheckEq(pair{1, 2}, pair{1, 3})
	})
}

// NaN != NaN under the default equality (SPEC_FULL.md open-question
// decision, matching go-cmp and Go's own `==`).
func Test_CheckEq_Default_NaNIsNeverEqualToItself(t *testing.T) {
	t.Parallel()

	nan := 0.0
	nan /= nan

	require.Panics(t, func() {
		fuzzprop.CheckEq(nan, nan)
	})
}

func Test_Check_FailsWithMessageWhenConditionFalse(t *testing.T) {
	t.Parallel()

	got := recoverOutcomeMessage(t, func() {
		fuzzprop.Check(false, "condition was false")
	})

	require.Equal(t, "condition was false", got)
}

func Test_Check_PassesSilentlyWhenConditionTrue(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		fuzzprop.Check(true, "never shown")
	})
}

func Test_FailF_FormatsMessage(t *testing.T) {
	t.Parallel()

	got := recoverOutcomeMessage(t, func() {
		fuzzprop.FailF("expected %d, got %d", 1, 2)
	})

	require.Equal(t, "expected 1, got 2", got)
}

func Test_Nonetheless_UnwrapsSomeValue(t *testing.T) {
	t.Parallel()

	v := 9
	require.Equal(t, 9, fuzzprop.Nonetheless(&v))
}

func Test_Nonetheless_NonePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		var none *int
		fuzzprop.Nonetheless(none)
	})
}
