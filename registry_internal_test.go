package fuzzprop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These exercise testRegistry directly, on a fresh instance rather than
// the package-global defaultRegistry, since defaultRegistry is shared
// process-wide state and freezing it would wedge every other test in
// this binary that registers a test afterward.

func Test_TestRegistry_Add_AppendsInOrder(t *testing.T) {
	t.Parallel()

	r := &testRegistry{}

	r.add("a", nil)
	r.add("b", nil)

	require.Equal(t, []string{"a", "b"}, r.names())
}

func Test_TestRegistry_Freeze_RejectsFurtherRegistration(t *testing.T) {
	t.Parallel()

	r := &testRegistry{}
	r.add("a", nil)
	r.freeze()

	require.PanicsWithError(t, `add test "b": fuzzprop: test registry is frozen`, func() {
		r.add("b", nil)
	})
}

func Test_TestRegistry_Freeze_IsIdempotent(t *testing.T) {
	t.Parallel()

	r := &testRegistry{}
	r.freeze()
	r.freeze()

	require.Panics(t, func() {
		r.add("a", nil)
	})
}

func Test_TestRegistry_ByName_FindsRegisteredEntry(t *testing.T) {
	t.Parallel()

	r := &testRegistry{}
	r.add("a", nil)

	entry, ok := r.byName("a")
	require.True(t, ok)
	require.Equal(t, "a", entry.name)

	_, ok = r.byName("missing")
	require.False(t, ok)
}

func Test_TestRegistry_ByIndex_BoundsChecked(t *testing.T) {
	t.Parallel()

	r := &testRegistry{}
	r.add("a", nil)

	_, ok := r.byIndex(0)
	require.True(t, ok)

	_, ok = r.byIndex(1)
	require.False(t, ok)

	_, ok = r.byIndex(-1)
	require.False(t, ok)
}
