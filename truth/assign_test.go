package truth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atomSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func TestEnumerateCountAndUniqueness(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	for n := 0; n <= len(names); n++ {
		atoms := atomSet(names[:n]...)
		assignments, err := Enumerate(atoms)
		require.NoError(t, err)
		require.Len(t, assignments, 1<<n, "n=%d", n)
		seen := make(map[string]struct{}, len(assignments))
		for _, a := range assignments {
			require.Len(t, a, n, "assignment must be total over the atom set")
			key := a.String()
			_, dup := seen[key]
			require.False(t, dup, "duplicate assignment %s for n=%d", key, n)
			seen[key] = struct{}{}
		}
	}
}

func TestEnumerateEmptySet(t *testing.T) {
	assignments, err := Enumerate(nil)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Empty(t, assignments[0])
}

func TestEnumerateBitOrdering(t *testing.T) {
	// Atom ordering is fixed (sorted) before generation: bit 0 of the
	// combination counter drives the first atom, so "a" alternates fastest.
	assignments, err := Enumerate(atomSet("b", "a"))
	require.NoError(t, err)
	require.Len(t, assignments, 4)
	want := []Assignment{
		{"a": false, "b": false},
		{"a": true, "b": false},
		{"a": false, "b": true},
		{"a": true, "b": true},
	}
	assert.Equal(t, want, assignments)
}

func TestEnumerateLimit(t *testing.T) {
	_, err := EnumerateLimit(atomSet("a", "b", "c"), 2)
	require.Error(t, err)
	var limErr *LimitError
	require.ErrorAs(t, err, &limErr)
	assert.Equal(t, 3, limErr.Atoms)
	assert.Equal(t, 2, limErr.Max)

	large := make(map[string]struct{})
	for i := 0; i < MaxAtoms+1; i++ {
		large[fmt.Sprintf("x%02d", i)] = struct{}{}
	}
	_, err = Enumerate(large)
	require.ErrorAs(t, err, &limErr)
}

func TestAssignmentString(t *testing.T) {
	a := Assignment{"b": true, "a": false}
	assert.Equal(t, "a=false, b=true", a.String())
	assert.Equal(t, "", Assignment{}.String())
}
