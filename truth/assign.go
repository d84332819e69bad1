package truth

import (
	"fmt"
	"sort"
	"strings"
)

// MaxAtoms is the default bound on the atom universe. Cost and memory of an
// enumeration are both O(2^n * n), so 20 atoms already mean about a million
// assignments.
const MaxAtoms = 20

// An Assignment maps each atom of one universe to a truth value.
type Assignment map[string]bool

// String renders the assignment as sorted name=value pairs.
func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = fmt.Sprintf("%s=%t", name, a[name])
	}
	return strings.Join(pairs, ", ")
}

// A LimitError reports an atom universe too large to enumerate.
type LimitError struct {
	Atoms int
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%d atoms exceed the enumeration limit of %d (2^n assignments)", e.Atoms, e.Max)
}

// Enumerate generates every assignment over the given atoms, bounded by
// MaxAtoms. An empty atom set yields exactly one empty assignment.
func Enumerate(atoms map[string]struct{}) ([]Assignment, error) {
	return EnumerateLimit(atoms, MaxAtoms)
}

// EnumerateLimit is Enumerate with a caller-chosen bound. The atom ordering
// is fixed once (sorted) before generation: atom i corresponds to bit i of
// the combination counter for every assignment of this run, so the 2^n
// results are pairwise distinct.
func EnumerateLimit(atoms map[string]struct{}, max int) ([]Assignment, error) {
	if len(atoms) > max {
		return nil, &LimitError{Atoms: len(atoms), Max: max}
	}
	names := sortedNames(atoms)
	assignments := make([]Assignment, 0, 1<<len(names))
	for c := 0; c < 1<<len(names); c++ {
		a := make(Assignment, len(names))
		for i, name := range names {
			a[name] = c&(1<<i) != 0
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

func sortedNames(atoms map[string]struct{}) []string {
	names := make([]string, 0, len(atoms))
	for name := range atoms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
