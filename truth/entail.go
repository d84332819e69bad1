package truth

import "github.com/proplog/proplog/logic"

// A Report partitions every assignment over one formula's atoms by whether
// the formula holds under it. Both slices preserve enumeration order.
type Report struct {
	Atoms []string
	Sat   []Assignment
	Unsat []Assignment
}

// Partition enumerates all assignments over f's own atoms and splits them
// into those satisfying f and those falsifying it.
func Partition(f logic.Node) (*Report, error) {
	return PartitionLimit(f, MaxAtoms)
}

// PartitionLimit is Partition with a caller-chosen atom bound.
func PartitionLimit(f logic.Node, max int) (*Report, error) {
	atoms := logic.Atoms(f)
	assignments, err := EnumerateLimit(atoms, max)
	if err != nil {
		return nil, err
	}
	rep := &Report{Atoms: sortedNames(atoms)}
	for _, a := range assignments {
		if logic.Eval(f, a) {
			rep.Sat = append(rep.Sat, a)
		} else {
			rep.Unsat = append(rep.Unsat, a)
		}
	}
	return rep, nil
}

// Entails decides KB |= alpha: whether every assignment satisfying all
// formulas of the knowledge base also satisfies alpha. When it does not
// hold, the first counter-model found (an assignment satisfying the
// knowledge base but not alpha) is returned for diagnostics.
func Entails(kb []logic.Node, alpha logic.Node) (bool, Assignment, error) {
	return EntailsLimit(kb, alpha, MaxAtoms)
}

// EntailsLimit is Entails with a caller-chosen atom bound. One atom
// universe is shared by the knowledge base and the query, enumerated once.
func EntailsLimit(kb []logic.Node, alpha logic.Node, max int) (bool, Assignment, error) {
	atoms := logic.AtomsAll(append(append([]logic.Node{}, kb...), alpha)...)
	assignments, err := EnumerateLimit(atoms, max)
	if err != nil {
		return false, nil, err
	}
models:
	for _, a := range assignments {
		for _, f := range kb {
			if !logic.Eval(f, a) {
				continue models // vacuous: this assignment falsifies the KB
			}
		}
		if !logic.Eval(alpha, a) {
			return false, a, nil
		}
	}
	return true, nil, nil
}
