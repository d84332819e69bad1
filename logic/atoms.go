package logic

// Atoms returns the set of distinct atom names appearing in f.
func Atoms(f Node) map[string]struct{} {
	set := make(map[string]struct{})
	collectAtoms(f, set)
	return set
}

// AtomsAll unions the atom sets of several formulas. Entailment checking
// needs one shared atom universe over the whole knowledge base and the
// query, so the union must be taken before assignments are generated.
func AtomsAll(fs ...Node) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range fs {
		collectAtoms(f, set)
	}
	return set
}

func collectAtoms(f Node, set map[string]struct{}) {
	switch f := f.(type) {
	case Atom:
		set[f.Name] = struct{}{}
	case Not:
		collectAtoms(f.X, set)
	case And:
		collectAtoms(f.L, set)
		collectAtoms(f.R, set)
	case Or:
		collectAtoms(f.L, set)
		collectAtoms(f.R, set)
	case If:
		collectAtoms(f.Cond, set)
		collectAtoms(f.Cons, set)
	case Iff:
		collectAtoms(f.L, set)
		collectAtoms(f.R, set)
	default:
		panic("invalid formula type")
	}
}
