package logic

// Eval computes the truth value of f under model. It is total: an atom
// absent from the model evaluates to false, a documented policy rather than
// an error, so a formula can be checked against a model built for a smaller
// atom universe.
func Eval(f Node, model map[string]bool) bool {
	switch f := f.(type) {
	case Atom:
		return model[f.Name]
	case Not:
		return !Eval(f.X, model)
	case And:
		return Eval(f.L, model) && Eval(f.R, model)
	case Or:
		return Eval(f.L, model) || Eval(f.R, model)
	case If:
		return !Eval(f.Cond, model) || Eval(f.Cons, model)
	case Iff:
		l, r := Eval(f.L, model), Eval(f.R, model)
		return (!l || r) && (l || !r)
	default:
		panic("invalid formula type")
	}
}
