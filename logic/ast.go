package logic

// A Node is a parsed formula. The six concrete types below are the only
// implementations: consumers switch over them exhaustively. Nodes are built
// bottom-up by the parser, own their children outright and are never
// mutated afterwards.
type Node interface {
	String() string
	node()
}

// An Atom is a propositional variable leaf.
type Atom struct {
	Name string
}

// A Not negates its operand.
type Not struct {
	X Node
}

// An And is the conjunction of two subformulas.
type And struct {
	L, R Node
}

// An Or is the disjunction of two subformulas.
type Or struct {
	L, R Node
}

// An If is the material implication Cond -> Cons.
type If struct {
	Cond, Cons Node
}

// An Iff is the biconditional of two subformulas.
type Iff struct {
	L, R Node
}

func (Atom) node() {}
func (Not) node()  {}
func (And) node()  {}
func (Or) node()   {}
func (If) node()   {}
func (Iff) node()  {}

func (a Atom) String() string { return a.Name }
func (n Not) String() string  { return "not(" + n.X.String() + ")" }
func (a And) String() string  { return "and(" + a.L.String() + ", " + a.R.String() + ")" }
func (o Or) String() string   { return "or(" + o.L.String() + ", " + o.R.String() + ")" }
func (i If) String() string   { return "if(" + i.Cond.String() + ", " + i.Cons.String() + ")" }
func (i Iff) String() string  { return "iff(" + i.L.String() + ", " + i.R.String() + ")" }
