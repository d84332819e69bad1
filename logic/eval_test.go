package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoAtomModels is every truth assignment over {a, b}.
var twoAtomModels = []map[string]bool{
	{"a": false, "b": false},
	{"a": true, "b": false},
	{"a": false, "b": true},
	{"a": true, "b": true},
}

func mustParse(t *testing.T, expr string) Node {
	t.Helper()
	f, err := ParseString(expr)
	require.NoError(t, err, "expression %q", expr)
	return f
}

func TestEvalConnectives(t *testing.T) {
	tests := []struct {
		expr string
		want [4]bool // one result per twoAtomModels entry
	}{
		{"a", [4]bool{false, true, false, true}},
		{"not a", [4]bool{true, false, true, false}},
		{"a and b", [4]bool{false, false, false, true}},
		{"a or b", [4]bool{false, true, true, true}},
		{"if a then b", [4]bool{true, false, true, true}},
		{"iff a then b", [4]bool{true, false, false, true}},
	}
	for _, tt := range tests {
		f := mustParse(t, tt.expr)
		for i, model := range twoAtomModels {
			assert.Equal(t, tt.want[i], Eval(f, model), "%q under %v", tt.expr, model)
		}
	}
}

func TestEvalCompositional(t *testing.T) {
	// Evaluating a compound node equals combining the evaluations of its
	// children, for every pair of subformulas and every model.
	subs := []Node{
		mustParse(t, "a"),
		mustParse(t, "not b"),
		mustParse(t, "a and b"),
		mustParse(t, "if a then b"),
	}
	for _, x := range subs {
		for _, y := range subs {
			for _, m := range twoAtomModels {
				xv, yv := Eval(x, m), Eval(y, m)
				assert.Equal(t, !xv, Eval(Not{X: x}, m))
				assert.Equal(t, xv && yv, Eval(And{L: x, R: y}, m))
				assert.Equal(t, xv || yv, Eval(Or{L: x, R: y}, m))
				assert.Equal(t, !xv || yv, Eval(If{Cond: x, Cons: y}, m))
				assert.Equal(t, xv == yv, Eval(Iff{L: x, R: y}, m))
			}
		}
	}
}

func TestEvalAbsentAtomIsFalse(t *testing.T) {
	// An atom missing from the model evaluates to false rather than
	// failing, so a formula can be checked against a smaller universe.
	assert.False(t, Eval(Atom{Name: "ghost"}, map[string]bool{}))
	assert.True(t, Eval(Not{X: Atom{Name: "ghost"}}, nil))
	assert.True(t, Eval(mustParse(t, "if ghost then x"), map[string]bool{"x": false}))
}

func TestAtoms(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"a", []string{"a"}},
		{"a and a or not a", []string{"a"}},
		{"if a then b and not c", []string{"a", "b", "c"}},
		{"iff x then y", []string{"x", "y"}},
	}
	for _, tt := range tests {
		got := Atoms(mustParse(t, tt.expr))
		assert.Len(t, got, len(tt.want), "expression %q", tt.expr)
		for _, name := range tt.want {
			assert.Contains(t, got, name, "expression %q", tt.expr)
		}
	}
}

func TestAtomsAll(t *testing.T) {
	got := AtomsAll(mustParse(t, "a and b"), mustParse(t, "b or c"), mustParse(t, "not a"))
	assert.Len(t, got, 3)
	for _, name := range []string{"a", "b", "c"} {
		assert.Contains(t, got, name)
	}
}
