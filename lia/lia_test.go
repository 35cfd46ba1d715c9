package lia

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTermEval(t *testing.T) {
	model := Model{"x": 3, "y": -2}
	tests := []struct {
		term Term
		want int
	}{
		{V("x"), 3},
		{Const(7), 7},
		{V("x").Add(V("y")), 1},
		{V("x").Sub(V("y")), 5},
		{V("x").Scale(2).Add(V("y").Scale(3)).Add(Const(1)), 1},
		{V("x").Neg(), -3},
		{V("x").Sub(V("x")), 0},
		{V("x").Scale(0), 0},
	}
	for _, test := range tests {
		if got := test.term.Eval(model); got != test.want {
			t.Errorf("invalid value for %q: expected %d, got %d", test.term, test.want, got)
		}
	}
}

func TestTermEvalPanicsOnUnbound(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on unbound variable, got none")
		}
	}()
	V("z").Eval(Model{"x": 1})
}

func TestTermVars(t *testing.T) {
	term := V("b").Add(V("a")).Add(V("c").Scale(2)).Sub(V("c").Scale(2))
	want := []string{"a", "b"}
	if diff := cmp.Diff(want, term.Vars()); diff != "" {
		t.Errorf("invalid vars for %q (-want +got):\n%s", term, diff)
	}
}

func TestTermString(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{Const(0), "0"},
		{Const(-4), "-4"},
		{V("x"), "x"},
		{V("x").Neg(), "-x"},
		{V("x").Scale(2).Add(V("y").Neg()).Add(Const(3)), "2·x - y + 3"},
		{V("x").Sub(Const(5)), "x - 5"},
	}
	for _, test := range tests {
		if got := test.term.String(); got != test.want {
			t.Errorf("invalid string: expected %q, got %q", test.want, got)
		}
	}
}

func TestAtomEval(t *testing.T) {
	model := Model{"x": 3, "y": 5}
	tests := []struct {
		atom Atom
		want bool
	}{
		{LE(V("x"), V("y")), true},
		{LE(V("y"), V("x")), false},
		{LE(V("x"), V("x")), true},
		{LT(V("x"), V("y")), true},
		{LT(V("x"), V("x")), false},
		{GE(V("y"), V("x")), true},
		{GT(V("y"), V("x")), true},
		{GT(V("x"), V("x")), false},
		{EQ(V("x"), Const(3)), true},
		{EQ(V("x"), V("y")), false},
		{NE(V("x"), V("y")), true},
		{NE(V("x"), Const(3)), false},
	}
	for _, test := range tests {
		if got := test.atom.Eval(model); got != test.want {
			t.Errorf("invalid value for %q under %v: expected %v, got %v", test.atom, model, test.want, got)
		}
	}
}

func TestClauseEval(t *testing.T) {
	model := Model{"x": 3}
	sat := Or(EQ(V("x"), Const(0)), GE(V("x"), Const(2)))
	if !sat.Eval(model) {
		t.Errorf("expected %q to hold under %v", sat, model)
	}
	unsat := Or(EQ(V("x"), Const(0)), LT(V("x"), Const(0)))
	if unsat.Eval(model) {
		t.Errorf("expected %q not to hold under %v", unsat, model)
	}
	if Or().Eval(model) {
		t.Errorf("expected the empty clause not to hold")
	}
}

func TestImmutability(t *testing.T) {
	x := V("x")
	sum := x.Add(V("y"))
	_ = sum.Scale(3)
	_ = x.Neg()
	if got := x.Coef("x"); got != 1 {
		t.Errorf("combinators modified their operand: coef of x is %d", got)
	}
	if diff := cmp.Diff([]string{"x", "y"}, sum.Vars()); diff != "" {
		t.Errorf("combinators modified their operand (-want +got):\n%s", diff)
	}
}
