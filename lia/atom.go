package lia

import "strings"

// A Rel is the relation an atom states between its expression and zero.
type Rel byte

const (
	// RelLE means the atom states expr ≤ 0.
	RelLE = Rel(iota)
	// RelEQ means the atom states expr = 0.
	RelEQ
	// RelNE means the atom states expr ≠ 0.
	RelNE
)

func (r Rel) String() string {
	switch r {
	case RelLE:
		return "≤"
	case RelEQ:
		return "="
	case RelNE:
		return "≠"
	default:
		panic("invalid relation")
	}
}

// An Atom is a comparison between two terms, normalized as a relation
// between a single expression and zero.
type Atom struct {
	expr Term
	rel  Rel
}

// LE returns the atom t ≤ u.
func LE(t, u Term) Atom {
	return Atom{expr: t.Sub(u), rel: RelLE}
}

// LT returns the atom t < u. Over the integers, it is stored as t+1 ≤ u.
func LT(t, u Term) Atom {
	return Atom{expr: t.Sub(u).Add(Const(1)), rel: RelLE}
}

// GE returns the atom t ≥ u.
func GE(t, u Term) Atom {
	return Atom{expr: u.Sub(t), rel: RelLE}
}

// GT returns the atom t > u. Over the integers, it is stored as u+1 ≤ t.
func GT(t, u Term) Atom {
	return Atom{expr: u.Sub(t).Add(Const(1)), rel: RelLE}
}

// EQ returns the atom t = u.
func EQ(t, u Term) Atom {
	return Atom{expr: t.Sub(u), rel: RelEQ}
}

// NE returns the atom t ≠ u.
func NE(t, u Term) Atom {
	return Atom{expr: t.Sub(u), rel: RelNE}
}

// Expr returns the normalized expression of a, compared against zero.
func (a Atom) Expr() Term {
	return a.expr
}

// Rel returns the relation a states between Expr() and zero.
func (a Atom) Rel() Rel {
	return a.rel
}

// Eval returns true iff a holds under the given model.
// It panics if the model lacks a binding for a variable of a.
func (a Atom) Eval(model Model) bool {
	v := a.expr.Eval(model)
	switch a.rel {
	case RelLE:
		return v <= 0
	case RelEQ:
		return v == 0
	default:
		return v != 0
	}
}

// Clause returns the unit clause containing only a.
func (a Atom) Clause() Clause {
	return Clause{atoms: []Atom{a}}
}

func (a Atom) String() string {
	return a.expr.String() + " " + a.rel.String() + " 0"
}

// A Clause is a disjunction of atoms. The empty clause is unsatisfiable.
type Clause struct {
	atoms []Atom
}

// Or returns the clause that holds iff at least one of the given atoms holds.
func Or(atoms ...Atom) Clause {
	return Clause{atoms: append([]Atom(nil), atoms...)}
}

// Atoms returns the atoms of c, in the order they were given.
func (c Clause) Atoms() []Atom {
	return append([]Atom(nil), c.atoms...)
}

// Eval returns true iff at least one atom of c holds under the given model.
// It panics if the model lacks a binding for a variable of c.
func (c Clause) Eval(model Model) bool {
	for _, a := range c.atoms {
		if a.Eval(model) {
			return true
		}
	}
	return false
}

func (c Clause) String() string {
	if len(c.atoms) == 0 {
		return "⊥"
	}
	strs := make([]string, len(c.atoms))
	for i, a := range c.atoms {
		strs[i] = a.String()
	}
	return strings.Join(strs, " ∨ ")
}
