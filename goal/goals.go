package goal

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrArityMismatch is returned when the clause and weight sequences given
// to NewMaxSMT have different lengths.
var ErrArityMismatch = errors.New("clause and weight counts differ")

// A MaximizationGoal asks for a model maximizing the value of a single term.
type MaximizationGoal struct {
	base
	term Term
}

// NewMaximization returns the goal of maximizing t. t must not be nil.
func NewMaximization(t Term) *MaximizationGoal {
	if t == nil {
		panic("nil term in maximization goal")
	}
	return &MaximizationGoal{base: base{kind: Maximization}, term: t}
}

// Term returns the term to maximize, exactly as given at construction.
func (g *MaximizationGoal) Term() Term {
	return g.term
}

// A MinimizationGoal asks for a model minimizing the value of a single term.
type MinimizationGoal struct {
	base
	term Term
}

// NewMinimization returns the goal of minimizing t. t must not be nil.
func NewMinimization(t Term) *MinimizationGoal {
	if t == nil {
		panic("nil term in minimization goal")
	}
	return &MinimizationGoal{base: base{kind: Minimization}, term: t}
}

// Term returns the term to minimize, exactly as given at construction.
func (g *MinimizationGoal) Term() Term {
	return g.term
}

// A MinMaxGoal asks for a model minimizing the maximum value among its
// terms: the best possible worst case.
type MinMaxGoal struct {
	base
	terms []Term
}

// NewMinMax returns the goal of minimizing the maximum of the given terms.
// The sequence may be empty and can be grown later with AddTerms.
func NewMinMax(terms ...Term) *MinMaxGoal {
	return &MinMaxGoal{base: base{kind: MinMax}, terms: append([]Term(nil), terms...)}
}

// AddTerms appends the given terms to the goal, preserving order.
func (g *MinMaxGoal) AddTerms(terms ...Term) {
	g.terms = append(g.terms, terms...)
}

// Terms returns a snapshot of the goal's terms in insertion order.
// Later AddTerms calls are not visible through a previously returned slice.
func (g *MinMaxGoal) Terms() []Term {
	return append([]Term(nil), g.terms...)
}

// A MaxMinGoal asks for a model maximizing the minimum value among its
// terms: the best possible worst case, for objectives where more is better.
type MaxMinGoal struct {
	base
	terms []Term
}

// NewMaxMin returns the goal of maximizing the minimum of the given terms.
// The sequence may be empty and can be grown later with AddTerms.
func NewMaxMin(terms ...Term) *MaxMinGoal {
	return &MaxMinGoal{base: base{kind: MaxMin}, terms: append([]Term(nil), terms...)}
}

// AddTerms appends the given terms to the goal, preserving order.
func (g *MaxMinGoal) AddTerms(terms ...Term) {
	g.terms = append(g.terms, terms...)
}

// Terms returns a snapshot of the goal's terms in insertion order.
// Later AddTerms calls are not visible through a previously returned slice.
func (g *MaxMinGoal) Terms() []Term {
	return append([]Term(nil), g.terms...)
}

// A SoftClause is a clause an optimizer should try to satisfy, together
// with the weight earned by satisfying it.
type SoftClause struct {
	Clause Term
	Weight *big.Rat
}

// A MaxSMTGoal asks for a model maximizing the total weight of satisfied
// soft clauses. It is not a simple goal: there is no single scalar term to
// optimize.
type MaxSMTGoal struct {
	base
	soft []SoftClause
}

// NewMaxSMT returns the goal of maximizing the total weight of satisfied
// soft clauses. Clauses and weights are paired positionally; the pairing is
// materialized immediately, so the two sequences must have the same length
// or ErrArityMismatch is returned.
func NewMaxSMT(clauses []Term, weights []*big.Rat) (*MaxSMTGoal, error) {
	if len(clauses) != len(weights) {
		return nil, fmt.Errorf("%w: %d clauses, %d weights", ErrArityMismatch, len(clauses), len(weights))
	}
	g := &MaxSMTGoal{base: base{kind: MaxSMT}, soft: make([]SoftClause, len(clauses))}
	for i, c := range clauses {
		g.soft[i] = SoftClause{Clause: c, Weight: weights[i]}
	}
	return g, nil
}

// AddSoftClause appends one more clause/weight pair to the goal.
// Previously stored pairs are never disturbed.
func (g *MaxSMTGoal) AddSoftClause(clause Term, weight *big.Rat) {
	g.soft = append(g.soft, SoftClause{Clause: clause, Weight: weight})
}

// SoftClauses returns a snapshot of the clause/weight pairs in insertion
// order.
func (g *MaxSMTGoal) SoftClauses() []SoftClause {
	return append([]SoftClause(nil), g.soft...)
}

// IntWeight returns the weight n as a rational, for the common case of
// integer-weighted soft clauses.
func IntWeight(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}
