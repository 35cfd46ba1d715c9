package optim

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/crillab/gophersmt/lia"
)

// A searcher enumerates assignments over finite domains, pruning branches
// under which some hard clause can no longer be satisfied.
type searcher struct {
	order  []string // decision order: declaration order, then discovery order
	dom    map[string]bounds
	hard   []lia.Clause
	logger *zap.Logger
}

// status is what a partial assignment says about an atom or a clause.
type status byte

const (
	unknown = status(iota)
	defTrue
	defFalse
)

// tighten narrows variable domains using the unit hard constraints, i.e
// clauses made of a single atom over a single variable. This is what lets
// variables be bounded by constraints rather than declarations, and what
// turns an open declared bound back into a finite search range.
func (s *searcher) tighten(hard []lia.Clause) {
	for _, c := range hard {
		atoms := c.Atoms()
		if len(atoms) != 1 {
			continue
		}
		a := atoms[0]
		vars := a.Expr().Vars()
		if len(vars) != 1 {
			continue
		}
		name := vars[0]
		cf := a.Expr().Coef(name)
		k := a.Expr().Offset()
		b := s.dom[name]
		switch a.Rel() {
		case lia.RelLE: // cf·x + k ≤ 0
			if cf > 0 {
				if hi := floorDiv(-k, cf); hi < b.hi {
					b.hi = hi
				}
			} else {
				if lo := ceilDiv(-k, cf); lo > b.lo {
					b.lo = lo
				}
			}
		case lia.RelEQ: // cf·x + k = 0
			v := -k / cf
			if v*cf != -k {
				b.lo, b.hi = 0, -1 // no integer solution
			} else {
				if v > b.lo {
					b.lo = v
				}
				if v < b.hi {
					b.hi = v
				}
			}
		}
		s.dom[name] = b
	}
}

// lowerOpen reports whether t can decrease without bound under the current
// domains.
func (s *searcher) lowerOpen(t lia.Term) bool {
	for _, v := range t.Vars() {
		cf := t.Coef(v)
		b := s.dom[v]
		if cf > 0 && b.lo == NegInf {
			return true
		}
		if cf < 0 && b.hi == PosInf {
			return true
		}
	}
	return false
}

// finiteDomains fails if some variable is still unbounded on a side after
// tightening, since the search can only enumerate finite domains.
func (s *searcher) finiteDomains() error {
	for _, name := range s.order {
		b := s.dom[name]
		if b.lo == NegInf || b.hi == PosInf {
			return fmt.Errorf("%w: %q", ErrDomain, name)
		}
	}
	return nil
}

// termRange returns the smallest and largest values t can take, given the
// bindings of m and the domains of the remaining variables.
func (s *searcher) termRange(t lia.Term, m lia.Model) (lo, hi int) {
	lo = t.Offset()
	hi = lo
	for _, v := range t.Vars() {
		cf := t.Coef(v)
		if val, ok := m[v]; ok {
			lo += cf * val
			hi += cf * val
			continue
		}
		b := s.dom[v]
		if cf > 0 {
			lo += cf * b.lo
			hi += cf * b.hi
		} else {
			lo += cf * b.hi
			hi += cf * b.lo
		}
	}
	return lo, hi
}

func (s *searcher) atomStatus(a lia.Atom, m lia.Model) status {
	lo, hi := s.termRange(a.Expr(), m)
	switch a.Rel() {
	case lia.RelLE:
		if hi <= 0 {
			return defTrue
		}
		if lo > 0 {
			return defFalse
		}
	case lia.RelEQ:
		if lo == 0 && hi == 0 {
			return defTrue
		}
		if lo > 0 || hi < 0 {
			return defFalse
		}
	case lia.RelNE:
		if lo > 0 || hi < 0 {
			return defTrue
		}
		if lo == 0 && hi == 0 {
			return defFalse
		}
	}
	return unknown
}

// clauseStatus is defTrue as soon as one atom is, defFalse when all atoms
// are. The empty clause is defFalse.
func (s *searcher) clauseStatus(c lia.Clause, m lia.Model) status {
	res := defFalse
	for _, a := range c.Atoms() {
		switch s.atomStatus(a, m) {
		case defTrue:
			return defTrue
		case unknown:
			res = unknown
		}
	}
	return res
}

// consistent reports whether no hard or extra clause is already falsified
// under the partial assignment m.
func (s *searcher) consistent(m lia.Model, extra []lia.Clause) bool {
	for _, c := range s.hard {
		if s.clauseStatus(c, m) == defFalse {
			return false
		}
	}
	for _, c := range extra {
		if s.clauseStatus(c, m) == defFalse {
			return false
		}
	}
	return true
}

// solve returns a model of the hard and extra clauses, or false if there
// is none. Domains must be finite.
func (s *searcher) solve(extra []lia.Clause) (lia.Model, bool) {
	m := lia.Model{}
	if !s.consistent(m, extra) {
		return nil, false
	}
	if s.assign(0, m, extra) {
		return m, true
	}
	return nil, false
}

func (s *searcher) assign(i int, m lia.Model, extra []lia.Clause) bool {
	if i == len(s.order) {
		return true
	}
	name := s.order[i]
	b := s.dom[name]
	for v := b.lo; v <= b.hi; v++ {
		m[name] = v
		if s.consistent(m, extra) && s.assign(i+1, m, extra) {
			return true
		}
	}
	delete(m, name)
	return false
}

// solveMaxSMT finds a model of the hard clauses maximizing the total weight
// of satisfied soft clauses. Branches are cut when even satisfying every
// soft clause not yet falsified could not beat the best model found so far.
func (s *searcher) solveMaxSMT(soft []lia.Clause, weights []*big.Rat) (lia.Model, *big.Rat, bool) {
	var bestModel lia.Model
	bestCost := new(big.Rat)
	m := lia.Model{}
	var rec func(i int)
	rec = func(i int) {
		if bestModel != nil && s.costBound(soft, weights, m).Cmp(bestCost) <= 0 {
			return
		}
		if i == len(s.order) {
			cost := new(big.Rat)
			for j, c := range soft {
				if c.Eval(m) {
					cost.Add(cost, weights[j])
				}
			}
			if bestModel == nil || cost.Cmp(bestCost) > 0 {
				bestModel = make(lia.Model, len(m))
				for v, val := range m {
					bestModel[v] = val
				}
				bestCost = cost
				s.logger.Debug("improved soft clause weight", zap.String("cost", cost.RatString()))
			}
			return
		}
		name := s.order[i]
		b := s.dom[name]
		for v := b.lo; v <= b.hi; v++ {
			m[name] = v
			if s.consistent(m, nil) {
				rec(i + 1)
			}
		}
		delete(m, name)
	}
	if s.consistent(m, nil) {
		rec(0)
	}
	return bestModel, bestCost, bestModel != nil
}

// costBound is an upper bound on the soft clause weight reachable from the
// partial assignment m: satisfied clauses count fully, falsified ones not
// at all, undecided ones only when their weight helps.
func (s *searcher) costBound(soft []lia.Clause, weights []*big.Rat, m lia.Model) *big.Rat {
	bound := new(big.Rat)
	for i, c := range soft {
		switch s.clauseStatus(c, m) {
		case defTrue:
			bound.Add(bound, weights[i])
		case unknown:
			if weights[i].Sign() > 0 {
				bound.Add(bound, weights[i])
			}
		}
	}
	return bound
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
