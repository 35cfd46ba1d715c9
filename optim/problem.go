package optim

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"go.uber.org/zap"

	"github.com/crillab/gophersmt/goal"
	"github.com/crillab/gophersmt/lia"
)

var (
	// ErrUnsat means the hard constraints admit no model.
	ErrUnsat = errors.New("hard constraints are unsatisfiable")
	// ErrUnbounded means the objective has no finite optimum.
	ErrUnbounded = errors.New("objective has no finite optimum")
	// ErrUnsupportedGoal means no algorithm handles the goal's kind.
	ErrUnsupportedGoal = errors.New("unsupported goal kind")
	// ErrDomain means a variable was left without finite bounds.
	ErrDomain = errors.New("variable has no finite bounds")
	// ErrBadTerm means a goal referenced a term this solver cannot read,
	// i.e one not built with package lia.
	ErrBadTerm = errors.New("term was not built with package lia")
)

// Bound sentinels for IntVar, for variables open on one or both sides.
// An open side must be closed by a unit hard constraint before solving.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// bounds is the inclusive domain of a variable.
type bounds struct {
	lo, hi int
}

// A Problem is a set of hard constraints over bounded integer variables.
// Optimize can be called several times with different goals; the asserted
// constraints persist across calls.
type Problem struct {
	order  []string
	dom    map[string]bounds
	hard   []lia.Clause
	logger *zap.Logger
}

// New returns a new, empty problem.
func New() *Problem {
	return &Problem{dom: make(map[string]bounds), logger: zap.NewNop()}
}

// SetLogger makes the problem log its search progress to l.
// By default, a problem logs nothing.
func (p *Problem) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	p.logger = l
}

// IntVar declares an integer variable ranging over [lo, hi] and returns its
// term. NegInf and PosInf leave a side open. Variables do not have to be
// declared: a variable first seen in a constraint or a goal term ranges
// over whatever its unit hard constraints allow.
// IntVar panics if the variable was already declared.
func (p *Problem) IntVar(name string, lo, hi int) lia.Term {
	if _, ok := p.dom[name]; ok {
		panic(fmt.Sprintf("variable %q already declared", name))
	}
	p.order = append(p.order, name)
	p.dom[name] = bounds{lo: lo, hi: hi}
	return lia.V(name)
}

// Assert adds a hard constraint: every model must satisfy c.
func (p *Problem) Assert(c lia.Clause) {
	p.hard = append(p.hard, c)
}

// AssertAtom adds the unit hard constraint containing only a.
func (p *Problem) AssertAtom(a lia.Atom) {
	p.Assert(a.Clause())
}

// Optimize returns a model of the hard constraints that is optimal for g,
// along with its cost. The cost is the objective value for simple and
// aggregate goals, the total weight of satisfied soft clauses for MaxSMT
// goals, and nil for an aggregate goal with no terms, which degenerates to
// a plain satisfiability check.
//
// Optimize fails with ErrUnsat, ErrUnbounded, ErrUnsupportedGoal, ErrDomain
// or ErrBadTerm; use errors.Is to discriminate.
func (p *Problem) Optimize(g goal.Goal) (lia.Model, *big.Rat, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%w: nil goal", ErrUnsupportedGoal)
	}
	switch g := g.(type) {
	case *goal.MaximizationGoal:
		t, err := liaTerm(g.Term())
		if err != nil {
			return nil, nil, err
		}
		return negated(p.minimizeMax([]lia.Term{t.Neg()}))
	case *goal.MinimizationGoal:
		t, err := liaTerm(g.Term())
		if err != nil {
			return nil, nil, err
		}
		return p.minimizeMax([]lia.Term{t})
	case *goal.MinMaxGoal:
		terms, err := liaTerms(g.Terms())
		if err != nil {
			return nil, nil, err
		}
		return p.minimizeMax(terms)
	case *goal.MaxMinGoal:
		terms, err := liaTerms(g.Terms())
		if err != nil {
			return nil, nil, err
		}
		for i, t := range terms {
			terms[i] = t.Neg()
		}
		return negated(p.minimizeMax(terms))
	case *goal.MaxSMTGoal:
		return p.maxSMT(g.SoftClauses())
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedGoal, g.Kind())
	}
}

// minimizeMax finds a model minimizing the maximum value of the given
// terms, by iterative strengthening: each time a model is found, every term
// is required to stay strictly below the achieved maximum, until the
// constraints become unsatisfiable.
func (p *Problem) minimizeMax(terms []lia.Term) (lia.Model, *big.Rat, error) {
	s := p.prepare(terms, nil)
	if len(terms) > 0 {
		unbounded := true
		for _, t := range terms {
			if !s.lowerOpen(t) {
				unbounded = false
				break
			}
		}
		if unbounded {
			return nil, nil, ErrUnbounded
		}
	}
	if err := s.finiteDomains(); err != nil {
		return nil, nil, err
	}
	model, ok := s.solve(nil)
	if !ok {
		return nil, nil, ErrUnsat
	}
	if len(terms) == 0 {
		return model, nil, nil
	}
	best, bestV := model, maxValue(terms, model)
	for {
		extra := make([]lia.Clause, len(terms))
		for i, t := range terms {
			extra[i] = lia.LE(t, lia.Const(bestV-1)).Clause()
		}
		m, ok := s.solve(extra)
		if !ok {
			break
		}
		best, bestV = m, maxValue(terms, m)
		p.logger.Debug("improved objective bound", zap.Int("bound", bestV))
	}
	return best, new(big.Rat).SetInt64(int64(bestV)), nil
}

// maxSMT finds a model of the hard constraints maximizing the total weight
// of satisfied soft clauses, by branch and bound.
func (p *Problem) maxSMT(soft []goal.SoftClause) (lia.Model, *big.Rat, error) {
	clauses := make([]lia.Clause, len(soft))
	weights := make([]*big.Rat, len(soft))
	for i, sc := range soft {
		c, err := liaClause(sc.Clause)
		if err != nil {
			return nil, nil, fmt.Errorf("soft clause %d: %w", i, err)
		}
		if sc.Weight == nil {
			return nil, nil, fmt.Errorf("soft clause %d has no weight", i)
		}
		clauses[i], weights[i] = c, sc.Weight
	}
	s := p.prepare(nil, clauses)
	if err := s.finiteDomains(); err != nil {
		return nil, nil, err
	}
	model, cost, ok := s.solveMaxSMT(clauses, weights)
	if !ok {
		return nil, nil, ErrUnsat
	}
	return model, cost, nil
}

// prepare collects every variable the search must assign, declared or
// discovered in constraints and goal terms, and tightens the domains with
// the problem's unit hard constraints.
func (p *Problem) prepare(terms []lia.Term, softs []lia.Clause) *searcher {
	s := &searcher{
		order:  append([]string(nil), p.order...),
		dom:    make(map[string]bounds, len(p.dom)),
		hard:   p.hard,
		logger: p.logger,
	}
	for name, b := range p.dom {
		s.dom[name] = b
	}
	discover := func(t lia.Term) {
		for _, v := range t.Vars() {
			if _, ok := s.dom[v]; !ok {
				s.order = append(s.order, v)
				s.dom[v] = bounds{lo: NegInf, hi: PosInf}
			}
		}
	}
	for _, c := range p.hard {
		for _, a := range c.Atoms() {
			discover(a.Expr())
		}
	}
	for _, t := range terms {
		discover(t)
	}
	for _, c := range softs {
		for _, a := range c.Atoms() {
			discover(a.Expr())
		}
	}
	s.tighten(p.hard)
	return s
}

func liaTerm(t goal.Term) (lia.Term, error) {
	if lt, ok := t.(lia.Term); ok {
		return lt, nil
	}
	return lia.Term{}, fmt.Errorf("%w: %s", ErrBadTerm, t)
}

func liaTerms(ts []goal.Term) ([]lia.Term, error) {
	res := make([]lia.Term, len(ts))
	for i, t := range ts {
		lt, err := liaTerm(t)
		if err != nil {
			return nil, err
		}
		res[i] = lt
	}
	return res, nil
}

// liaClause reads a soft clause term: either a clause, or a lone atom
// standing for its unit clause.
func liaClause(t goal.Term) (lia.Clause, error) {
	switch c := t.(type) {
	case lia.Clause:
		return c, nil
	case lia.Atom:
		return c.Clause(), nil
	default:
		return lia.Clause{}, fmt.Errorf("%w: %s", ErrBadTerm, t)
	}
}

// negated flips the sign of a minimization cost, turning it back into the
// maximization cost the caller asked about.
func negated(model lia.Model, cost *big.Rat, err error) (lia.Model, *big.Rat, error) {
	if err != nil || cost == nil {
		return model, cost, err
	}
	return model, new(big.Rat).Neg(cost), nil
}

func maxValue(terms []lia.Term, m lia.Model) int {
	res := terms[0].Eval(m)
	for _, t := range terms[1:] {
		if v := t.Eval(m); v > res {
			res = v
		}
	}
	return res
}
