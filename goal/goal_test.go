package goal

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTerm stands in for a formula handle owned by the caller.
type fakeTerm string

func (f fakeTerm) String() string { return string(f) }

func TestKindPredicates(t *testing.T) {
	f := fakeTerm("f")
	maxSMT, err := NewMaxSMT(nil, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		g      Goal
		kind   Kind
		simple bool
	}{
		{"maximization", NewMaximization(f), Maximization, true},
		{"minimization", NewMinimization(f), Minimization, true},
		{"minmax", NewMinMax(f), MinMax, true},
		{"maxmin", NewMaxMin(f), MaxMin, true},
		{"maxsmt", maxSMT, MaxSMT, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.kind, test.g.Kind())
			assert.Equal(t, test.kind == Maximization, test.g.IsMaximization())
			assert.Equal(t, test.kind == Minimization, test.g.IsMinimization())
			assert.Equal(t, test.kind == MinMax, test.g.IsMinMax())
			assert.Equal(t, test.kind == MaxMin, test.g.IsMaxMin())
			assert.Equal(t, test.kind == MaxSMT, test.g.IsMaxSMT())
			assert.Equal(t, test.simple, test.g.IsSimple())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "MAXIMIZATION", Maximization.String())
	assert.Equal(t, "MAXSMT", MaxSMT.String())
	assert.Panics(t, func() { _ = Kind(42).String() })
}

func TestSimpleGoalTermIdentity(t *testing.T) {
	f := fakeTerm("x + y")
	assert.Equal(t, Term(f), NewMaximization(f).Term())
	assert.Equal(t, Term(f), NewMinimization(f).Term())
}

func TestSimpleGoalNilTermPanics(t *testing.T) {
	assert.Panics(t, func() { NewMaximization(nil) })
	assert.Panics(t, func() { NewMinimization(nil) })
}

func TestAggregateGoalAppend(t *testing.T) {
	a, b, c, d := fakeTerm("a"), fakeTerm("b"), fakeTerm("c"), fakeTerm("d")

	minMax := NewMinMax(a, b)
	minMax.AddTerms(c, d)
	assert.Equal(t, []Term{a, b, c, d}, minMax.Terms())

	maxMin := NewMaxMin()
	assert.Empty(t, maxMin.Terms())
	maxMin.AddTerms(a)
	maxMin.AddTerms(b, c)
	assert.Equal(t, []Term{a, b, c}, maxMin.Terms())
}

func TestAggregateGoalSnapshots(t *testing.T) {
	a, b := fakeTerm("a"), fakeTerm("b")

	g := NewMinMax(a)
	snapshot := g.Terms()
	g.AddTerms(b)
	assert.Equal(t, []Term{a}, snapshot)
	assert.Equal(t, []Term{a, b}, g.Terms())

	// The constructor must not alias the caller's backing array either.
	initial := []Term{a}
	g2 := NewMaxMin(initial...)
	g2.AddTerms(b)
	assert.Equal(t, []Term{a}, initial)
}

func TestMaxSMTPairing(t *testing.T) {
	c1, c2, c3 := fakeTerm("c1"), fakeTerm("c2"), fakeTerm("c3")
	w1, w2, w3 := IntWeight(1), IntWeight(2), IntWeight(3)

	g, err := NewMaxSMT([]Term{c1, c2}, []*big.Rat{w1, w2})
	require.NoError(t, err)
	g.AddSoftClause(c3, w3)

	want := []SoftClause{{c1, w1}, {c2, w2}, {c3, w3}}
	assert.Equal(t, want, g.SoftClauses())
}

func TestMaxSMTArityMismatch(t *testing.T) {
	_, err := NewMaxSMT([]Term{fakeTerm("c1"), fakeTerm("c2")}, []*big.Rat{IntWeight(1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArityMismatch))
}

func TestMaxSMTAppendOnEmpty(t *testing.T) {
	g, err := NewMaxSMT(nil, nil)
	require.NoError(t, err)
	g.AddSoftClause(fakeTerm("c"), IntWeight(5))
	require.Len(t, g.SoftClauses(), 1)
	assert.Equal(t, "c", g.SoftClauses()[0].Clause.String())
}
