package goal

// A Kind identifies one of the goal variants.
type Kind byte

const (
	// Maximization is the kind of goals maximizing a single term.
	Maximization = Kind(iota)
	// Minimization is the kind of goals minimizing a single term.
	Minimization
	// MinMax is the kind of goals minimizing the maximum of several terms.
	MinMax
	// MaxMin is the kind of goals maximizing the minimum of several terms.
	MaxMin
	// MaxSMT is the kind of goals maximizing the total weight of satisfied soft clauses.
	MaxSMT
)

func (k Kind) String() string {
	switch k {
	case Maximization:
		return "MAXIMIZATION"
	case Minimization:
		return "MINIMIZATION"
	case MinMax:
		return "MINMAX"
	case MaxMin:
		return "MAXMIN"
	case MaxSMT:
		return "MAXSMT"
	default:
		panic("invalid goal kind")
	}
}

// Simple is true for the kinds whose objective reduces to a single scalar
// term: maximization, minimization, minmax and maxmin. MaxSMT is not
// simple: it calls for a weighted-satisfaction algorithm, not a scalar one.
func (k Kind) Simple() bool {
	switch k {
	case Maximization, Minimization, MinMax, MaxMin:
		return true
	default:
		return false
	}
}

// A Term is a handle to a formula owned by the caller.
// Goals store terms as given: no copy, no transformation, no ownership.
type Term interface {
	String() string
}

// A Goal describes what an optimizer should look for.
// It can be passed to the Optimize method of any optimizer, though some
// optimizers may not support every kind.
//
// The six predicates are total and never fail. Exactly one of the five
// kind predicates is true for any goal, and IsSimple is true exactly when
// Kind().Simple() is.
//
// Goal is sealed: the variants defined in this package are the only
// implementations.
type Goal interface {
	// Kind returns the variant of the goal, for exhaustive dispatch.
	Kind() Kind
	IsMaximization() bool
	IsMinimization() bool
	IsMinMax() bool
	IsMaxMin() bool
	IsMaxSMT() bool
	IsSimple() bool

	sealed()
}

// base carries the kind of a concrete goal and derives every predicate
// from it, so variants cannot disagree with their own kind.
type base struct {
	kind Kind
}

func (b base) Kind() Kind           { return b.kind }
func (b base) IsMaximization() bool { return b.kind == Maximization }
func (b base) IsMinimization() bool { return b.kind == Minimization }
func (b base) IsMinMax() bool       { return b.kind == MinMax }
func (b base) IsMaxMin() bool       { return b.kind == MaxMin }
func (b base) IsMaxSMT() bool       { return b.kind == MaxSMT }
func (b base) IsSimple() bool       { return b.kind.Simple() }

func (b base) sealed() {}
