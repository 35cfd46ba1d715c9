// Package optim provides an optimizing solver for goals over linear
// integer arithmetic.
//
// A Problem is a set of hard constraints over bounded integer variables.
// Once the constraints are asserted, the user passes a goal from package
// goal to Optimize, which returns the optimal model and its cost:
//
//	p := optim.New()
//	x := p.IntVar("x", 0, 10)
//	p.AssertAtom(lia.LE(x, lia.Const(5)))
//	model, cost, err := p.Optimize(goal.NewMaximization(x))
//
// Optimize dispatches on the goal's kind with an exhaustive match over the
// closed set of variants. Simple and aggregate goals are solved by
// iterative strengthening: find any model, read the objective value, assert
// a strictly better bound, and repeat until the constraints become
// unsatisfiable; the last model found is optimal. MaxSMT goals are solved
// by branch and bound over the total weight of satisfied soft clauses.
//
// Failures are reported through sentinel errors: ErrUnsat when the hard
// constraints admit no model, ErrUnbounded when the objective has no finite
// optimum, ErrUnsupportedGoal when no algorithm handles the goal's kind.
// The solver searches finite domains only: every variable must end up with
// finite bounds, either declared with IntVar or implied by unit hard
// constraints, otherwise Optimize reports ErrDomain.
package optim
