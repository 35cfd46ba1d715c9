// Package lia offers facilities to build linear integer arithmetic formulas.
//
// Optimizing solvers expect objectives and constraints expressed over some
// term language. This package provides the simplest useful one: linear
// expressions over named integer variables, comparison atoms over those
// expressions, and clauses, i.e disjunctions of atoms.
//
// For example, the constraint "x + 2y ≤ 7 or x = 0" is defined with the
// following code:
//
// c := Or(LE(V("x").Add(V("y").Scale(2)), Const(7)), EQ(V("x"), Const(0)))
//
// Terms, atoms and clauses are immutable values: combinators always return
// new values and never modify their operands. A Model associates variable
// names with integer bindings and can evaluate any term, atom or clause.
//
// The types in this package are deliberately free of any solving logic:
// they only know how to describe themselves and how to evaluate themselves
// under a model. Solving and optimizing is the job of package optim.
package lia
