// Package goal defines optimization goals for optimizing solvers.
//
// A goal tells an optimizer what to look for among the models of a set of
// hard constraints: the model maximizing or minimizing a single term
// (MaximizationGoal, MinimizationGoal), the model minimizing the worst or
// maximizing the best case among several terms (MinMaxGoal, MaxMinGoal),
// or the model maximizing the total weight of satisfied soft clauses
// (MaxSMTGoal).
//
// Goals reference terms, they never own them: a Term is an opaque handle
// to a formula built and kept alive by the caller, typically with package
// lia. Goals are transient plain values with no internal synchronization:
// build one, optionally grow it with its append operation, hand it to an
// optimizer, then discard it. Mutating an aggregate goal while another
// goroutine reads it is outside this contract.
//
// The set of goal variants is closed: Goal is a sealed interface and every
// variant carries its Kind, so an optimizer can dispatch with an exhaustive
// switch instead of probing predicates in order.
package goal
