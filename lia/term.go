package lia

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// A Model associates variable names with an integer binding.
type Model map[string]int

// A Term is a linear expression over named integer variables,
// i.e a sum of integer-scaled variables plus an integer constant.
type Term struct {
	coefs map[string]int
	shift int
}

// V returns the term consisting of the single variable named "name".
func V(name string) Term {
	return Term{coefs: map[string]int{name: 1}}
}

// Const returns the constant term k.
func Const(k int) Term {
	return Term{shift: k}
}

// Add returns the term t + u.
func (t Term) Add(u Term) Term {
	res := Term{coefs: make(map[string]int, len(t.coefs)+len(u.coefs)), shift: t.shift + u.shift}
	for v, c := range t.coefs {
		res.coefs[v] = c
	}
	for v, c := range u.coefs {
		if res.coefs[v] += c; res.coefs[v] == 0 {
			delete(res.coefs, v)
		}
	}
	return res
}

// Sub returns the term t - u.
func (t Term) Sub(u Term) Term {
	return t.Add(u.Neg())
}

// Neg returns the term -t.
func (t Term) Neg() Term {
	return t.Scale(-1)
}

// Scale returns the term k·t.
func (t Term) Scale(k int) Term {
	if k == 0 {
		return Term{}
	}
	res := Term{coefs: make(map[string]int, len(t.coefs)), shift: k * t.shift}
	for v, c := range t.coefs {
		res.coefs[v] = k * c
	}
	return res
}

// Vars returns the names of all variables with a nonzero coefficient in t,
// in lexicographic order.
func (t Term) Vars() []string {
	vars := make([]string, 0, len(t.coefs))
	for v := range t.coefs {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Coef returns the coefficient of the variable named "name" in t,
// or 0 if the variable does not appear in t.
func (t Term) Coef(name string) int {
	return t.coefs[name]
}

// Offset returns the constant part of t.
func (t Term) Offset() int {
	return t.shift
}

// Eval returns the value of t under the given model.
// It panics if the model lacks a binding for a variable of t.
func (t Term) Eval(model Model) int {
	res := t.shift
	for v, c := range t.coefs {
		val, ok := model[v]
		if !ok {
			panic(fmt.Errorf("model lacks binding for variable %s", v))
		}
		res += c * val
	}
	return res
}

func (t Term) String() string {
	var sb strings.Builder
	for _, v := range t.Vars() {
		c := t.coefs[v]
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		} else if c < 0 {
			sb.WriteString("-")
			c = -c
		}
		if c != 1 {
			sb.WriteString(strconv.Itoa(c))
			sb.WriteString("·")
		}
		sb.WriteString(v)
	}
	if sb.Len() == 0 {
		return strconv.Itoa(t.shift)
	}
	if t.shift < 0 {
		fmt.Fprintf(&sb, " - %d", -t.shift)
	} else if t.shift > 0 {
		fmt.Fprintf(&sb, " + %d", t.shift)
	}
	return sb.String()
}
