// Package game holds the core round and bubble state machine for Operator
// Drop. It is UI-agnostic and deterministic: randomness comes from an
// injected *rand.Rand and time advances only through Session.Step.
package game

import (
	"fmt"
	"math/rand"
)

// Operator is one of the four arithmetic operators a bubble can carry.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Operators lists all four in a fixed order.
var Operators = [4]Operator{OpAdd, OpSub, OpMul, OpDiv}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Equation is one round's arithmetic fact. Num1 op Num2 == Result holds
// exactly in integer arithmetic; division is constructed from its quotient so
// it is always exact. Immutable once generated.
type Equation struct {
	Num1   int
	Num2   int
	Result int
	Op     Operator
}

// Text renders the equation with the operator slot blanked out, e.g.
// "12 ? 4 = 16".
func (e Equation) Text() string {
	return fmt.Sprintf("%d ? %d = %d", e.Num1, e.Num2, e.Result)
}

// NewEquation picks an operator uniformly and draws operands in per-operator
// integer ranges:
//
//	+  num1, num2 in [1,20]
//	-  num1 in [5,24], num2 in [1, min(num1,15)]
//	×  num1, num2 in [1,10]
//	/  num2 in [1,9], quotient in [1,10], num1 derived
func NewEquation(r *rand.Rand) Equation {
	op := Operators[r.Intn(len(Operators))]
	switch op {
	case OpAdd:
		n1 := 1 + r.Intn(20)
		n2 := 1 + r.Intn(20)
		return Equation{Num1: n1, Num2: n2, Result: n1 + n2, Op: op}
	case OpSub:
		n1 := 5 + r.Intn(20)
		hi := n1
		if hi > 15 {
			hi = 15
		}
		n2 := 1 + r.Intn(hi)
		return Equation{Num1: n1, Num2: n2, Result: n1 - n2, Op: op}
	case OpMul:
		n1 := 1 + r.Intn(10)
		n2 := 1 + r.Intn(10)
		return Equation{Num1: n1, Num2: n2, Result: n1 * n2, Op: op}
	default: // OpDiv
		n2 := 1 + r.Intn(9)
		quot := 1 + r.Intn(10)
		return Equation{Num1: n2 * quot, Num2: n2, Result: quot, Op: op}
	}
}
