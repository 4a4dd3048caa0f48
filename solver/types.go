package solver

import "math"

// Describes the arithmetic operators that can combine two terms.

// Op is an arithmetic operator.
type Op byte

const (
	// Add is the addition operator.
	Add = Op(iota)
	// Sub is the subtraction operator. Its result must be strictly positive.
	Sub
	// Mul is the multiplication operator.
	Mul
	// Div is the division operator. Its result must be an integer.
	Div
)

// ops lists all operators, in the order they are tried by the solver.
var ops = [...]Op{Add, Sub, Mul, Div}

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		panic("invalid operator")
	}
}

// apply computes a op b.
// ok is false if the result would not be a positive integer, or would overflow.
// Both a and b are supposed to be > 0.
func (op Op) apply(a, b int) (res int, ok bool) {
	switch op {
	case Add:
		if a > math.MaxInt-b {
			return 0, false
		}
		return a + b, true
	case Sub:
		// Negative values are not allowed and zero is not a useful term.
		if a <= b {
			return 0, false
		}
		return a - b, true
	case Mul:
		if a > math.MaxInt/b {
			return 0, false
		}
		return a * b, true
	case Div:
		// Fractions are not allowed.
		if a%b != 0 {
			return 0, false
		}
		return a / b, true
	default:
		panic("invalid operator")
	}
}
