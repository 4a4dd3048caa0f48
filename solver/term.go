package solver

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Term is either an atomic number, taken from the input numbers,
// or the result of an operator applied to two subterms.
// Terms are never modified once built.
type Term struct {
	value int
	op    Op
	left  *Term // nil iff the term is atomic
	right *Term
}

// Atom returns the atomic term associated with v.
func Atom(v int) *Term {
	return &Term{value: v}
}

// NewTerm returns the term a op b.
// It returns an error if one of the terms is not strictly positive,
// if a-b is not strictly positive or if a/b is not an integer.
// Contrary to the terms built by the solver, a can be smaller than b.
func NewTerm(op Op, a, b *Term) (*Term, error) {
	if a.value <= 0 || b.value <= 0 {
		return nil, errors.Errorf("invalid operands for %s %s %s: values must be positive", a, op, b)
	}
	v, ok := op.apply(a.value, b.value)
	if !ok {
		return nil, errors.Errorf("%s %s %s is not a positive integer", a, op, b)
	}
	return &Term{value: v, op: op, left: a, right: b}, nil
}

// Value returns the numeric value of the term.
func (t *Term) Value() int { return t.value }

// IsAtomic is true iff t is one of the input numbers.
func (t *Term) IsAtomic() bool { return t.left == nil }

// Op returns the operator of a derived term.
// It panics if t is atomic.
func (t *Term) Op() Op {
	if t.IsAtomic() {
		panic("atomic term has no operator")
	}
	return t.op
}

// Operands returns the left and right subterms of t, or nil, nil if t is atomic.
func (t *Term) Operands() (left, right *Term) {
	return t.left, t.right
}

// Equal returns true iff a and b are structurally equal, i.e they have the same value and
// either they are both atomic, or they use the same operator on equal operands, in the same order.
func Equal(a, b *Term) bool {
	if a.value != b.value {
		return false
	}
	if a.IsAtomic() || b.IsAtomic() {
		return a.IsAtomic() && b.IsAtomic()
	}
	return a.op == b.op && Equal(a.left, b.left) && Equal(a.right, b.right)
}

// String returns a fully parenthesized representation of the term, such as "((75 - 25) * 8)".
func (t *Term) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Term) write(sb *strings.Builder) {
	if t.IsAtomic() {
		sb.WriteString(strconv.Itoa(t.value))
		return
	}
	sb.WriteByte('(')
	t.left.write(sb)
	sb.WriteByte(' ')
	sb.WriteString(t.op.String())
	sb.WriteByte(' ')
	t.right.write(sb)
	sb.WriteByte(')')
}

// Eval recomputes the value of the expression tree, bottom-up.
// It returns an error if an intermediate result is not a positive integer,
// or if a node's value is inconsistent with its subterms.
func (t *Term) Eval() (int, error) {
	if t.IsAtomic() {
		if t.value <= 0 {
			return 0, errors.Errorf("atomic value %d is not positive", t.value)
		}
		return t.value, nil
	}
	a, err := t.left.Eval()
	if err != nil {
		return 0, err
	}
	b, err := t.right.Eval()
	if err != nil {
		return 0, err
	}
	v, ok := t.op.apply(a, b)
	if !ok {
		return 0, errors.Errorf("%s is not a positive integer", t)
	}
	if v != t.value {
		return 0, errors.Errorf("%s evaluates to %d, not %d", t, v, t.value)
	}
	return v, nil
}

// Atoms returns the values of the atomic terms of t, from left to right.
func (t *Term) Atoms() []int {
	return t.appendAtoms(nil)
}

func (t *Term) appendAtoms(res []int) []int {
	if t.IsAtomic() {
		return append(res, t.value)
	}
	res = t.left.appendAtoms(res)
	return t.right.appendAtoms(res)
}
