package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTerm(t *testing.T, op Op, a, b *Term) *Term {
	t.Helper()
	res, err := NewTerm(op, a, b)
	require.NoError(t, err)
	return res
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "+", Add.String())
	assert.Equal(t, "-", Sub.String())
	assert.Equal(t, "*", Mul.String())
	assert.Equal(t, "/", Div.String())
	assert.Panics(t, func() { _ = Op(42).String() })
}

func TestOpApply(t *testing.T) {
	tests := []struct {
		op   Op
		a, b int
		res  int
		ok   bool
	}{
		{Add, 4, 3, 7, true},
		{Sub, 4, 3, 1, true},
		{Sub, 3, 3, 0, false},
		{Sub, 3, 4, 0, false},
		{Mul, 4, 3, 12, true},
		{Div, 12, 4, 3, true},
		{Div, 12, 5, 0, false},
		{Div, 5, 5, 1, true},
	}
	for _, test := range tests {
		res, ok := test.op.apply(test.a, test.b)
		assert.Equal(t, test.ok, ok, "%d %s %d", test.a, test.op, test.b)
		if ok {
			assert.Equal(t, test.res, res, "%d %s %d", test.a, test.op, test.b)
		}
	}
}

func TestTermString(t *testing.T) {
	sum := mustTerm(t, Add, Atom(75), Atom(25))
	prod := mustTerm(t, Mul, sum, Atom(8))
	assert.Equal(t, "75", Atom(75).String())
	assert.Equal(t, "(75 + 25)", sum.String())
	assert.Equal(t, "((75 + 25) * 8)", prod.String())
	assert.Equal(t, 800, prod.Value())
}

func TestTermAccessors(t *testing.T) {
	a, b := Atom(6), Atom(2)
	div := mustTerm(t, Div, a, b)
	assert.True(t, a.IsAtomic())
	assert.False(t, div.IsAtomic())
	assert.Equal(t, Div, div.Op())
	left, right := div.Operands()
	assert.Same(t, a, left)
	assert.Same(t, b, right)
	left, right = a.Operands()
	assert.Nil(t, left)
	assert.Nil(t, right)
	assert.Panics(t, func() { a.Op() })
}

func TestNewTermInvalid(t *testing.T) {
	_, err := NewTerm(Sub, Atom(3), Atom(3))
	assert.Error(t, err, "null result")
	_, err = NewTerm(Sub, Atom(3), Atom(5))
	assert.Error(t, err, "negative result")
	_, err = NewTerm(Div, Atom(7), Atom(2))
	assert.Error(t, err, "fractional result")
	_, err = NewTerm(Add, Atom(0), Atom(2))
	assert.Error(t, err, "null operand")
	sum, err := NewTerm(Add, Atom(3), Atom(5))
	require.NoError(t, err, "smaller operand on the left")
	assert.Equal(t, "(3 + 5)", sum.String())
}

func TestEqual(t *testing.T) {
	sum := mustTerm(t, Add, Atom(2), Atom(2))
	prod := mustTerm(t, Mul, Atom(2), Atom(2))
	assert.True(t, Equal(Atom(4), Atom(4)))
	assert.False(t, Equal(Atom(4), Atom(5)))
	assert.True(t, Equal(sum, mustTerm(t, Add, Atom(2), Atom(2))))
	assert.False(t, Equal(sum, prod), "same value, different operators")
	assert.False(t, Equal(sum, Atom(4)), "same value, atomic and derived")
	assert.False(t, Equal(Atom(4), sum), "same value, atomic and derived")

	ab := mustTerm(t, Add, mustTerm(t, Mul, Atom(3), Atom(2)), Atom(4))
	ba := mustTerm(t, Add, Atom(4), mustTerm(t, Mul, Atom(3), Atom(2)))
	assert.False(t, Equal(ab, ba), "operands are compared in order")
	assert.True(t, Equal(ab, mustTerm(t, Add, mustTerm(t, Mul, Atom(3), Atom(2)), Atom(4))))
	assert.False(t, Equal(ab, mustTerm(t, Add, mustTerm(t, Add, Atom(3), Atom(3)), Atom(4))), "subterms differ")
}

func TestEval(t *testing.T) {
	term := mustTerm(t, Mul, mustTerm(t, Sub, Atom(75), Atom(25)), Atom(8))
	v, err := term.Eval()
	require.NoError(t, err)
	assert.Equal(t, 400, v)

	bad := &Term{value: 5, op: Add, left: Atom(2), right: Atom(2)}
	_, err = bad.Eval()
	assert.Error(t, err, "inconsistent value")

	neg := &Term{value: -1, op: Sub, left: Atom(2), right: Atom(3)}
	_, err = neg.Eval()
	assert.Error(t, err, "negative intermediate value")

	_, err = Atom(0).Eval()
	assert.Error(t, err, "null atom")
}

func TestAtoms(t *testing.T) {
	term := mustTerm(t, Add, mustTerm(t, Mul, Atom(100), Atom(9)), mustTerm(t, Div, Atom(50), Atom(25)))
	assert.Equal(t, []int{100, 9, 50, 25}, term.Atoms())
	assert.Equal(t, []int{7}, Atom(7).Atoms())
}

func TestSortTerms(t *testing.T) {
	first, second := Atom(3), Atom(3)
	terms := []*Term{Atom(1), first, Atom(10), second, Atom(2)}
	sortTerms(terms)
	assert.Equal(t, 10, terms[0].Value())
	assert.Same(t, first, terms[1], "sort must be stable")
	assert.Same(t, second, terms[2], "sort must be stable")
	assert.Equal(t, 2, terms[3].Value())
	assert.Equal(t, 1, terms[4].Value())
}

func TestPoolOps(t *testing.T) {
	p := pool{Atom(9), Atom(5), Atom(5), Atom(1)}
	assert.Equal(t, 0, p.position(10))
	assert.Equal(t, 1, p.position(5), "inserted before equal values")
	assert.Equal(t, 3, p.position(2))
	assert.Equal(t, 4, p.position(0))

	term := Atom(6)
	p.insert(1, term)
	assert.True(t, p.sorted())
	assert.Len(t, p, 5)
	assert.Same(t, term, p.remove(1))
	assert.Len(t, p, 4)
	assert.Equal(t, 9, p.remove(0).Value())
	assert.Equal(t, 1, p.remove(2).Value())
	assert.Len(t, p, 2)
	assert.False(t, pool{Atom(1), Atom(2)}.sorted())
}
