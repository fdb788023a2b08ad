package factor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/factor"
)

// TestSumOut_Marginals checks both single-variable marginals of a 2×2 table.
func TestSumOut_Marginals(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	f := table(t, []float64{0.1, 0.2, 0.3, 0.4}, x, y)

	px, err := f.SumOut(y)
	require.NoError(t, err)
	require.Equal(t, []*core.Variable{x}, px.Vars())
	require.InDeltaSlice(t, []float64{0.3, 0.7}, px.Values(), eps)

	py, err := f.SumOut(x)
	require.NoError(t, err)
	require.Equal(t, []*core.Variable{y}, py.Vars())
	require.InDeltaSlice(t, []float64{0.4, 0.6}, py.Values(), eps)
}

// TestSumOut_Consistency covers the no-op and all-variables edge cases.
func TestSumOut_Consistency(t *testing.T) {
	x := boolVar(t, "X")
	w := labelVar(t, "W", "a", "b", "c")
	f := table(t, []float64{1, 2, 3, 4, 5, 6}, x, w)

	same, err := f.SumOut()
	require.NoError(t, err)
	require.Equal(t, f.Values(), same.Values())
	require.Equal(t, f.Vars(), same.Vars())
	require.NotSame(t, f, same)

	all, err := f.SumOut(w, x)
	require.NoError(t, err)
	require.Equal(t, 0, all.Len())
	require.Equal(t, []float64{f.Sum()}, all.Values())

	_, err = f.SumOut(boolVar(t, "Z"))
	require.ErrorIs(t, err, factor.ErrUnknownVariable)
	_, err = f.SumOut(x, x)
	require.ErrorIs(t, err, factor.ErrDuplicateVariable)
	_, err = f.SumOut(nil)
	require.ErrorIs(t, err, factor.ErrNilVariable)
}

// TestMarginal_Order keeps variables in the requested order.
func TestMarginal_Order(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	z := boolVar(t, "Z")
	// P(X,Y,Z) with distinct cells so misalignment would show.
	f := table(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, x, y, z)

	zx, err := f.Marginal(z, x)
	require.NoError(t, err)
	require.Equal(t, []*core.Variable{z, x}, zx.Vars())
	// Z=t,X=t: 1+3; Z=t,X=f: 5+7; Z=f,X=t: 2+4; Z=f,X=f: 6+8
	require.Equal(t, []float64{4, 12, 6, 14}, zx.Values())

	_, err = f.Marginal(z, z)
	require.ErrorIs(t, err, factor.ErrDuplicateVariable)
	_, err = f.Marginal(boolVar(t, "Q"))
	require.ErrorIs(t, err, factor.ErrUnknownVariable)
}

// TestProduct_IndependentVariables is the outer-product scenario of two
// uniform Booleans: the joint is four equal cells, first variable slowest.
func TestProduct_IndependentVariables(t *testing.T) {
	a := boolVar(t, "A")
	b := boolVar(t, "B")
	pa := table(t, []float64{0.5, 0.5}, a)
	pb := table(t, []float64{0.5, 0.5}, b)

	joint, err := pa.Product(pb)
	require.NoError(t, err)
	require.Equal(t, []*core.Variable{a, b}, joint.Vars())
	require.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, joint.Values())
}

// TestProduct_SharedVariable multiplies a prior by a conditional table.
func TestProduct_SharedVariable(t *testing.T) {
	rain := boolVar(t, "Rain")
	spr := boolVar(t, "Sprinkler")
	prior := table(t, []float64{0.2, 0.8}, rain)
	cond := table(t, []float64{0.01, 0.99, 0.4, 0.6}, rain, spr)

	joint, err := prior.Product(cond)
	require.NoError(t, err)
	require.Equal(t, []*core.Variable{rain, spr}, joint.Vars())
	require.InDeltaSlice(t, []float64{0.002, 0.198, 0.32, 0.48}, joint.Values(), eps)

	ps, err := joint.SumOut(rain)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.322, 0.678}, ps.Values(), eps)

	// Operand order does not change the function, only the layout.
	swapped, err := cond.Product(prior)
	require.NoError(t, err)
	require.True(t, joint.AlmostEqual(swapped, eps))
}

// TestProduct_Alignment multiplies factors whose shared variables appear in
// different orders.
func TestProduct_Alignment(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	w := labelVar(t, "W", "a", "b", "c")

	f := table(t, []float64{1, 2, 3, 4, 5, 6}, x, w)
	g := table(t, []float64{10, 20, 30, 40, 50, 60}, w, y)

	p, err := f.Product(g)
	require.NoError(t, err)
	require.Equal(t, []*core.Variable{x, w, y}, p.Vars())

	for world, v := range p.All() {
		xv, _ := world.Value(x)
		wv, _ := world.Value(w)
		yv, _ := world.Value(y)
		fv, err := f.ValueOf(xv, wv)
		require.NoError(t, err)
		gv, err := g.ValueOf(wv, yv)
		require.NoError(t, err)
		require.Equal(t, fv*gv, v, "world %v", world)
	}
}

// TestProductOrdered checks explicit layouts and order validation.
func TestProductOrdered(t *testing.T) {
	a := boolVar(t, "A")
	b := boolVar(t, "B")
	pa := table(t, []float64{0.3, 0.7}, a)
	pb := table(t, []float64{0.6, 0.4}, b)

	ba, err := pa.ProductOrdered(pb, b, a)
	require.NoError(t, err)
	require.Equal(t, []*core.Variable{b, a}, ba.Vars())
	// B slowest: (b,a) = (t,t) (t,f) (f,t) (f,f)
	require.InDeltaSlice(t, []float64{0.18, 0.42, 0.12, 0.28}, ba.Values(), eps)

	_, err = pa.ProductOrdered(pb, a)
	require.ErrorIs(t, err, factor.ErrOrderMismatch, "missing variable")

	_, err = pa.ProductOrdered(pb, a, boolVar(t, "C"))
	require.ErrorIs(t, err, factor.ErrOrderMismatch, "foreign variable")

	_, err = pa.ProductOrdered(pb, a, a)
	require.ErrorIs(t, err, factor.ErrOrderMismatch, "duplicate variable")

	_, err = pa.ProductOrdered(pb, a, b, boolVar(t, "C"))
	require.ErrorIs(t, err, factor.ErrOrderMismatch, "extra variable")

	_, err = pa.ProductOrdered(nil, a)
	require.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestProduct_DomainMismatch rejects same-named variables with different domains.
func TestProduct_DomainMismatch(t *testing.T) {
	w1 := labelVar(t, "W", "a", "b")
	w2 := labelVar(t, "W", "b", "a")
	f := table(t, []float64{0.5, 0.5}, w1)
	g := table(t, []float64{0.5, 0.5}, w2)

	_, err := f.Product(g)
	require.ErrorIs(t, err, factor.ErrDomainMismatch)

	_, err = f.Product(nil)
	require.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestDivideBy_ProductInverse checks (A·B)/B == A for disjoint scopes and a
// divisor without zeros.
func TestDivideBy_ProductInverse(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	w := labelVar(t, "W", "a", "b", "c")
	a := table(t, []float64{0.3, 0.7}, x)
	b := table(t, []float64{0.1, 0.2, 0.3, 0.15, 0.15, 0.1}, y, w)

	ab, err := a.Product(b)
	require.NoError(t, err)
	q, err := ab.DivideBy(b)
	require.NoError(t, err)
	require.Equal(t, ab.Vars(), q.Vars())

	for world, v := range q.All() {
		xv, _ := world.Value(x)
		want, err := a.ValueOf(xv)
		require.NoError(t, err)
		require.InDelta(t, want, v, eps, "world %v", world)
	}

	// Summing the quotient over B's scope recovers |dom(Y)|·|dom(W)|·A.
	back, err := q.SumOut(y, w)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{6 * 0.3, 6 * 0.7}, back.Values(), eps)
}

// TestDivideBy_ZeroDivisorYieldsZero pins the 0/0 := 0 convention. Downstream
// algorithms depend on it; do not turn it into an error or NaN.
func TestDivideBy_ZeroDivisorYieldsZero(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")

	num := table(t, []float64{0, 0.5}, x)
	den := table(t, []float64{0, 0.25}, x)
	q, err := num.DivideBy(den)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2}, q.Values())

	// A zero divisor cell zeroes the quotient even under a non-zero numerator.
	num = table(t, []float64{0.4, 0.6}, x)
	q, err = num.DivideBy(den)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2.4}, q.Values())

	// Scalar divisors divide every cell; a zero scalar zeroes the table.
	joint := table(t, []float64{0.1, 0.2, 0.3, 0.4}, x, y)
	half := table(t, []float64{2})
	q, err = joint.DivideBy(half)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.05, 0.1, 0.15, 0.2}, q.Values(), eps)

	zero := table(t, []float64{0})
	q, err = joint.DivideBy(zero)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0}, q.Values())
}

// TestDivideBy_Grouped divides each dividend group by the matching divisor cell.
func TestDivideBy_Grouped(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	joint := table(t, []float64{0.1, 0.2, 0.3, 0.4}, x, y)
	py := table(t, []float64{0.4, 0.6}, y)

	cond, err := joint.DivideBy(py)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.25, 1.0 / 3, 0.75, 2.0 / 3}, cond.Values(), eps)
}

// TestDivideBy_Scope rejects divisors that are not a subset of the dividend.
func TestDivideBy_Scope(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	f := table(t, []float64{0.5, 0.5}, x)
	g := table(t, []float64{0.1, 0.2, 0.3, 0.4}, x, y)

	_, err := f.DivideBy(g)
	require.ErrorIs(t, err, factor.ErrDivisorScope)

	_, err = f.DivideBy(nil)
	require.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestAlmostEqual compares by variable set, ignoring layout order.
func TestAlmostEqual(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	xy := table(t, []float64{1, 2, 3, 4}, x, y)
	yx := table(t, []float64{1, 3, 2, 4}, y, x)
	other := table(t, []float64{1, 2, 3, 4.1}, x, y)

	require.True(t, xy.AlmostEqual(yx, eps))
	require.False(t, xy.AlmostEqual(other, eps))
	require.True(t, xy.AlmostEqual(other, 0.2))
	require.False(t, xy.AlmostEqual(table(t, []float64{0.5, 0.5}, x), eps))
	require.False(t, xy.AlmostEqual(nil, eps))
}
