package factor_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/factor"
)

// TestNew_Validation covers malformed variable lists.
func TestNew_Validation(t *testing.T) {
	x := boolVar(t, "X")

	_, err := factor.New(x, nil)
	require.ErrorIs(t, err, factor.ErrNilVariable)

	_, err = factor.New(x, boolVar(t, "X"))
	require.ErrorIs(t, err, factor.ErrDuplicateVariable)

	open, err := core.NewVariable("Temp", openDomain{})
	require.NoError(t, err)
	_, err = factor.New(open)
	require.ErrorIs(t, err, core.ErrNotFinite)
}

// TestFromValues_Validation covers size and numeric policy checks.
func TestFromValues_Validation(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")

	_, err := factor.FromValues([]float64{0.1, 0.2, 0.3}, x, y)
	require.ErrorIs(t, err, factor.ErrValueCount)

	_, err = factor.FromValues([]float64{0.5, math.NaN()}, x)
	require.ErrorIs(t, err, factor.ErrInvalidValue)

	_, err = factor.FromValues([]float64{-0.5, 1.5}, x)
	require.ErrorIs(t, err, factor.ErrInvalidValue)

	_, err = factor.FromValues([]float64{math.Inf(1), 0}, x)
	require.ErrorIs(t, err, factor.ErrInvalidValue)

	src := []float64{0.4, 0.6}
	f := table(t, src, x)
	src[0] = 0.9
	require.Equal(t, []float64{0.4, 0.6}, f.Values(), "FromValues must copy its input")
}

// TestShape checks Len, Size, Contains and Vars.
func TestShape(t *testing.T) {
	x := boolVar(t, "X")
	w := labelVar(t, "W", "a", "b", "c")

	f, err := factor.New(x, w)
	require.NoError(t, err)
	require.Equal(t, 2, f.Len())
	require.Equal(t, 6, f.Size())
	require.True(t, f.Contains(boolVar(t, "X")), "membership is by name")
	require.False(t, f.Contains(boolVar(t, "Z")))
	require.False(t, f.Contains(nil))
	require.Equal(t, []*core.Variable{x, w}, f.Vars())
	require.Equal(t, make([]float64, 6), f.Values())

	scalar, err := factor.New()
	require.NoError(t, err)
	require.Equal(t, 0, scalar.Len())
	require.Equal(t, 1, scalar.Size())
}

// TestCanonicalOrder pins the layout: first variable slowest, last fastest.
func TestCanonicalOrder(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	f := table(t, []float64{1, 2, 3, 4}, x, y)

	cases := []struct {
		x, y core.Value
		want float64
	}{
		{core.True, core.True, 1},
		{core.True, core.False, 2},
		{core.False, core.True, 3},
		{core.False, core.False, 4},
	}
	for _, tc := range cases {
		got, err := f.ValueOf(tc.x, tc.y)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)

		// Assignments may be supplied in any order.
		got, err = f.Value(assign(t, y, tc.y), assign(t, x, tc.x))
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

// TestIndex_MixedDomains checks the mixed-radix offset with a 3-valued variable.
func TestIndex_MixedDomains(t *testing.T) {
	w := labelVar(t, "W", "a", "b", "c")
	x := boolVar(t, "X")
	f, err := factor.New(w, x)
	require.NoError(t, err)

	idx, err := f.Index(core.Label("b"), core.False)
	require.NoError(t, err)
	require.Equal(t, 3, idx) // b=1 (weight 2) + false=1 (weight 1)

	idx, err = f.Index(core.Label("c"), core.True)
	require.NoError(t, err)
	require.Equal(t, 4, idx)

	_, err = f.Index(core.Label("d"), core.True)
	require.ErrorIs(t, err, core.ErrValueNotInDomain)

	_, err = f.Index(core.True)
	require.ErrorIs(t, err, factor.ErrArity)
}

// TestValue_Errors covers every rejected assignment shape.
func TestValue_Errors(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	z := boolVar(t, "Z")
	f := table(t, []float64{1, 2, 3, 4}, x, y)

	_, err := f.Value(assign(t, x, core.True))
	require.ErrorIs(t, err, factor.ErrArity)

	_, err = f.Value(assign(t, x, core.True), assign(t, z, core.True))
	require.ErrorIs(t, err, factor.ErrUnknownVariable)

	_, err = f.Value(assign(t, x, core.True), assign(t, x, core.False))
	require.ErrorIs(t, err, factor.ErrDuplicateVariable)

	_, err = f.Value(core.Assignment{Var: x, Value: core.Label("?")}, assign(t, y, core.True))
	require.ErrorIs(t, err, core.ErrValueNotInDomain)
}

// TestSet_InvalidatesCaches ensures Sum and String follow mutations.
func TestSet_InvalidatesCaches(t *testing.T) {
	x := boolVar(t, "X")
	f := table(t, []float64{0.25, 0.25}, x)

	require.Equal(t, 0.5, f.Sum())
	require.Equal(t, "<0.25, 0.25>", f.String())

	require.NoError(t, f.Set(1, 0.75))
	require.Equal(t, 1.0, f.Sum())
	require.Equal(t, "<0.25, 0.75>", f.String())

	v, err := f.At(1)
	require.NoError(t, err)
	require.Equal(t, 0.75, v)

	require.ErrorIs(t, f.Set(2, 0.1), factor.ErrOffsetRange)
	require.ErrorIs(t, f.Set(0, -1), factor.ErrInvalidValue)
	_, err = f.At(-1)
	require.ErrorIs(t, err, factor.ErrOffsetRange)
}

// TestNormalize covers in-place scaling, idempotence and the zero-sum no-op.
func TestNormalize(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")

	f := table(t, []float64{1, 3, 2, 2}, x, y)
	same := f.Normalize()
	require.Same(t, f, same, "Normalize mutates and returns the receiver")
	require.InDeltaSlice(t, []float64{0.125, 0.375, 0.25, 0.25}, f.Values(), eps)
	require.InDelta(t, 1.0, f.Sum(), eps)

	once := f.Values()
	f.Normalize()
	require.Equal(t, once, f.Values(), "second Normalize must not change values")

	zero := table(t, []float64{0, 0}, x)
	zero.Normalize()
	require.Equal(t, []float64{0, 0}, zero.Values())
}

// TestClone_Independent ensures clones do not share cells.
func TestClone_Independent(t *testing.T) {
	x := boolVar(t, "X")
	f := table(t, []float64{0.4, 0.6}, x)
	c := f.Clone()
	require.NoError(t, c.Set(0, 0.1))

	require.Equal(t, []float64{0.4, 0.6}, f.Values())
	require.Equal(t, []float64{0.1, 0.6}, c.Values())
	require.Equal(t, "<0.4, 0.6>", f.String())
}

// TestAll_OrderAndRestart checks the lazy sequence against the layout.
func TestAll_OrderAndRestart(t *testing.T) {
	x := boolVar(t, "X")
	w := labelVar(t, "W", "a", "b")
	f := table(t, []float64{0.1, 0.2, 0.3, 0.4}, x, w)

	type row struct {
		x, w string
		p    float64
	}
	collect := func() []row {
		var rows []row
		for world, p := range f.All() {
			xv, ok := world.Value(x)
			require.True(t, ok)
			wv, ok := world.Value(w)
			require.True(t, ok)
			rows = append(rows, row{xv.String(), wv.String(), p})
		}
		return rows
	}
	want := []row{
		{"true", "a", 0.1},
		{"true", "b", 0.2},
		{"false", "a", 0.3},
		{"false", "b", 0.4},
	}
	require.Equal(t, want, collect())
	require.Equal(t, want, collect(), "re-iterating must reproduce the same order")

	n := 0
	for range f.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)

	scalar := table(t, []float64{0.7})
	for world, p := range scalar.All() {
		assert.Empty(t, world)
		assert.Equal(t, 0.7, p)
	}
}

// TestConcurrentReads shares one factor between readers that fill the
// cached sum and text. Run with -race.
func TestConcurrentReads(t *testing.T) {
	x := boolVar(t, "X")
	y := boolVar(t, "Y")
	f := table(t, []float64{0.1, 0.2, 0.3, 0.4}, x, y)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if f.Sum() <= 0 || f.String() == "" {
					errs <- assert.AnError
					return
				}
				if _, err := f.SumOut(x); err != nil {
					errs <- err
					return
				}
				if _, err := f.SumOut(x, y); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.InDelta(t, 1.0, f.Sum(), eps)
	assert.Equal(t, "<0.1, 0.2, 0.3, 0.4>", f.String())
}
