package factor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/factor"
)

// Tolerance for floating-point comparisons across factor tests.
const eps = 1e-9

// boolVar returns a Boolean variable or fails the test.
func boolVar(t *testing.T, name string) *core.Variable {
	t.Helper()
	v, err := core.NewBoolean(name)
	require.NoError(t, err)

	return v
}

// labelVar returns a categorical variable over labels or fails the test.
func labelVar(t *testing.T, name string, labels ...string) *core.Variable {
	t.Helper()
	d, err := core.NewLabelDomain(labels...)
	require.NoError(t, err)
	v, err := core.NewVariable(name, d)
	require.NoError(t, err)

	return v
}

// table builds a factor from values or fails the test.
func table(t *testing.T, values []float64, vars ...*core.Variable) *factor.Factor {
	t.Helper()
	f, err := factor.FromValues(values, vars...)
	require.NoError(t, err)

	return f
}

// assign builds a validated assignment or fails the test.
func assign(t *testing.T, v *core.Variable, value core.Value) core.Assignment {
	t.Helper()
	a, err := core.NewAssignment(v, value)
	require.NoError(t, err)

	return a
}

// openDomain is a non-finite Domain used to exercise ErrNotFinite.
type openDomain struct{}

func (openDomain) Finite() bool { return false }

func (openDomain) Contains(core.Value) bool { return true }

func (openDomain) String() string { return "(-inf, +inf)" }
