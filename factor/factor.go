// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/mixedradix"
)

// DefaultEpsilon is the tolerance used when comparing probabilities,
// e.g. "sums to 1" checks.
const DefaultEpsilon = 1e-9

// Formatting literals used by String.
const (
	_fmtOpen  = "<"
	_fmtClose = ">"
	_fmtSep   = ", "
)

// Factor is a dense table of non-negative reals over an ordered set of
// finite random variables. The variable set is fixed at construction;
// values may be changed only through Set and Normalize.
type Factor struct {
	vars   []*core.Variable
	doms   []*core.FiniteDomain // doms[i] is the domain of vars[i]
	pos    map[string]int       // variable name → position in vars
	codec  *mixedradix.Codec    // digits indexed by radix slot
	values []float64            // len == codec.Size()

	// lazily derived, invalidated on mutation; guarded by mu so that
	// concurrent readers may fill them
	mu        sync.Mutex
	sum       float64
	sumValid  bool
	text      string
	textValid bool
}

// New returns a zero-filled factor over vars.
//
// Errors:
//   - ErrNilVariable, ErrDuplicateVariable for malformed variable lists.
//   - core.ErrNotFinite (wrapped) if a variable has no finite domain.
//   - mixedradix.ErrOverflow if the table would not be addressable.
//
// Complexity: O(Π|dom|) time and memory.
func New(vars ...*core.Variable) (*Factor, error) {
	f, err := newFactor(vars)
	if err != nil {
		return nil, factorErrorf("New", err)
	}

	return f, nil
}

// FromValues returns a factor over vars holding a copy of values, given in
// canonical order (first variable slowest).
//
// Errors: those of New, plus ErrValueCount and ErrInvalidValue.
func FromValues(values []float64, vars ...*core.Variable) (*Factor, error) {
	f, err := newFactor(vars)
	if err != nil {
		return nil, factorErrorf("FromValues", err)
	}
	if len(values) != len(f.values) {
		return nil, factorErrorf("FromValues",
			fmt.Errorf("got %d, want %d: %w", len(values), len(f.values), ErrValueCount))
	}
	for i, v := range values {
		if !validValue(v) {
			return nil, factorErrorf("FromValues", fmt.Errorf("cell %d = %v: %w", i, v, ErrInvalidValue))
		}
	}
	copy(f.values, values)

	return f, nil
}

// newFactor validates vars and allocates the table.
// Stage 1: validate variables and collect finite domains.
// Stage 2: assign radix slots in reverse insertion order and build the codec.
// Stage 3: allocate the zero-filled value buffer.
func newFactor(vars []*core.Variable) (*Factor, error) {
	n := len(vars)
	f := &Factor{
		vars: make([]*core.Variable, n),
		doms: make([]*core.FiniteDomain, n),
		pos:  make(map[string]int, n),
	}
	for i, v := range vars {
		if v == nil {
			return nil, ErrNilVariable
		}
		if _, dup := f.pos[v.Name()]; dup {
			return nil, fmt.Errorf("%s: %w", v.Name(), ErrDuplicateVariable)
		}
		fd, ok := v.FiniteDomain()
		if !ok {
			return nil, fmt.Errorf("%s: %w", v.Name(), core.ErrNotFinite)
		}
		f.vars[i] = v
		f.doms[i] = fd
		f.pos[v.Name()] = i
	}

	// The last variable occupies slot 0 (fastest), the first the highest slot.
	radices := make([]int, n)
	for i := range vars {
		radices[n-1-i] = f.doms[i].Size()
	}
	codec, err := mixedradix.New(radices...)
	if err != nil {
		return nil, err
	}
	f.codec = codec
	f.values = make([]float64, codec.Size())

	return f, nil
}

// slot returns the radix slot of the variable at position i.
func (f *Factor) slot(i int) int { return len(f.vars) - 1 - i }

// validValue reports whether v may be stored in a table.
func validValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Vars returns the variables in insertion order (a copy of the slice).
func (f *Factor) Vars() []*core.Variable {
	out := make([]*core.Variable, len(f.vars))
	copy(out, f.vars)

	return out
}

// Len returns the number of variables.
func (f *Factor) Len() int { return len(f.vars) }

// Size returns the number of cells.
func (f *Factor) Size() int { return len(f.values) }

// Contains reports whether v (by name) is one of the factor's variables.
func (f *Factor) Contains(v *core.Variable) bool {
	if v == nil {
		return false
	}
	_, ok := f.pos[v.Name()]

	return ok
}

// Values returns a copy of the cells in canonical order.
func (f *Factor) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)

	return out
}

// At returns the cell at a flat offset.
func (f *Factor) At(offset int) (float64, error) {
	if offset < 0 || offset >= len(f.values) {
		return 0, factorErrorf("At", fmt.Errorf("%d: %w", offset, ErrOffsetRange))
	}

	return f.values[offset], nil
}

// Set assigns the cell at a flat offset and invalidates cached sum and text.
func (f *Factor) Set(offset int, value float64) error {
	if offset < 0 || offset >= len(f.values) {
		return factorErrorf("Set", fmt.Errorf("%d: %w", offset, ErrOffsetRange))
	}
	if !validValue(value) {
		return factorErrorf("Set", fmt.Errorf("%v: %w", value, ErrInvalidValue))
	}
	f.values[offset] = value
	f.invalidate()

	return nil
}

// Sum returns the total mass of the table. Cached until the next mutation.
func (f *Factor) Sum() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.sumValid {
		s := 0.0
		for _, v := range f.values {
			s += v
		}
		f.sum = s
		f.sumValid = true
	}

	return f.sum
}

// Normalize scales the table in place so that it sums to 1 and returns f.
// A table summing to 0 or exactly 1 is left untouched.
// Callers needing the unnormalized values must copy them first.
func (f *Factor) Normalize() *Factor {
	s := f.Sum()
	if s != 0 && s != 1 {
		for i := range f.values {
			f.values[i] /= s
		}
		f.invalidate()
	}

	return f
}

// Clone returns an independent copy sharing only the immutable variables.
func (f *Factor) Clone() *Factor {
	out := &Factor{
		vars:   f.vars,
		doms:   f.doms,
		pos:    f.pos,
		codec:  f.codec,
		values: make([]float64, len(f.values)),
	}
	copy(out.values, f.values)

	return out
}

// String renders the cells as <v0, v1, ...> in canonical order. Cached.
func (f *Factor) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.textValid {
		var sb strings.Builder
		sb.WriteString(_fmtOpen)
		for i, v := range f.values {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString(_fmtClose)
		f.text = sb.String()
		f.textValid = true
	}

	return f.text
}

// invalidate drops every lazily derived field.
func (f *Factor) invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sumValid = false
	f.textValid = false
}
