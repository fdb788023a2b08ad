// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// Value returns the cell for a complete assignment of the factor's variables.
// Assignments may come in any order, but must name every variable exactly once.
//
// Errors:
//   - ErrArity if len(assignments) differs from Len().
//   - ErrUnknownVariable, ErrDuplicateVariable for a wrong variable set.
//   - core.ErrValueNotInDomain (wrapped) for a value outside its domain.
//
// Complexity: O(n).
func (f *Factor) Value(assignments ...core.Assignment) (float64, error) {
	offset, err := f.offsetOf(assignments)
	if err != nil {
		return 0, factorErrorf("Value", err)
	}

	return f.values[offset], nil
}

// ValueOf returns the cell for values given positionally, in Vars() order.
func (f *Factor) ValueOf(values ...core.Value) (float64, error) {
	offset, err := f.Index(values...)
	if err != nil {
		return 0, err
	}

	return f.values[offset], nil
}

// Index returns the flat offset of the cell for values given positionally,
// in Vars() order.
func (f *Factor) Index(values ...core.Value) (int, error) {
	if len(values) != len(f.vars) {
		return 0, factorErrorf("Index",
			fmt.Errorf("got %d values, want %d: %w", len(values), len(f.vars), ErrArity))
	}
	digits := make([]int, len(f.vars))
	for i, v := range values {
		idx, ok := f.doms[i].IndexOf(v)
		if !ok {
			return 0, factorErrorf("Index",
				fmt.Errorf("%s=%s: %w", f.vars[i].Name(), v, core.ErrValueNotInDomain))
		}
		digits[f.slot(i)] = idx
	}

	return f.codec.Offset(digits), nil
}

// offsetOf maps an unordered complete assignment to a flat offset.
func (f *Factor) offsetOf(assignments []core.Assignment) (int, error) {
	if len(assignments) != len(f.vars) {
		return 0, fmt.Errorf("got %d assignments, want %d: %w", len(assignments), len(f.vars), ErrArity)
	}
	digits := make([]int, len(f.vars))
	seen := make([]bool, len(f.vars))
	for _, a := range assignments {
		if a.Var == nil {
			return 0, ErrNilVariable
		}
		i, ok := f.pos[a.Var.Name()]
		if !ok {
			return 0, fmt.Errorf("%s: %w", a.Var.Name(), ErrUnknownVariable)
		}
		if seen[i] {
			return 0, fmt.Errorf("%s: %w", a.Var.Name(), ErrDuplicateVariable)
		}
		seen[i] = true
		idx, ok := f.doms[i].IndexOf(a.Value)
		if !ok {
			return 0, fmt.Errorf("%s: %w", a, core.ErrValueNotInDomain)
		}
		digits[f.slot(i)] = idx
	}

	return f.codec.Offset(digits), nil
}
