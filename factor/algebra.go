// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbayes/core"
)

// SumOut marginalizes vars out of f: for every assignment of the remaining
// variables it sums f over all assignments of the removed ones. The result
// keeps the remaining variables in f's order. Summing out nothing yields an
// equal copy; summing out everything yields a single cell equal to Sum().
//
// Errors: ErrNilVariable, ErrUnknownVariable, ErrDuplicateVariable.
// Complexity: O(Size()·n).
func (f *Factor) SumOut(vars ...*core.Variable) (*Factor, error) {
	removed := make(map[string]bool, len(vars))
	for _, v := range vars {
		if v == nil {
			return nil, factorErrorf("SumOut", ErrNilVariable)
		}
		if !f.Contains(v) {
			return nil, factorErrorf("SumOut", fmt.Errorf("%s: %w", v.Name(), ErrUnknownVariable))
		}
		if removed[v.Name()] {
			return nil, factorErrorf("SumOut", fmt.Errorf("%s: %w", v.Name(), ErrDuplicateVariable))
		}
		removed[v.Name()] = true
	}
	keep := make([]*core.Variable, 0, len(f.vars)-len(removed))
	for _, v := range f.vars {
		if !removed[v.Name()] {
			keep = append(keep, v)
		}
	}
	out, err := f.marginalize(keep)
	if err != nil {
		return nil, factorErrorf("SumOut", err)
	}

	return out, nil
}

// Marginal keeps only vars, in the given order, summing out every other
// variable of f. It is SumOut of the complement with a caller-chosen order.
//
// Errors: ErrNilVariable, ErrUnknownVariable, ErrDuplicateVariable.
func (f *Factor) Marginal(vars ...*core.Variable) (*Factor, error) {
	keep := make([]*core.Variable, len(vars))
	for i, v := range vars {
		if v == nil {
			return nil, factorErrorf("Marginal", ErrNilVariable)
		}
		p, ok := f.pos[v.Name()]
		if !ok {
			return nil, factorErrorf("Marginal", fmt.Errorf("%s: %w", v.Name(), ErrUnknownVariable))
		}
		keep[i] = f.vars[p] // canonical handle from f
	}
	out, err := f.marginalize(keep)
	if err != nil {
		return nil, factorErrorf("Marginal", err)
	}

	return out, nil
}

// marginalize accumulates f into a new factor over keep ⊆ f.vars.
func (f *Factor) marginalize(keep []*core.Variable) (*Factor, error) {
	out, err := newFactor(keep)
	if err != nil {
		return nil, err
	}
	if len(keep) == 0 {
		out.values[0] = f.Sum()

		return out, nil
	}
	al, err := align(f, out)
	if err != nil {
		return nil, err
	}
	f.forEach(func(offset int, digits []int) bool {
		out.values[al.offset(digits)] += f.values[offset]

		return true
	})

	return out, nil
}

// Product returns the pointwise product of f and other over the union of
// their variables: f's variables first, then other's variables f lacks.
// Factors with no shared variable produce their outer product.
//
// Errors: ErrNilFactor, ErrDomainMismatch.
// Complexity: O(|result|·n).
func (f *Factor) Product(other *Factor) (*Factor, error) {
	if other == nil {
		return nil, factorErrorf("Product", ErrNilFactor)
	}
	order := f.Vars()
	for _, v := range other.vars {
		if !f.Contains(v) {
			order = append(order, v)
		}
	}
	out, err := f.product(other, order)
	if err != nil {
		return nil, factorErrorf("Product", err)
	}

	return out, nil
}

// ProductOrdered is Product with an explicit variable order for the result.
// The order must name exactly the union of both operands' variables; this
// rejects a mistyped list that would silently drop or invent a variable.
//
// Errors: ErrNilFactor, ErrNilVariable, ErrOrderMismatch, ErrDomainMismatch.
func (f *Factor) ProductOrdered(other *Factor, order ...*core.Variable) (*Factor, error) {
	// 1. Validate operand
	if other == nil {
		return nil, factorErrorf("ProductOrdered", ErrNilFactor)
	}

	// 2. Collect the union of variables
	union := make(map[string]*core.Variable, len(f.vars)+len(other.vars))
	for _, v := range other.vars {
		union[v.Name()] = v
	}
	for _, v := range f.vars {
		union[v.Name()] = v // f's handle wins for shared variables
	}
	// 3. Check that order is a permutation of the union
	if len(order) != len(union) {
		return nil, factorErrorf("ProductOrdered",
			fmt.Errorf("order has %d variables, union has %d: %w", len(order), len(union), ErrOrderMismatch))
	}
	resolved := make([]*core.Variable, len(order))
	used := make(map[string]bool, len(order))
	for i, v := range order {
		if v == nil {
			return nil, factorErrorf("ProductOrdered", ErrNilVariable)
		}
		u, ok := union[v.Name()]
		if !ok || used[v.Name()] {
			return nil, factorErrorf("ProductOrdered", fmt.Errorf("%s: %w", v.Name(), ErrOrderMismatch))
		}
		used[v.Name()] = true
		resolved[i] = u
	}
	// 4. Fill the product in the requested layout
	out, err := f.product(other, resolved)
	if err != nil {
		return nil, factorErrorf("ProductOrdered", err)
	}

	return out, nil
}

// product fills a new factor over order (already validated as the union)
// with f(w|f) · other(w|other) for every world w.
func (f *Factor) product(other *Factor, order []*core.Variable) (*Factor, error) {
	out, err := newFactor(order)
	if err != nil {
		return nil, err
	}
	left, err := align(out, f)
	if err != nil {
		return nil, err
	}
	right, err := align(out, other)
	if err != nil {
		return nil, err
	}
	out.forEach(func(offset int, digits []int) bool {
		out.values[offset] = f.values[left.offset(digits)] * other.values[right.offset(digits)]

		return true
	})

	return out, nil
}

// DivideBy returns f / divisor pointwise, over f's variables in f's order.
// The divisor's variables must be a subset of f's: every dividend cell is
// divided by the divisor cell matching its sub-assignment (a scalar divisor
// divides every cell).
//
// Zero convention: a zero divisor cell yields 0 in the quotient (0/0 := 0),
// never an error or NaN. Algorithms that divide out an accumulated product
// rely on this to stay well defined under zero-probability evidence.
//
// Errors: ErrNilFactor, ErrDivisorScope, ErrDomainMismatch.
// Complexity: O(Size()·n).
func (f *Factor) DivideBy(divisor *Factor) (*Factor, error) {
	// 1. Validate divisor and its scope
	if divisor == nil {
		return nil, factorErrorf("DivideBy", ErrNilFactor)
	}
	for _, v := range divisor.vars {
		if !f.Contains(v) {
			return nil, factorErrorf("DivideBy", fmt.Errorf("%s: %w", v.Name(), ErrDivisorScope))
		}
	}
	// 2. Map dividend digits onto divisor offsets
	al, err := align(f, divisor)
	if err != nil {
		return nil, factorErrorf("DivideBy", err)
	}
	quotient, err := newFactor(f.vars)
	if err != nil {
		return nil, factorErrorf("DivideBy", err)
	}
	// 3. Divide cell by cell; a zero divisor yields 0
	f.forEach(func(offset int, digits []int) bool {
		d := divisor.values[al.offset(digits)]
		if d == 0 {
			quotient.values[offset] = 0
		} else {
			quotient.values[offset] = f.values[offset] / d
		}

		return true
	})

	return quotient, nil
}

// AlmostEqual reports whether f and other are defined over the same
// variables (in any order) and agree on every world within eps.
func (f *Factor) AlmostEqual(other *Factor, eps float64) bool {
	if other == nil || len(f.vars) != len(other.vars) {
		return false
	}
	al, err := align(f, other)
	if err != nil {
		return false
	}
	equal := true
	f.forEach(func(offset int, digits []int) bool {
		if math.Abs(f.values[offset]-other.values[al.offset(digits)]) > eps {
			equal = false
		}

		return equal
	})

	return equal
}
