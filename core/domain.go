// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// Domain is the set of values a Variable may take.
//
// lvbayes only implements FiniteDomain. The interface exists so that callers
// modelling other kinds of variables get a clear ErrNotFinite from the
// factor algebra and the evaluator instead of a silent misbehaviour.
type Domain interface {
	// Finite reports whether the domain is a finite, enumerable list of values.
	Finite() bool
	// Contains reports whether v is a member of the domain.
	Contains(v Value) bool
	// String renders the domain for diagnostics.
	String() string
}

// FiniteDomain is an ordered, duplicate-free list of possible values.
// The position of a value in the list is its domain index.
// It is immutable once created.
type FiniteDomain struct {
	values []Value
	index  map[Value]int // value → domain index
}

// Compile-time check.
var _ Domain = (*FiniteDomain)(nil)

// NewFiniteDomain builds a domain from values in the given order.
//
// Errors:
//   - ErrEmptyDomain if no values are given.
//   - ErrDuplicateValue if a value repeats (or the zero Value is used).
//
// Complexity: O(n).
func NewFiniteDomain(values ...Value) (*FiniteDomain, error) {
	if len(values) == 0 {
		return nil, ErrEmptyDomain
	}
	d := &FiniteDomain{
		values: make([]Value, len(values)),
		index:  make(map[Value]int, len(values)),
	}
	for i, v := range values {
		if v.IsZero() {
			return nil, fmt.Errorf("core: NewFiniteDomain: position %d: %w", i, ErrDuplicateValue)
		}
		if _, dup := d.index[v]; dup {
			return nil, fmt.Errorf("core: NewFiniteDomain: %q: %w", v, ErrDuplicateValue)
		}
		d.values[i] = v
		d.index[v] = i
	}

	return d, nil
}

// NewBooleanDomain returns the domain {true, false}, in that order.
func NewBooleanDomain() *FiniteDomain {
	d, _ := NewFiniteDomain(True, False) // never fails: two distinct values

	return d
}

// NewLabelDomain returns a categorical domain over labels in the given order.
func NewLabelDomain(labels ...string) (*FiniteDomain, error) {
	values := make([]Value, len(labels))
	for i, l := range labels {
		values[i] = Label(l)
	}

	return NewFiniteDomain(values...)
}

// MaxIntDomainSize bounds the number of values NewIntDomain will enumerate.
const MaxIntDomainSize = 1 << 20

// NewIntDomain returns the integer domain {lo, lo+1, ..., hi}.
//
// Errors: ErrBadRange if hi < lo or the range holds more than
// MaxIntDomainSize values.
func NewIntDomain(lo, hi int64) (*FiniteDomain, error) {
	if hi < lo {
		return nil, ErrBadRange
	}
	// hi-lo may wrap for ranges wider than MaxInt64; compare unsigned.
	width := uint64(hi) - uint64(lo)
	if width >= MaxIntDomainSize {
		return nil, fmt.Errorf("%w: [%d, %d] holds more than %d values", ErrBadRange, lo, hi, MaxIntDomainSize)
	}
	n := int64(width) + 1
	values := make([]Value, 0, n)
	for k := int64(0); k < n; k++ {
		values = append(values, Int(lo+k))
	}

	return NewFiniteDomain(values...)
}

// Finite always reports true.
func (d *FiniteDomain) Finite() bool { return true }

// Size returns the number of possible values (the radix of the variable).
func (d *FiniteDomain) Size() int { return len(d.values) }

// Values returns a copy of the possible values in domain order.
func (d *FiniteDomain) Values() []Value {
	out := make([]Value, len(d.values))
	copy(out, d.values)

	return out
}

// At returns the value at domain index i. It panics if i is out of range,
// like a slice access.
func (d *FiniteDomain) At(i int) Value { return d.values[i] }

// IndexOf returns the domain index of v.
func (d *FiniteDomain) IndexOf(v Value) (int, bool) {
	i, ok := d.index[v]

	return i, ok
}

// Contains reports whether v is a member of the domain.
func (d *FiniteDomain) Contains(v Value) bool {
	_, ok := d.index[v]

	return ok
}

// Parse returns the member whose String() equals text.
// Used by collaborators that read evidence or models from text.
func (d *FiniteDomain) Parse(text string) (Value, error) {
	for _, v := range d.values {
		if v.String() == text {
			return v, nil
		}
	}

	return Value{}, fmt.Errorf("core: %q in %s: %w", text, d, ErrValueNotInDomain)
}

// String renders the domain as {v1, v2, ...}.
func (d *FiniteDomain) String() string {
	parts := make([]string, len(d.values))
	for i, v := range d.values {
		parts[i] = v.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
