// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
)

// Sentinel errors for factor construction and algebra. Match with errors.Is.
var (
	// ErrNilVariable indicates a nil *core.Variable in a variable list.
	ErrNilVariable = errors.New("factor: variable is nil")

	// ErrDuplicateVariable indicates the same variable name twice in one list.
	ErrDuplicateVariable = errors.New("factor: duplicate variable")

	// ErrValueCount indicates a value slice whose length is not the product of domain sizes.
	ErrValueCount = errors.New("factor: wrong number of values")

	// ErrInvalidValue indicates a NaN, ±Inf or negative cell value.
	ErrInvalidValue = errors.New("factor: value must be finite and non-negative")

	// ErrArity indicates an assignment whose size differs from the factor's variable count.
	ErrArity = errors.New("factor: assignment arity mismatch")

	// ErrUnknownVariable indicates a variable that is not part of the factor.
	ErrUnknownVariable = errors.New("factor: variable not in factor")

	// ErrOffsetRange indicates a flat offset outside [0, Size()).
	ErrOffsetRange = errors.New("factor: offset out of range")

	// ErrNilFactor indicates a nil *Factor operand.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrOrderMismatch indicates an explicit product order that is not exactly
	// the union of both operands' variables.
	ErrOrderMismatch = errors.New("factor: product order inconsistent with operands")

	// ErrDivisorScope indicates a divisor whose variables are not a subset of the dividend's.
	ErrDivisorScope = errors.New("factor: divisor must be a subset of the dividend")

	// ErrDomainMismatch indicates two operands disagreeing on a shared variable's domain.
	ErrDomainMismatch = errors.New("factor: shared variable has different domains")
)

// factorErrorf tags err with the operation that detected it.
func factorErrorf(op string, err error) error {
	return fmt.Errorf("factor.%s: %w", op, err)
}
