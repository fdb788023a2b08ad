// SPDX-License-Identifier: MIT

// Package factor provides a dense probability table (factor) over finite
// random variables and the distribution algebra defined on it.
//
// What:
//
//	A Factor φ(X1..Xn) maps every joint assignment of its variables to a
//	non-negative real. The values live in one flat []float64 of length
//	|dom(X1)|·...·|dom(Xn)|, addressed through a mixedradix.Codec.
//
// Layout:
//
//	Radix slots are assigned in reverse insertion order: the last variable
//	passed to New gets slot 0 and varies fastest, the first one varies slowest.
//	For two Booleans New(X, Y) the cells are, in order:
//
//	  offset  X      Y
//	  0       true   true
//	  1       true   false
//	  2       false  true
//	  3       false  false
//
//	This canonical order is shared by every operation, so tables built
//	independently over the same variables in the same order are
//	interchangeable cell by cell.
//
// Algebra (all but Set/Normalize return new factors):
//
//   - Sum, Normalize (in place), Set
//   - SumOut / Marginal     marginalization
//   - Product               pointwise product over the union of variables
//   - ProductOrdered        same with an explicit result order
//   - DivideBy              pointwise quotient by a factor over a subset;
//     a zero divisor cell yields 0 (0/0 := 0)
//   - All                   iter.Seq2 over (World, value) in canonical order
//
// Caching:
//
//	Sum() and String() are cached behind a mutex and invalidated by Set and
//	Normalize. A Factor is not safe for concurrent mutation; concurrent
//	reads (lookups, Sum, String, All and every operation returning a new
//	factor) of a factor that is not being mutated are safe.
//
// Errors:
//
//	ErrNilVariable, ErrDuplicateVariable, ErrValueCount, ErrInvalidValue,
//	ErrArity, ErrUnknownVariable, ErrOffsetRange, ErrNilFactor,
//	ErrOrderMismatch, ErrDivisorScope, ErrDomainMismatch, plus
//	core.ErrNotFinite and core.ErrValueNotInDomain (wrapped).
package factor
