// SPDX-License-Identifier: MIT

package mixedradix

import (
	"fmt"
	"iter"
	"math"
)

// Codec encodes digit tuples to offsets and back for a fixed list of radices.
// A Codec is immutable and safe for concurrent use; tuples passed to it are
// owned by the caller.
type Codec struct {
	radices []int // radix per slot, slot 0 least significant
	weights []int // weights[s] = Π radices[k] for k < s
	size    int   // Π radices
}

// New builds a Codec for the given radices, slot 0 first.
//
// Implementation:
//   - Stage 1: validate every radix ≥ 1.
//   - Stage 2: accumulate positional weights, guarding against int overflow.
//
// Errors: ErrBadRadix, ErrOverflow.
// Complexity: O(n).
func New(radices ...int) (*Codec, error) {
	c := &Codec{
		radices: make([]int, len(radices)),
		weights: make([]int, len(radices)),
		size:    1,
	}
	for s, r := range radices {
		if r < 1 {
			return nil, fmt.Errorf("mixedradix: slot %d radix %d: %w", s, r, ErrBadRadix)
		}
		c.radices[s] = r
		c.weights[s] = c.size
		if c.size > math.MaxInt/r {
			return nil, ErrOverflow
		}
		c.size *= r
	}

	return c, nil
}

// Len returns the number of slots.
func (c *Codec) Len() int { return len(c.radices) }

// Size returns the number of distinct tuples (product of radices).
func (c *Codec) Size() int { return c.size }

// Radix returns the radix of slot s. It panics if s is out of range.
func (c *Codec) Radix(s int) int { return c.radices[s] }

// Radices returns a copy of the radices, slot 0 first.
func (c *Codec) Radices() []int {
	out := make([]int, len(c.radices))
	copy(out, c.radices)

	return out
}

// Encode maps a digit tuple (indexed by slot) to its offset.
//
// Errors: ErrDigitCount, ErrDigitRange.
// Complexity: O(n).
func (c *Codec) Encode(digits []int) (int, error) {
	if len(digits) != len(c.radices) {
		return 0, fmt.Errorf("mixedradix: Encode: got %d digits, want %d: %w",
			len(digits), len(c.radices), ErrDigitCount)
	}
	offset := 0
	for s, d := range digits {
		if d < 0 || d >= c.radices[s] {
			return 0, fmt.Errorf("mixedradix: Encode: slot %d digit %d: %w", s, d, ErrDigitRange)
		}
		offset += d * c.weights[s]
	}

	return offset, nil
}

// Offset is Encode without validation, for hot loops whose tuples come from
// this codec's own enumeration. Invalid tuples yield meaningless offsets.
func (c *Codec) Offset(digits []int) int {
	offset := 0
	for s, d := range digits {
		offset += d * c.weights[s]
	}

	return offset
}

// Decode maps an offset back to its digit tuple.
//
// Errors: ErrOffsetRange.
// Complexity: O(n).
func (c *Codec) Decode(offset int) ([]int, error) {
	digits := make([]int, len(c.radices))
	if err := c.DecodeInto(offset, digits); err != nil {
		return nil, err
	}

	return digits, nil
}

// DecodeInto is Decode writing into dst, which must have Len() elements.
func (c *Codec) DecodeInto(offset int, dst []int) error {
	if offset < 0 || offset >= c.size {
		return fmt.Errorf("mixedradix: Decode(%d): %w", offset, ErrOffsetRange)
	}
	if len(dst) != len(c.radices) {
		return fmt.Errorf("mixedradix: Decode: dst has %d slots, want %d: %w",
			len(dst), len(c.radices), ErrDigitCount)
	}
	for s, r := range c.radices {
		dst[s] = offset % r
		offset /= r
	}

	return nil
}

// Increment advances digits in place to the next tuple in canonical order:
// slot 0 is incremented and overflow carries into higher slots.
// It returns false, leaving digits untouched, when digits already hold the
// last tuple (every digit at radix-1). Digits must be a valid tuple.
//
// Typical loop over every tuple:
//
//	digits := make([]int, c.Len())
//	for ok := true; ok; ok = c.Increment(digits) {
//		// use digits
//	}
func (c *Codec) Increment(digits []int) bool {
	// Find the lowest slot that can be bumped without carrying.
	for s, r := range c.radices {
		if digits[s] < r-1 {
			digits[s]++
			// Everything below it wraps to zero.
			for k := 0; k < s; k++ {
				digits[k] = 0
			}

			return true
		}
	}

	return false
}

// Next is the non-mutating form of Increment: it returns the successor of
// digits as a new tuple and true, or a copy of digits and false once all
// combinations are exhausted.
func (c *Codec) Next(digits []int) ([]int, bool) {
	next := make([]int, len(digits))
	copy(next, digits)
	ok := c.Increment(next)

	return next, ok
}

// Tuples enumerates every (offset, digits) pair in canonical order.
// The sequence is restartable; each step yields a fresh digits slice.
func (c *Codec) Tuples() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		digits := make([]int, len(c.radices))
		for offset := 0; ; offset++ {
			out := make([]int, len(digits))
			copy(out, digits)
			if !yield(offset, out) {
				return
			}
			if !c.Increment(digits) {
				return
			}
		}
	}
}
