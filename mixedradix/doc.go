// SPDX-License-Identifier: MIT

// Package mixedradix implements a mixed-radix numeral system: a bijection
// between digit tuples with per-position radices and flat integer offsets.
//
// Given radices r0, r1, ..., r(n-1) (slot 0 least significant):
//
//	offset = d0 + d1·r0 + d2·r0·r1 + ... + d(n-1)·r0···r(n-2)
//	0 ≤ ds < rs,  0 ≤ offset < r0·r1···r(n-1)
//
// Canonical order:
//
//	Increment advances slot 0 fastest and carries into higher slots, exactly
//	like an odometer. Enumerating with Increment from the all-zero tuple visits
//	offsets 0, 1, 2, ... in ascending order. Every factor operation that needs
//	to "visit all possible worlds" goes through this one ordering, which is
//	what lets two independently built tables over the same variables align.
//
//	radices (2,3)    digits (d0,d1) → offset
//	                 (0,0) → 0   (1,0) → 1
//	                 (0,1) → 2   (1,1) → 3
//	                 (0,2) → 4   (1,2) → 5
//
// A codec with no radices is legal: it has exactly one (empty) tuple at offset 0.
//
// Complexity:
//
//   - New:            O(n)
//   - Encode/Decode:  O(n)
//   - Increment:      O(1) amortized, O(n) worst case
//
// Errors:
//
//   - ErrBadRadix      radix < 1
//   - ErrOverflow      product of radices does not fit in int
//   - ErrDigitCount    tuple length differs from the number of slots
//   - ErrDigitRange    digit outside [0, radix)
//   - ErrOffsetRange   offset outside [0, Size())
package mixedradix
