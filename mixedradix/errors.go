// SPDX-License-Identifier: MIT

package mixedradix

import "errors"

var (
	// ErrBadRadix indicates a radix smaller than 1.
	ErrBadRadix = errors.New("mixedradix: radix must be >= 1")

	// ErrOverflow indicates the product of radices exceeds the int range.
	ErrOverflow = errors.New("mixedradix: size overflows int")

	// ErrDigitCount indicates a tuple whose length differs from the slot count.
	ErrDigitCount = errors.New("mixedradix: digit count mismatch")

	// ErrDigitRange indicates a digit outside [0, radix).
	ErrDigitRange = errors.New("mixedradix: digit out of range")

	// ErrOffsetRange indicates an offset outside [0, Size()).
	ErrOffsetRange = errors.New("mixedradix: offset out of range")
)
