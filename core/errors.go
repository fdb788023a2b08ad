// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core types. Match them with errors.Is.
var (
	// ErrEmptyName indicates a Variable was created with an empty name.
	ErrEmptyName = errors.New("core: variable name is empty")

	// ErrNilVariable indicates a nil *Variable was passed where one is required.
	ErrNilVariable = errors.New("core: variable is nil")

	// ErrNilDomain indicates a Variable was created without a domain.
	ErrNilDomain = errors.New("core: domain is nil")

	// ErrEmptyDomain indicates a FiniteDomain with no possible values.
	ErrEmptyDomain = errors.New("core: finite domain is empty")

	// ErrDuplicateValue indicates a FiniteDomain listing one value twice.
	ErrDuplicateValue = errors.New("core: duplicate domain value")

	// ErrValueNotInDomain indicates an assignment outside dom(X).
	ErrValueNotInDomain = errors.New("core: value not in domain")

	// ErrNotFinite indicates a finite domain was required.
	ErrNotFinite = errors.New("core: domain is not finite")

	// ErrBadRange indicates an integer domain whose upper bound is below its
	// lower bound, or whose range is too wide to enumerate.
	ErrBadRange = errors.New("core: invalid integer range")
)
