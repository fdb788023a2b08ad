// SPDX-License-Identifier: MIT

// Package core defines the vocabulary shared by every lvbayes package:
// values, finite domains, random variables and assignments.
//
// A random variable X is a name bound to a domain dom(X). lvbayes only
// reasons about finite domains, so dom(X) is an ordered, duplicate-free list
// of Values and its size is the radix X contributes to any table built over it.
//
//	Rain      ∈ {true, false}
//	Weather   ∈ {sunny, rain, cloudy, snow}
//	Dice      ∈ {1, 2, 3, 4, 5, 6}
//
// Value is a closed tagged union (bool | label | int). It is comparable and is
// used directly as a map key, so domain-index lookups never rely on dynamic
// typing.
//
// Identity:
//
//   - Two Variables are Equal iff their names match. Tables and networks key
//     everything by Variable.Name(); a Network holds exactly one canonical
//     *Variable per name and callers are expected to reuse it.
//   - A FiniteDomain belongs to one Variable and is never aliased or mutated.
//
// Errors:
//
//	ErrEmptyName         - variable name is the empty string.
//	ErrNilVariable       - nil variable where one is required.
//	ErrNilDomain         - variable created without a domain.
//	ErrEmptyDomain       - finite domain with no values.
//	ErrDuplicateValue    - finite domain lists the same value twice.
//	ErrValueNotInDomain  - assignment value is not a member of dom(X).
//	ErrNotFinite         - operation requires a finite domain.
//	ErrBadRange          - integer domain with hi < lo.
package core
