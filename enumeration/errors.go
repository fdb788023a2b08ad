// SPDX-License-Identifier: MIT

package enumeration

import "errors"

// Sentinel errors for query validation.
var (
	// ErrNetworkNil indicates a nil *bayesnet.Network.
	ErrNetworkNil = errors.New("enumeration: network is nil")

	// ErrNoQuery indicates an empty query variable list.
	ErrNoQuery = errors.New("enumeration: no query variables")

	// ErrDuplicateQuery indicates a query variable listed twice.
	ErrDuplicateQuery = errors.New("enumeration: duplicate query variable")

	// ErrDuplicateEvidence indicates two assignments to one evidence variable.
	ErrDuplicateEvidence = errors.New("enumeration: duplicate evidence variable")

	// ErrTooManyVariables indicates more query variables, or more evidence
	// assignments, than the network has nodes.
	ErrTooManyVariables = errors.New("enumeration: more variables than network nodes")

	// ErrNotFinite indicates a node whose variable has no finite domain.
	ErrNotFinite = errors.New("enumeration: node is not finite")
)
