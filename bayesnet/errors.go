// SPDX-License-Identifier: MIT

package bayesnet

import "errors"

// Sentinel errors for network construction and lookup.
var (
	// ErrNilVariable indicates a nil *core.Variable was supplied.
	ErrNilVariable = errors.New("bayesnet: variable is nil")

	// ErrDuplicateNode indicates a variable name was added twice.
	ErrDuplicateNode = errors.New("bayesnet: duplicate node")

	// ErrUnknownParent indicates a parent that is not a node of the network.
	ErrUnknownParent = errors.New("bayesnet: unknown parent")

	// ErrCycle indicates the parent relation is not acyclic.
	ErrCycle = errors.New("bayesnet: cyclic network")

	// ErrNotStochastic indicates a CPT row that does not sum to 1.
	ErrNotStochastic = errors.New("bayesnet: CPT row does not sum to 1")

	// ErrUnknownVariable indicates a lookup of a variable outside the network.
	ErrUnknownVariable = errors.New("bayesnet: unknown variable")
)
