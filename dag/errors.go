// SPDX-License-Identifier: MIT

package dag

import "errors"

// Sentinel errors for graph construction and ordering.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("dag: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("dag: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("dag: self-loop not allowed")

	// ErrCycleDetected indicates that TopologicalSort found a directed cycle.
	ErrCycleDetected = errors.New("dag: cycle detected")
)
