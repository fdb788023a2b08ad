// SPDX-License-Identifier: MIT

// Package dag provides a small directed graph of string-identified vertices
// with deterministic topological ordering and cycle detection.
//
// Vertices and edges are kept in insertion order, so every query and every
// ordering is reproducible across runs. TopologicalSort uses three-colour
// depth-first search (White, Gray, Black) over predecessors: a vertex is
// emitted only after all of its predecessors, and a Gray vertex reached
// again is a back edge, reported as ErrCycleDetected.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasEdge: O(1) amortized
//   - TopologicalSort:            Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrEmptyVertexID   vertex ID is the empty string
//   - ErrVertexNotFound  edge endpoint or queried vertex is unknown
//   - ErrLoopNotAllowed  edge from a vertex to itself
//   - ErrCycleDetected   the graph is not acyclic
//   - context.Canceled   sort aborted via WithCancelContext
package dag
