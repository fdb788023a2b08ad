// SPDX-License-Identifier: MIT

package dag

import "fmt"

// Graph is a directed graph without self-loops or parallel edges.
// It is not safe for concurrent mutation; once built it may be read from
// many goroutines.
type Graph struct {
	order []string            // vertex IDs in insertion order
	index map[string]int      // vertex ID → position in order
	succ  map[string][]string // from → to, in edge insertion order
	pred  map[string][]string // to → from, in edge insertion order
	edges map[[2]string]bool  // (from, to) presence
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
		succ:  make(map[string][]string),
		pred:  make(map[string][]string),
		edges: make(map[[2]string]bool),
	}
}

// AddVertex inserts id. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id == "".
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.index[id]; ok {
		return nil
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// AddEdge inserts the directed edge from→to. Both endpoints must exist.
// Adding an existing edge is a no-op.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(from) {
		return fmt.Errorf("%q: %w", from, ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%q: %w", to, ErrVertexNotFound)
	}
	if from == to {
		return fmt.Errorf("%q: %w", from, ErrLoopNotAllowed)
	}
	key := [2]string{from, to}
	if g.edges[key] {
		return nil
	}
	g.edges[key] = true
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)

	return nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool { return g.edges[[2]string{from, to}] }

// Vertices returns all vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Successors returns the targets of edges leaving id, in insertion order.
func (g *Graph) Successors(id string) ([]string, error) {
	return g.neighbors(id, g.succ)
}

// Predecessors returns the sources of edges entering id, in insertion order.
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.neighbors(id, g.pred)
}

func (g *Graph) neighbors(id string, adj map[string][]string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%q: %w", id, ErrVertexNotFound)
	}
	out := make([]string, len(adj[id]))
	copy(out, adj[id])

	return out, nil
}
