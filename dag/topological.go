// SPDX-License-Identifier: MIT

package dag

import (
	"context"
	"fmt"
	"strings"
)

// Visitation states of the depth-first search.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter holds the traversal state of one TopologicalSort call.
type topoSorter struct {
	graph *Graph
	opts  topoOptions
	state map[string]int
	stack []string // Gray vertices, for cycle reporting
	order []string
}

// TopologicalSort returns every vertex such that for each edge u→v, u comes
// before v. Roots are taken in insertion order and each vertex is emitted
// right after its last predecessor is, so a graph whose vertices were added
// in a valid order is returned in exactly that order.
//
// If a cycle exists, the returned error wraps ErrCycleDetected and names the
// vertices on it. You may pass WithCancelContext(ctx) to enable cancellation.
func (g *Graph) TopologicalSort(options ...TopoOption) ([]string, error) {
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(g.order)),
		order: make([]string, 0, len(g.order)),
	}
	for _, v := range g.order {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return sorter.order, nil
}

// visit emits all predecessors of id, then id itself (post-order over the
// reversed edges).
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return t.cycleError(id)
	case Black:
		return nil
	}
	t.state[id] = Gray
	t.stack = append(t.stack, id)

	for _, p := range t.graph.pred[id] {
		if err := t.visit(p); err != nil {
			return err
		}
	}

	t.stack = t.stack[:len(t.stack)-1]
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// cycleError reports the cycle closed by reaching the Gray vertex id.
// The stack runs against edge direction, so it is reversed for display.
func (t *topoSorter) cycleError(id string) error {
	start := len(t.stack) - 1
	for start > 0 && t.stack[start] != id {
		start--
	}
	path := make([]string, 0, len(t.stack)-start+1)
	for i := len(t.stack) - 1; i >= start; i-- {
		path = append(path, t.stack[i])
	}
	path = append(path, path[0])

	return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(path, " → "))
}
