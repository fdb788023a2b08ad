// SPDX-License-Identifier: MIT

package dag

import "fmt"

// Ancestors returns the set of ids together with every vertex that has a
// directed path into one of them. It is a breadth-first search from all ids
// at once along reversed edges.
//
// Errors: ErrVertexNotFound for an unknown id.
// Complexity: O(V+E).
func (g *Graph) Ancestors(ids ...string) (map[string]bool, error) {
	seen := make(map[string]bool, len(ids))
	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%q: %w", id, ErrVertexNotFound)
		}
		if !seen[id] {
			seen[id] = true
			queue = append(queue, id)
		}
	}
	for head := 0; head < len(queue); head++ {
		for _, p := range g.pred[queue[head]] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}

	return seen, nil
}
