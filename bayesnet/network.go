// SPDX-License-Identifier: MIT

package bayesnet

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dag"
)

// Network is an immutable Bayesian network. Nodes are kept in topological
// order: every parent precedes its children.
type Network struct {
	name   string
	nodes  []*Node
	byName map[string]*Node
	graph  *dag.Graph
}

// Name returns the label set with WithName.
func (n *Network) Name() string { return n.name }

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.nodes) }

// Nodes returns the nodes in topological order.
func (n *Network) Nodes() []*Node {
	out := make([]*Node, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// Variables returns the variables in topological order.
func (n *Network) Variables() []*core.Variable {
	out := make([]*core.Variable, len(n.nodes))
	for i, node := range n.nodes {
		out[i] = node.variable
	}

	return out
}

// Node returns the node of v, matched by name.
func (n *Network) Node(v *core.Variable) (*Node, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	node, ok := n.byName[v.Name()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", v.Name(), ErrUnknownVariable)
	}

	return node, nil
}

// Variable returns the network's handle for the variable called name.
func (n *Network) Variable(name string) (*core.Variable, bool) {
	node, ok := n.byName[name]
	if !ok {
		return nil, false
	}

	return node.variable, true
}

// Roots returns the parentless nodes in topological order.
func (n *Network) Roots() []*Node {
	var out []*Node
	for _, node := range n.nodes {
		if node.IsRoot() {
			out = append(out, node)
		}
	}

	return out
}

// Ancestral returns the nodes of vars and all their ancestors, in
// topological order. Every other node sums out to 1 in any query over vars,
// so the returned nodes are the only ones inference needs.
func (n *Network) Ancestral(vars ...*core.Variable) ([]*Node, error) {
	ids := make([]string, len(vars))
	for i, v := range vars {
		if _, err := n.Node(v); err != nil {
			return nil, err
		}
		ids[i] = v.Name()
	}
	keep, err := n.graph.Ancestors(ids...)
	if err != nil {
		return nil, err
	}
	out := make([]*Node, 0, len(keep))
	for _, node := range n.nodes {
		if keep[node.variable.Name()] {
			out = append(out, node)
		}
	}

	return out, nil
}
