// SPDX-License-Identifier: MIT

package bayesnet

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/factor"
)

// Node is one random variable of a network with its conditional
// distribution given its parents.
type Node struct {
	variable *core.Variable
	parents  []*Node
	children []*Node
	cpt      *factor.Factor // over parents..., variable
}

// Variable returns the node's random variable.
func (n *Node) Variable() *core.Variable { return n.variable }

// Parents returns the parent nodes in declared order.
func (n *Node) Parents() []*Node {
	out := make([]*Node, len(n.parents))
	copy(out, n.parents)

	return out
}

// Children returns the child nodes in the network's topological order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// IsRoot reports whether the node has no parents.
func (n *Node) IsRoot() bool { return len(n.parents) == 0 }

// CPT returns a copy of the conditional probability table.
// The table of a built network is never mutated.
func (n *Node) CPT() *factor.Factor { return n.cpt.Clone() }

// Probability returns P(variable = value | parents), with the parent values
// given as assignments in any order. Every parent must be assigned exactly
// once and no other variable may appear.
func (n *Node) Probability(value core.Value, parents ...core.Assignment) (float64, error) {
	as := make([]core.Assignment, 0, len(parents)+1)
	as = append(as, parents...)
	as = append(as, core.Assignment{Var: n.variable, Value: value})
	p, err := n.cpt.Value(as...)
	if err != nil {
		return 0, fmt.Errorf("bayesnet: P(%s): %w", n.variable.Name(), err)
	}

	return p, nil
}

// ProbabilityOf is Probability with parent values given positionally, in
// Parents() order.
func (n *Node) ProbabilityOf(value core.Value, parentValues ...core.Value) (float64, error) {
	vs := make([]core.Value, 0, len(parentValues)+1)
	vs = append(vs, parentValues...)
	vs = append(vs, value)
	p, err := n.cpt.ValueOf(vs...)
	if err != nil {
		return 0, fmt.Errorf("bayesnet: P(%s): %w", n.variable.Name(), err)
	}

	return p, nil
}

// Conditional returns the distribution of the node's variable for one
// parent assignment, as a factor over that variable alone.
func (n *Node) Conditional(parents ...core.Assignment) (*factor.Factor, error) {
	out, err := factor.New(n.variable)
	if err != nil {
		return nil, err
	}
	fd, _ := n.variable.FiniteDomain()
	for i, v := range fd.Values() {
		p, err := n.Probability(v, parents...)
		if err != nil {
			return nil, err
		}
		if err = out.Set(i, p); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// String renders the node as "Child | Parent1, Parent2".
func (n *Node) String() string {
	if n.IsRoot() {
		return n.variable.Name()
	}
	s := n.variable.Name() + " |"
	for i, p := range n.parents {
		if i > 0 {
			s += ","
		}
		s += " " + p.variable.Name()
	}

	return s
}
