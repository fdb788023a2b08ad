// SPDX-License-Identifier: MIT

package bayesnet

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dag"
	"github.com/katalvlaran/lvbayes/factor"
)

// declaration is one AddNode call, validated only structurally.
type declaration struct {
	variable *core.Variable
	cpt      []float64
	parents  []*core.Variable
}

// Builder collects node declarations and assembles a Network.
// Parents may be declared before or after their children.
type Builder struct {
	opts  options
	decls []declaration
	index map[string]int // variable name → position in decls
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{opts: o, index: make(map[string]int)}
}

// AddNode declares variable v with the given CPT and parents. The CPT is
// copied; its layout is described in the package documentation.
//
// Errors: ErrNilVariable, ErrDuplicateNode, core.ErrNotFinite.
// Parent existence, acyclicity and the CPT itself are checked by Build.
func (b *Builder) AddNode(v *core.Variable, cpt []float64, parents ...*core.Variable) error {
	if v == nil {
		return ErrNilVariable
	}
	if _, dup := b.index[v.Name()]; dup {
		return fmt.Errorf("%s: %w", v.Name(), ErrDuplicateNode)
	}
	if _, ok := v.FiniteDomain(); !ok {
		return fmt.Errorf("bayesnet: %s: %w", v.Name(), core.ErrNotFinite)
	}
	for _, p := range parents {
		if p == nil {
			return fmt.Errorf("%s: parent: %w", v.Name(), ErrNilVariable)
		}
	}
	d := declaration{
		variable: v,
		cpt:      append([]float64(nil), cpt...),
		parents:  append([]*core.Variable(nil), parents...),
	}
	b.index[v.Name()] = len(b.decls)
	b.decls = append(b.decls, d)

	return nil
}

// Build validates the declarations and returns the network. Parents must be
// declared, the graph must be acyclic and every CPT row must sum to 1.
func (b *Builder) Build() (*Network, error) {
	// 1. Resolve parents and build the dependency graph
	g := dag.New()
	for _, d := range b.decls {
		if err := g.AddVertex(d.variable.Name()); err != nil {
			return nil, err
		}
	}
	for _, d := range b.decls {
		for _, p := range d.parents {
			if _, ok := b.index[p.Name()]; !ok {
				return nil, fmt.Errorf("%s: parent %s: %w", d.variable.Name(), p.Name(), ErrUnknownParent)
			}
			if err := g.AddEdge(p.Name(), d.variable.Name()); err != nil {
				if errors.Is(err, dag.ErrLoopNotAllowed) {
					return nil, fmt.Errorf("%w: %s is its own parent", ErrCycle, p.Name())
				}

				return nil, err
			}
		}
	}

	// 2. Order nodes topologically, rejecting cycles
	order, err := g.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCycle, err)
	}

	// 3. Build each CPT and check that every row is a distribution
	net := &Network{
		name:   b.opts.name,
		nodes:  make([]*Node, 0, len(order)),
		byName: make(map[string]*Node, len(order)),
		graph:  g,
	}
	for _, name := range order {
		d := b.decls[b.index[name]]
		node, err := b.newNode(d, net.byName)
		if err != nil {
			return nil, err
		}
		net.nodes = append(net.nodes, node)
		net.byName[name] = node
	}

	// 4. Link parents and children
	for _, node := range net.nodes {
		for _, p := range node.parents {
			p.children = append(p.children, node)
		}
	}

	return net, nil
}

// newNode builds the CPT of d over the canonical parent handles already
// placed in built.
func (b *Builder) newNode(d declaration, built map[string]*Node) (*Node, error) {
	node := &Node{variable: d.variable, parents: make([]*Node, len(d.parents))}
	vars := make([]*core.Variable, 0, len(d.parents)+1)
	for i, p := range d.parents {
		node.parents[i] = built[p.Name()]
		vars = append(vars, node.parents[i].variable)
	}
	vars = append(vars, d.variable)

	cpt, err := factor.FromValues(d.cpt, vars...)
	if err != nil {
		return nil, fmt.Errorf("bayesnet: CPT of %s: %w", d.variable.Name(), err)
	}
	if err = checkRows(cpt, d.variable, b.opts.eps); err != nil {
		return nil, err
	}
	node.cpt = cpt

	return node, nil
}

// checkRows verifies that every conditional row of cpt sums to 1 within eps.
func checkRows(cpt *factor.Factor, v *core.Variable, eps float64) error {
	fd, _ := v.FiniteDomain()
	width := fd.Size()
	values := cpt.Values()
	for start := 0; start < len(values); start += width {
		sum := 0.0
		for _, p := range values[start : start+width] {
			sum += p
		}
		if math.Abs(sum-1) > eps {
			return fmt.Errorf("%s: row %d sums to %v: %w", v.Name(), start/width, sum, ErrNotStochastic)
		}
	}

	return nil
}
