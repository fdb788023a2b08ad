// SPDX-License-Identifier: MIT

package enumeration

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvbayes/bayesnet"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/factor"
)

// Inferencer answers P(query | evidence) on a network.
type Inferencer interface {
	Ask(net *bayesnet.Network, query []*core.Variable, evidence []core.Assignment) (*factor.Factor, error)
}

// Enumerator is a reusable, stateless ENUMERATION-ASK evaluator.
// It is safe for concurrent use.
type Enumerator struct {
	opts options
}

var _ Inferencer = (*Enumerator)(nil)

// New returns an Enumerator configured by opts.
func New(opts ...Option) *Enumerator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Enumerator{opts: o}
}

// Ask is shorthand for New(opts...).Ask(net, query, evidence).
func Ask(net *bayesnet.Network, query []*core.Variable, evidence []core.Assignment, opts ...Option) (*factor.Factor, error) {
	return New(opts...).Ask(net, query, evidence)
}

// Ask returns the normalized distribution P(query | evidence) as a factor
// over the network's handles of the query variables, in the given order.
// A query variable may also be observed; its distribution is then the point
// mass on the observed value. If the evidence has probability zero, every
// cell is 0.
func (e *Enumerator) Ask(net *bayesnet.Network, query []*core.Variable, evidence []core.Assignment) (*factor.Factor, error) {
	q, err := newRun(e.opts.ctx, net, query, evidence, e.opts.prune)
	if err != nil {
		return nil, err
	}
	log := e.opts.logger.With("network", net.Name())
	log.Debug("enumeration started",
		"query", variableNames(q.query),
		"evidence", len(evidence),
		"hidden", q.hidden,
		"pruned", net.Len()-len(q.nodes))

	dist, err := factor.New(q.query...)
	if err != nil {
		return nil, fmt.Errorf("enumeration: %w", err)
	}
	// Sum the joint for each query combination, then normalize.
	offset := -1
	for world := range dist.All() {
		offset++
		if err = q.ctx.Err(); err != nil {
			return nil, err
		}
		if !q.bind(world) {
			continue // contradicts an observed query variable
		}
		p, err := q.enumerateAll(0)
		if err != nil {
			return nil, err
		}
		if err = dist.Set(offset, p); err != nil {
			return nil, fmt.Errorf("enumeration: %w", err)
		}
	}

	evidenceMass := dist.Sum()
	dist.Normalize()
	log.Debug("enumeration finished", "cells", dist.Size(), "evidence_probability", evidenceMass)

	return dist, nil
}

// run is the state of one query. The buffer holds the extended assignment:
// query variables first, then evidence, then hidden variables in
// topological order. A zero Value marks an unbound slot.
type run struct {
	ctx     context.Context
	query   []*core.Variable
	pinned  []core.Value // observed value of query[k], zero if unobserved
	hidden  int
	nodes   []*bayesnet.Node     // topological order
	domains []*core.FiniteDomain // domains[i] of nodes[i]
	slot    []int                // buffer position of nodes[i]
	parents [][]int              // buffer positions of nodes[i]'s parents
	scratch [][]core.Value       // parent values of nodes[i], reused
	buffer  []core.Value
}

// newRun validates the query and lays out the extended assignment. With
// prune set, only ancestors of the query and evidence variables take part.
func newRun(ctx context.Context, net *bayesnet.Network, query []*core.Variable, evidence []core.Assignment, prune bool) (*run, error) {
	// 1. Validate shape
	if net == nil {
		return nil, ErrNetworkNil
	}
	if len(query) == 0 {
		return nil, ErrNoQuery
	}
	if len(query) > net.Len() || len(evidence) > net.Len() {
		return nil, fmt.Errorf("%w: %d query, %d evidence, %d nodes",
			ErrTooManyVariables, len(query), len(evidence), net.Len())
	}

	q := &run{
		ctx:    ctx,
		query:  make([]*core.Variable, len(query)),
		pinned: make([]core.Value, len(query)),
	}
	position := make(map[string]int, net.Len())

	// 2. Query variables take the first slots
	for i, v := range query {
		node, err := net.Node(v)
		if err != nil {
			return nil, fmt.Errorf("enumeration: query: %w", err)
		}
		name := node.Variable().Name()
		if _, dup := position[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateQuery, name)
		}
		position[name] = i
		q.query[i] = node.Variable()
	}

	// 3. Evidence follows, bound from the start; observed queries are pinned
	relevant := append([]*core.Variable(nil), q.query...)
	observed := make([]core.Value, 0, len(evidence))
	seen := make(map[string]bool, len(evidence))
	for _, a := range evidence {
		node, err := net.Node(a.Var)
		if err != nil {
			return nil, fmt.Errorf("enumeration: evidence: %w", err)
		}
		name := node.Variable().Name()
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEvidence, name)
		}
		seen[name] = true
		if !node.Variable().Domain().Contains(a.Value) {
			return nil, fmt.Errorf("enumeration: evidence %s: %w", a, core.ErrValueNotInDomain)
		}
		if p, isQuery := position[name]; isQuery {
			q.pinned[p] = a.Value

			continue
		}
		position[name] = len(relevant)
		relevant = append(relevant, node.Variable())
		observed = append(observed, a.Value)
	}

	// 4. Select the participating nodes and allocate per-node state
	nodes := net.Nodes()
	if prune {
		var err error
		if nodes, err = net.Ancestral(relevant...); err != nil {
			return nil, fmt.Errorf("enumeration: %w", err)
		}
	}
	q.nodes = nodes
	q.domains = make([]*core.FiniteDomain, len(nodes))
	q.slot = make([]int, len(nodes))
	q.parents = make([][]int, len(nodes))
	q.scratch = make([][]core.Value, len(nodes))
	q.buffer = make([]core.Value, len(nodes))
	copy(q.buffer[len(query):], observed)

	// 5. Hidden variables take the remaining slots in topological order
	next := len(relevant)
	for _, node := range nodes {
		name := node.Variable().Name()
		if _, ok := position[name]; !ok {
			position[name] = next
			next++
			q.hidden++
		}
	}

	// 6. Resolve domains and parent slots for each node
	for i, node := range nodes {
		fd, ok := node.Variable().FiniteDomain()
		if !ok {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFinite, node.Variable().Name(), core.ErrNotFinite)
		}
		q.domains[i] = fd
		q.slot[i] = position[node.Variable().Name()]
		ps := node.Parents()
		q.parents[i] = make([]int, len(ps))
		for k, p := range ps {
			q.parents[i][k] = position[p.Variable().Name()]
		}
		q.scratch[i] = make([]core.Value, len(ps))
	}

	return q, nil
}

// bind fixes the query slots to world. It reports false if world
// contradicts an observed query variable.
func (q *run) bind(world factor.World) bool {
	for k, a := range world {
		if !q.pinned[k].IsZero() && q.pinned[k] != a.Value {
			return false
		}
		q.buffer[k] = a.Value
	}

	return true
}

// enumerateAll returns the joint probability of the bound slots summed over
// every unbound variable among nodes[i:].
func (q *run) enumerateAll(i int) (float64, error) {
	if i == len(q.nodes) {
		return 1, nil
	}
	pos := q.slot[i]

	// bound: query or evidence value, or an outer free binding
	if v := q.buffer[pos]; !v.IsZero() {
		p, err := q.probability(i, v)
		if err != nil {
			return 0, err
		}
		rest, err := q.enumerateAll(i + 1)
		if err != nil {
			return 0, err
		}

		return p * rest, nil
	}

	// free: sum over the domain, then unbind
	defer func() { q.buffer[pos] = core.Value{} }()
	sum := 0.0
	for k := 0; k < q.domains[i].Size(); k++ {
		if err := q.ctx.Err(); err != nil {
			return 0, err
		}
		v := q.domains[i].At(k)
		q.buffer[pos] = v
		p, err := q.probability(i, v)
		if err != nil {
			return 0, err
		}
		rest, err := q.enumerateAll(i + 1)
		if err != nil {
			return 0, err
		}
		sum += p * rest
	}

	return sum, nil
}

// probability looks up P(nodes[i] = v | parents) from the buffer.
func (q *run) probability(i int, v core.Value) (float64, error) {
	vals := q.scratch[i]
	for k, pos := range q.parents[i] {
		vals[k] = q.buffer[pos]
	}
	p, err := q.nodes[i].ProbabilityOf(v, vals...)
	if err != nil {
		return 0, fmt.Errorf("enumeration: %w", err)
	}

	return p, nil
}

func variableNames(vars []*core.Variable) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.Name()
	}

	return out
}
