// SPDX-License-Identifier: MIT

// Package bayesnet holds discrete Bayesian networks: a DAG of finite random
// variables, each owning a conditional probability table (CPT) given its
// parents.
//
// Networks are assembled with a Builder and are read-only afterwards, so one
// Network may serve concurrent queries.
//
//	b := bayesnet.NewBuilder(bayesnet.WithName("sprinkler"))
//	_ = b.AddNode(rain, []float64{0.2, 0.8})
//	_ = b.AddNode(sprinkler, []float64{0.01, 0.99, 0.4, 0.6}, rain)
//	net, err := b.Build()
//
// CPT layout: the table is a factor over the parents, in declared order,
// followed by the node's own variable. The own variable varies fastest, so
// each run of |dom| consecutive cells is one conditional distribution and
// must sum to 1.
//
// Errors:
//
//   - ErrNilVariable     nil variable or parent
//   - ErrDuplicateNode   two nodes share a variable name
//   - ErrUnknownParent   a parent was never added as a node
//   - ErrCycle           the parent relation is cyclic (wraps dag.ErrCycleDetected)
//   - ErrNotStochastic   a CPT row does not sum to 1
//   - ErrUnknownVariable lookup of a variable the network lacks
package bayesnet
