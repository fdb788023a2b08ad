// SPDX-License-Identifier: MIT

// Package enumeration answers posterior queries on a bayesnet.Network by
// exact enumeration (ENUMERATION-ASK).
//
// For every combination of query values the evaluator sums the full joint
// probability over all hidden variables, walking the network in topological
// order:
//
//   - base case: no variables left, the product is 1;
//   - bound case: the variable is a query or evidence variable, multiply its
//     conditional probability into the rest;
//   - free case: sum over every value of the hidden variable.
//
// The result is normalized and returned as a factor over the query
// variables, in the order given. Observing a query variable pins it: cells
// that disagree with the observation stay 0. Time is O(n·d^h) for h hidden variables of
// domain size d; recursion depth is the number of network variables.
//
// Errors:
//
//   - ErrNetworkNil          nil network
//   - ErrNoQuery             empty query list
//   - ErrDuplicateQuery      a query variable repeated
//   - ErrDuplicateEvidence   an evidence variable repeated
//   - ErrTooManyVariables    more query or evidence variables than nodes
//   - ErrNotFinite           a node without a finite domain
//   - bayesnet.ErrUnknownVariable, core.ErrValueNotInDomain (wrapped)
//   - context errors         when the WithContext context is done
package enumeration
