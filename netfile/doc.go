// SPDX-License-Identifier: MIT

// Package netfile reads Bayesian networks from YAML model files.
//
//	name: sprinkler
//	variables:
//	  - name: Rain
//	    type: boolean
//	    cpt: [0.2, 0.8]
//	  - name: Sprinkler
//	    type: boolean
//	    parents: [Rain]
//	    cpt: [0.01, 0.99, 0.4, 0.6]
//
// Types are boolean (domain {true, false}), label and int; label and int
// variables list their values in domain order. A CPT is laid out as
// described in package bayesnet: parents in listed order, the variable
// itself varying fastest.
//
// Decoding is strict: unknown keys are errors. Structural problems wrap
// ErrInvalidModel; network problems (cycles, non-stochastic rows) surface
// the bayesnet and factor sentinels.
package netfile
