// SPDX-License-Identifier: MIT

package bayesnet

import (
	"math"

	"github.com/katalvlaran/lvbayes/factor"
)

const panicEpsilonInvalid = "bayesnet: WithEpsilon requires a finite, non-negative value"

// Option configures a Builder.
type Option func(*options)

type options struct {
	eps  float64
	name string
}

func defaultOptions() options {
	return options{eps: factor.DefaultEpsilon}
}

// WithEpsilon sets the tolerance of the "every CPT row sums to 1" check.
// Panics on NaN, ±Inf or a negative value.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithName labels the network.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}
