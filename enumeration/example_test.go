package enumeration_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/bayesnet"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/enumeration"
)

// ExampleAsk infers the cause from an observed effect.
func ExampleAsk() {
	rain, _ := core.NewBoolean("Rain")
	sprinkler, _ := core.NewBoolean("Sprinkler")

	b := bayesnet.NewBuilder(bayesnet.WithName("chain"))
	_ = b.AddNode(rain, []float64{0.2, 0.8})
	_ = b.AddNode(sprinkler, []float64{0.01, 0.99, 0.4, 0.6}, rain)
	net, _ := b.Build()

	on, _ := core.NewAssignment(sprinkler, core.True)
	dist, err := enumeration.Ask(net, []*core.Variable{rain}, []core.Assignment{on})
	if err != nil {
		fmt.Println(err)

		return
	}
	for world, p := range dist.All() {
		fmt.Printf("%s %.4f\n", world[0], p)
	}
	// Output:
	// Rain=true 0.0062
	// Rain=false 0.9938
}
