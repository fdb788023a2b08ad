package dag_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/dag"
)

// ExampleGraph_TopologicalSort orders a network declared leaves first.
func ExampleGraph_TopologicalSort() {
	g := dag.New()
	for _, v := range []string{"WetGrass", "Sprinkler", "Rain"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("Rain", "Sprinkler")
	_ = g.AddEdge("Rain", "WetGrass")
	_ = g.AddEdge("Sprinkler", "WetGrass")

	order, err := g.TopologicalSort()
	fmt.Println(order, err)
	// Output: [Rain Sprinkler WetGrass] <nil>
}
