// Package lvbayes is an exact-inference engine for discrete Bayesian
// networks: finite random variables, dense factor algebra over them, and
// the ENUMERATION-ASK query algorithm.
//
// Subpackages, leaf first:
//
//	core/        values, finite domains, random variables, assignments
//	mixedradix/  mixed-radix codec and odometer enumeration of index tuples
//	factor/      dense tables: lookup, normalize, sum-out, product, division
//	dag/         directed graph, deterministic topological sort, ancestor sets
//	bayesnet/    network builder, nodes with CPTs, topological access
//	enumeration/ ENUMERATION-ASK posterior queries
//	netfile/     YAML model files and evidence parsing
//	cmd/bnquery  command line front end
//
// Quick start:
//
//	net, _ := netfile.Load("burglary.yaml")
//	b, _ := netfile.Lookup(net, "Burglary")
//	j, _ := netfile.ParseEvidence(net, "JohnCalls=true")
//	m, _ := netfile.ParseEvidence(net, "MaryCalls=true")
//	dist, _ := enumeration.Ask(net, []*core.Variable{b}, []core.Assignment{j, m})
//	fmt.Println(dist) // ≈ <0.284172, 0.715828>
//
// Canonical order: within a factor the first variable varies slowest and
// the last fastest. Every table in the module, CPTs included, is laid out
// that way, so factors built independently over the same variables align.
package lvbayes
