// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbayes/bayesnet"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/netfile"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <model.yaml>",
		Short: "Print a network's nodes in topological order",
		Long: `Print every node of the network in topological order with its domain,
parents and conditional distributions.

Example:
  bnquery describe testdata/sprinkler.yaml
  bnquery describe --format json testdata/burglary.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], cmd)
		},
	}
}

// nodeView is the JSON shape of one node.
type nodeView struct {
	Name    string    `json:"name"`
	Domain  []string  `json:"domain"`
	Parents []string  `json:"parents,omitempty"`
	CPT     []float64 `json:"cpt"`
}

// networkView is the JSON shape of a network.
type networkView struct {
	Name  string     `json:"name"`
	Nodes []nodeView `json:"nodes"`
}

func runDescribe(opts *RootOptions, path string, cmd *cobra.Command) error {
	log := opts.logger(cmd.ErrOrStderr())
	net, err := netfile.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load model", err)
	}
	log.Debug("model loaded", "path", path, "nodes", net.Len())

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), describeView(net))
	}

	return describeText(cmd.OutOrStdout(), net)
}

func describeView(net *bayesnet.Network) networkView {
	view := networkView{Name: net.Name(), Nodes: make([]nodeView, 0, net.Len())}
	for _, n := range net.Nodes() {
		fd, _ := n.Variable().FiniteDomain()
		nv := nodeView{Name: n.Variable().Name(), CPT: n.CPT().Values()}
		for _, v := range fd.Values() {
			nv.Domain = append(nv.Domain, v.String())
		}
		for _, p := range n.Parents() {
			nv.Parents = append(nv.Parents, p.Variable().Name())
		}
		view.Nodes = append(view.Nodes, nv)
	}

	return view
}

// describeText writes one block per node:
//
//	Sprinkler {true, false}
//	  P(Sprinkler | Cloudy=true) = <0.1, 0.9>
func describeText(w io.Writer, net *bayesnet.Network) error {
	if _, err := fmt.Fprintf(w, "network %s: %d nodes\n", net.Name(), net.Len()); err != nil {
		return err
	}
	for _, n := range net.Nodes() {
		fd, _ := n.Variable().FiniteDomain()
		if _, err := fmt.Fprintf(w, "\n%s %s\n", n.Variable().Name(), fd); err != nil {
			return err
		}
		rows, err := conditionalRows(n)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if _, err = fmt.Fprintf(w, "  %s\n", row); err != nil {
				return err
			}
		}
	}

	return nil
}

// conditionalRows renders P(X | parents) for every parent assignment, in
// canonical order.
func conditionalRows(n *bayesnet.Node) ([]string, error) {
	name := n.Variable().Name()
	if n.IsRoot() {
		row, err := n.Conditional()
		if err != nil {
			return nil, err
		}

		return []string{fmt.Sprintf("P(%s) = %s", name, row)}, nil
	}

	parents := make([]*core.Variable, 0, len(n.Parents()))
	for _, p := range n.Parents() {
		parents = append(parents, p.Variable())
	}
	grid, err := factor.New(parents...)
	if err != nil {
		return nil, err
	}
	var rows []string
	for world := range grid.All() {
		row, err := n.Conditional(world...)
		if err != nil {
			return nil, err
		}
		given := make([]string, len(world))
		for i, a := range world {
			given[i] = a.String()
		}
		rows = append(rows, fmt.Sprintf("P(%s | %s) = %s", name, strings.Join(given, ", "), row))
	}

	return rows, nil
}
