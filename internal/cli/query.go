// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/enumeration"
	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/netfile"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Query    []string
	Evidence []string
	Prune    bool
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <model.yaml>",
		Short: "Compute a posterior distribution",
		Long: `Compute P(query | evidence) by exact enumeration.

Example:
  bnquery query testdata/burglary.yaml -q Burglary -e JohnCalls=true -e MaryCalls=true
  bnquery query testdata/sprinkler.yaml -q Rain,Sprinkler -e WetGrass=true --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Query, "query", "q", nil, "query variables (required)")
	cmd.Flags().StringArrayVarP(&opts.Evidence, "evidence", "e", nil, "observation Name=value (repeatable)")
	cmd.Flags().BoolVar(&opts.Prune, "prune", false, "skip variables that are not ancestors of the query or evidence")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

// worldView is the JSON shape of one cell of a distribution.
type worldView struct {
	Values map[string]string `json:"values"`
	P      float64           `json:"p"`
}

// queryView is the JSON shape of a query result.
type queryView struct {
	Query        []string    `json:"query"`
	Evidence     []string    `json:"evidence,omitempty"`
	Distribution []worldView `json:"distribution"`
}

func runQuery(ctx context.Context, opts *QueryOptions, path string, cmd *cobra.Command) error {
	log := opts.logger(cmd.ErrOrStderr())
	net, err := netfile.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load model", err)
	}
	log.Debug("model loaded", "path", path, "nodes", net.Len())

	query := make([]*core.Variable, 0, len(opts.Query))
	for _, name := range opts.Query {
		v, err := netfile.Lookup(net, strings.TrimSpace(name))
		if err != nil {
			return WrapExitError(ExitFailure, "bad query", err)
		}
		query = append(query, v)
	}
	evidence := make([]core.Assignment, 0, len(opts.Evidence))
	for _, text := range opts.Evidence {
		a, err := netfile.ParseEvidence(net, text)
		if err != nil {
			return WrapExitError(ExitFailure, "bad evidence", err)
		}
		evidence = append(evidence, a)
	}

	eopts := []enumeration.Option{enumeration.WithLogger(log)}
	if ctx != nil {
		eopts = append(eopts, enumeration.WithContext(ctx))
	}
	if opts.Prune {
		eopts = append(eopts, enumeration.WithPruning())
	}
	dist, err := enumeration.Ask(net, query, evidence, eopts...)
	if err != nil {
		return WrapExitError(ExitFailure, "inference failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), queryResult(dist, evidence))
	}

	return queryText(cmd.OutOrStdout(), dist, evidence)
}

func queryResult(dist *factor.Factor, evidence []core.Assignment) queryView {
	view := queryView{}
	for _, v := range dist.Vars() {
		view.Query = append(view.Query, v.Name())
	}
	for _, a := range evidence {
		view.Evidence = append(view.Evidence, a.String())
	}
	for world, p := range dist.All() {
		wv := worldView{Values: make(map[string]string, len(world)), P: p}
		for _, a := range world {
			wv.Values[a.Var.Name()] = a.Value.String()
		}
		view.Distribution = append(view.Distribution, wv)
	}

	return view
}

// queryText writes the header P(Q | e) and one line per world.
func queryText(w io.Writer, dist *factor.Factor, evidence []core.Assignment) error {
	names := make([]string, 0, dist.Len())
	for _, v := range dist.Vars() {
		names = append(names, v.Name())
	}
	header := strings.Join(names, ", ")
	if len(evidence) > 0 {
		given := make([]string, len(evidence))
		for i, a := range evidence {
			given[i] = a.String()
		}
		header += " | " + strings.Join(given, ", ")
	}
	if _, err := fmt.Fprintf(w, "P(%s)\n", header); err != nil {
		return err
	}
	for world, p := range dist.All() {
		cells := make([]string, len(world))
		for i, a := range world {
			cells[i] = a.String()
		}
		if _, err := fmt.Fprintf(w, "  %s\t%s\n", strings.Join(cells, ", "), strconv.FormatFloat(p, 'f', 6, 64)); err != nil {
			return err
		}
	}

	return nil
}
