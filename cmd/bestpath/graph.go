package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bestpath/internal/loader"
	"github.com/katalvlaran/bestpath/internal/render"
)

type graphOpts struct {
	input    string
	source   int
	directed bool
}

func newGraphCommand(root *rootOpts) *cobra.Command {
	opts := graphOpts{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Compute single-source distances on a weighted edge list",
		Long: `Read "n m", then m lines "u v w" and an optional source vertex, and
print the least cost from the source to every vertex (INF when
unreachable). Edges are undirected unless --directed is given.`,
		Args: cobra.NoArgs,
		RunE: root.runE(func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if opts.input != "-" {
				f, err := os.Open(opts.input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			el, err := loader.ReadGraph(in, opts.directed)
			if err != nil {
				return fmt.Errorf("%s: %w", opts.input, err)
			}
			root.logger.Debug("graph loaded", zap.String("input", opts.input),
				zap.Int("vertices", el.Graph.Order()), zap.Int("edges", el.Graph.Size()),
				zap.Bool("directed", el.Graph.Directed()))

			source := el.Source
			if cmd.Flags().Changed("source") {
				source = opts.source
			}
			res, err := root.run(cmd.Context(), "dijkstra", el.Graph, source)
			if err != nil {
				return err
			}

			return render.Distances(cmd.OutOrStdout(), source, res.Distances)
		}),
	}

	cmd.Flags().StringVar(&opts.input, "input", "-", "Edge list file, - for stdin")
	cmd.Flags().IntVar(&opts.source, "source", 0, "Source vertex (overrides the one in the input)")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "Treat each edge as one-way")
	return cmd
}
