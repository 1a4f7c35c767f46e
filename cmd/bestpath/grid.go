package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bestpath/internal/loader"
	"github.com/katalvlaran/bestpath/internal/render"
	"github.com/katalvlaran/bestpath/search"
)

type gridOpts struct {
	mapFile  string
	start    string
	goal     string
	dijkstra bool
}

func newGridCommand(root *rootOpts) *cobra.Command {
	opts := gridOpts{}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Find a path across an occupancy grid",
		Long: `Read a map ("rows cols" followed by rows*cols cells, 0 open and 1
obstacle), search from start to goal with 4-directional unit moves and
print the path and an overlay of the grid.

Start defaults to the top-left cell and goal to the bottom-right one.`,
		Args: cobra.NoArgs,
		RunE: root.runE(func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(opts.mapFile)
			if err != nil {
				return err
			}
			defer f.Close()

			gg, err := loader.ReadGrid(f)
			if err != nil {
				return fmt.Errorf("%s: %w", opts.mapFile, err)
			}
			root.logger.Debug("map loaded", zap.String("file", opts.mapFile),
				zap.Int("rows", gg.Rows()), zap.Int("cols", gg.Cols()))

			start, err := parsePoint(opts.start, [2]int{0, 0})
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			goal, err := parsePoint(opts.goal, [2]int{gg.Rows() - 1, gg.Cols() - 1})
			if err != nil {
				return fmt.Errorf("--goal: %w", err)
			}
			if err = loader.ValidateEndpoints(gg, start, goal); err != nil {
				return err
			}
			src, _ := gg.ID(start[0], start[1])
			dst, _ := gg.ID(goal[0], goal[1])

			mode, extra := "astar", []search.Option{search.WithGoal(dst), search.WithHeuristic(gg.Manhattan(dst))}
			if opts.dijkstra {
				mode, extra = "dijkstra", []search.Option{search.WithGoal(dst)}
			}
			res, err := root.run(cmd.Context(), mode, gg, src, extra...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err = render.Path(out, gg, res.Path); err != nil {
				return err
			}
			if !res.Found() {
				return nil
			}
			return render.Grid(out, gg, src, dst, res.Path)
		}),
	}

	cmd.Flags().StringVar(&opts.mapFile, "map", "map.txt", "Map file to read")
	cmd.Flags().StringVar(&opts.start, "start", "", "Start cell as row,col (default 0,0)")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "Goal cell as row,col (default bottom-right)")
	cmd.Flags().BoolVar(&opts.dijkstra, "dijkstra", false, "Search without the Manhattan heuristic")
	return cmd
}

// parsePoint parses "row,col"; an empty string yields def.
func parsePoint(s string, def [2]int) ([2]int, error) {
	if s == "" {
		return def, nil
	}
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return [2]int{}, fmt.Errorf("%q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return [2]int{}, fmt.Errorf("%q: row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return [2]int{}, fmt.Errorf("%q: col: %w", s, err)
	}

	return [2]int{r, c}, nil
}
