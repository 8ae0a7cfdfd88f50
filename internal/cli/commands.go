package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/unionfind/connectivity"
	"github.com/katalvlaran/unionfind/gridgraph"
	"github.com/katalvlaran/unionfind/internal/config"
	"github.com/katalvlaran/unionfind/kruskal"
)

func newConnectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect [file|-]",
		Short: "Print the pairs that connect two separate components",
		Long: `connect reads a site count followed by "p q" pairs and prints every pair
that joins two components not yet connected, then the number of components left.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prob, err := a.readProblem(cmd, args)
			if err != nil {
				return err
			}

			opts := []connectivity.Option{connectivity.WithLogger(a.log)}
			if a.cfg.Balance == config.BalanceSize {
				opts = append(opts, connectivity.WithUnionBySize())
			}
			res := connectivity.Solve(prob, opts...)

			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatTable {
				renderSets(out, res.Sets)
			} else {
				for _, p := range res.Connections {
					fmt.Fprintf(out, "%d %d\n", p.P, p.Q)
				}
			}
			fmt.Fprintf(out, "%d components\n", res.Count)

			return nil
		},
	}
}

func newGridCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid [file|-]",
		Short: "Count the islands of land cells in a grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			values, err := gridgraph.ReadGrid(in)
			if err != nil {
				return err
			}
			opts := gridgraph.GridOptions{LandThreshold: a.cfg.Grid.LandThreshold, Conn: gridgraph.Conn4}
			if a.cfg.Grid.Conn == 8 {
				opts.Conn = gridgraph.Conn8
			}
			// Flags win over config.
			if cmd.Flags().Changed("conn8") {
				opts.Conn = gridgraph.Conn4
				if on, _ := cmd.Flags().GetBool("conn8"); on {
					opts.Conn = gridgraph.Conn8
				}
			}
			if cmd.Flags().Changed("threshold") {
				opts.LandThreshold, _ = cmd.Flags().GetInt("threshold")
			}

			gg, err := gridgraph.NewGridGraph(values, opts)
			if err != nil {
				return err
			}
			comps := gg.ConnectedComponents()
			a.log.Debug("grid analysed",
				zap.Int("width", gg.Width), zap.Int("height", gg.Height), zap.Int("islands", len(comps)))

			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatTable {
				renderIslands(out, gg, comps)
			}
			fmt.Fprintf(out, "%d islands\n", len(comps))

			return nil
		},
	}
	cmd.Flags().Bool("conn8", false, "use 8-directional connectivity")
	cmd.Flags().Int("threshold", 1, "minimum cell value considered land")

	return cmd
}

func newMSTCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst [file|-]",
		Short: "Compute a minimum spanning tree over weighted pairs",
		Long: `mst reads the same input as connect, with an optional third weight column
(default 1), and prints the minimum spanning tree. With --forest a disconnected
input yields a minimum spanning forest instead of an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prob, err := a.readProblem(cmd, args)
			if err != nil {
				return err
			}
			var opts []kruskal.Option
			if a.cfg.Balance == config.BalanceSize {
				opts = append(opts, kruskal.WithUnionBySize())
			}

			forestMode, _ := cmd.Flags().GetBool("forest")
			var (
				edges      []kruskal.Edge
				total      int64
				components = 1
			)
			if forestMode {
				f, err := kruskal.SpanningForest(prob.N, prob.Edges(), opts...)
				if err != nil {
					return err
				}
				edges, total, components = f.Edges, f.Weight, f.Components
			} else {
				edges, total, err = kruskal.Kruskal(prob.N, prob.Edges(), opts...)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatTable {
				renderEdges(out, edges, total)
			} else {
				for _, e := range edges {
					fmt.Fprintf(out, "%d %d %d\n", e.From, e.To, e.Weight)
				}
			}
			fmt.Fprintf(out, "weight %d, %d components\n", total, components)

			return nil
		},
	}
	cmd.Flags().Bool("forest", false, "allow disconnected input and print a spanning forest")

	return cmd
}

// readProblem opens and parses the connectivity input named by args.
func (a *app) readProblem(cmd *cobra.Command, args []string) (*connectivity.Problem, error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	prob, err := connectivity.Parse(in)
	if err != nil {
		return nil, err
	}
	a.log.Debug("input parsed", zap.Int("sites", prob.N), zap.Int("pairs", len(prob.Pairs)))

	return prob, nil
}
