package main

import (
	"fmt"
	"strings"

	"git.fractalqb.de/fractalqb/catmk"
	"git.fractalqb.de/fractalqb/catmk/catmkore"
	"git.fractalqb.de/fractalqb/catmk/cycles"
	"github.com/spf13/cobra"
)

var cyclesFlags struct {
	adjacency bool
	modules   bool
}

func init() {
	f := cyclesCmd.Flags()
	f.BoolVar(&cyclesFlags.adjacency, "adjacency", false, "arguments are module adjacency lists instead of declaration files")
	f.BoolVar(&cyclesFlags.modules, "modules", false, "check modules instead of categories")
}

var cyclesCmd = &cobra.Command{
	Use:   "cycles FILE...",
	Short: "Check for dependency cycles and print the build order",
	Long: `Check for dependency cycles between categories or modules. Cycles
between modules of the same category are fine. Without cycles, the build order
is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := cycleGraph(args)
		if err != nil {
			return err
		}
		order, err := g.Order()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, " "))
		logger.Info("no cycles", "nodes", g.Len())
		return nil
	},
}

func cycleGraph(files []string) (*cycles.Graph, error) {
	if cyclesFlags.adjacency {
		var adjs []catmkore.Adjacency
		for _, f := range files {
			as, err := catmkore.ReadAdjacencyFile(f)
			if err != nil {
				return nil, err
			}
			adjs = append(adjs, as...)
		}
		return cycles.FromAdjacency(adjs), nil
	}
	c, err := newContext(catmk.Config{}, files)
	if err != nil {
		return nil, err
	}
	if cyclesFlags.modules {
		return cycles.FromAdjacency(c.Adjacencies()), nil
	}
	return cycles.Categories(c)
}
