package main

import (
	"fmt"
	"os"
	"strings"

	"git.fractalqb.de/fractalqb/catmk"
	"git.fractalqb.de/fractalqb/catmk/catmkore"
	"github.com/spf13/cobra"
)

var composeFlags struct {
	static, shared bool
	exclude        []string
	adjacency      string
	stamp          string
	fresh          bool
	dot            string
	quiet          bool
}

func init() {
	f := composeCmd.Flags()
	f.BoolVar(&composeFlags.shared, "shared", false, "build shared libraries (default if --static is not set)")
	f.BoolVar(&composeFlags.static, "static", false, "build static libraries")
	f.StringSliceVar(&composeFlags.exclude, "exclude", nil, "categories built by other means")
	f.StringVar(&composeFlags.adjacency, "adjacency", "", "write the module adjacency list to `file`")
	f.StringVar(&composeFlags.stamp, "stamp", "", "remember the composition in `file` to detect a second one")
	f.BoolVar(&composeFlags.fresh, "fresh", false, "remove the stamp file before composing")
	f.StringVar(&composeFlags.dot, "dot", "", "write the target graph in Graphviz format to `file`")
	f.BoolVarP(&composeFlags.quiet, "quiet", "q", false, "do not list the composed targets")
}

var composeCmd = &cobra.Command{
	Use:   "compose FILE...",
	Short: "Compose the physical targets of declaration files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := catmk.Config{
			Shared:        composeFlags.shared,
			Static:        composeFlags.static,
			Exclude:       composeFlags.exclude,
			AdjacencyFile: composeFlags.adjacency,
			Host: catmkore.HostFunc(func(ts []*catmkore.Target) error {
				for _, t := range ts {
					logger.Debug("target", "name", t.Name, "kind", t.Kind, "sources", len(t.Sources))
				}
				return nil
			}),
		}
		if composeFlags.stamp != "" {
			stamps := catmkore.FileStamps(composeFlags.stamp)
			if composeFlags.fresh {
				if err := stamps.Clear(); err != nil {
					return err
				}
			}
			cfg.Stamps = stamps
		}
		c, err := newContext(cfg, args)
		if err != nil {
			return err
		}
		cmp, err := c.Compose(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if composeFlags.dot != "" {
			if err := writeDot(composeFlags.dot, cmp); err != nil {
				return err
			}
		}
		if !composeFlags.quiet {
			if err := listing().WriteTargets(cmd.OutOrStdout(), cmp); err != nil {
				return err
			}
		}
		logger.Info("composed", "targets", len(cmp.Targets), "modules", len(c.Modules()))
		return nil
	},
}

func writeDot(file string, cmp *catmk.Composition) (err error) {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if e := w.Close(); e != nil && err == nil {
			err = e
		}
	}()
	if _, err = cmp.WriteDot(w, "catmk"); err != nil {
		return fmt.Errorf("writing dot file %s: %w", file, err)
	}
	return nil
}
