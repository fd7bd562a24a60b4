package main

import (
	"git.fractalqb.de/fractalqb/catmk"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules FILE...",
	Short: "List declared modules with their category and origin",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newContext(catmk.Config{}, args)
		if err != nil {
			return err
		}
		return listing().WriteModules(cmd.OutOrStdout(), c)
	},
}
