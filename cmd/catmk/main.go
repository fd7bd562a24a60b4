package main

import (
	"fmt"
	"os"

	"git.fractalqb.de/fractalqb/catmk"
	"git.fractalqb.de/fractalqb/catmk/catmkore"
	"git.fractalqb.de/fractalqb/catmk/manifest"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "catmk"})

	titleColor = color.New(color.FgCyan, color.Bold)
	noteColor  = color.New(color.Faint)
)

var (
	flagLog   string
	flagColor string
	flagProbe bool
)

var rootCmd = &cobra.Command{
	Use:   "catmk",
	Short: "Compose physical libraries from modules and categories",
	Long: `catmk reads declarations of modules and categories from TOML or HCL
files and composes them into the physical library targets of a build.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch flagColor {
		case "auto":
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		default:
			return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", flagColor)
		}
		if flagLog == "debug" || flagLog == "d" {
			logger.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

func main() {
	rootCmd.Version = version()

	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "warn", "trace level (off|warn|info|debug)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolVar(&flagProbe, "probe", true, "check the include/ and src/ layout of module directories")

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func listing() catmk.Listing {
	return catmk.Listing{
		Title: titleColor.SprintFunc(),
		Note:  noteColor.SprintFunc(),
	}
}

// newContext creates a context that traces to stderr according to --log and
// applies the declaration files.
func newContext(cfg catmk.Config, files []string) (*catmk.Context, error) {
	tr := &catmk.WriteTracer{W: os.Stderr, Log: catmkore.DefaultTraceLog}
	if err := tr.ParseLogFlag(flagLog); err != nil {
		return nil, err
	}
	if !flagProbe {
		cfg.Probe = catmkore.AnyProbe{}
	}
	c := catmk.NewContext(cfg, catmkore.NewTrace(nil, tr))
	if err := manifest.ApplyFiles(c, files...); err != nil {
		return nil, err
	}
	logger.Debug("declarations loaded",
		"files", len(files),
		"modules", len(c.Modules()),
		"categories", len(c.Categories()),
	)
	return c, nil
}
