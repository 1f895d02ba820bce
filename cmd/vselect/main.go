package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vselect/internal/config"
)

var version = "0.1.0"

// flags holds command line overrides; only flags the user set are applied
type flags struct {
	multi      bool
	search     bool
	sticky     bool
	loop       bool
	debounce   time.Duration
	configPath string
	generate   int
	groups     int
	remember   bool
	saveConfig bool
	title      string
}

var opts flags

var rootCmd = &cobra.Command{
	Use:   "vselect [catalogue...]",
	Short: "Pick options from a large list in the terminal",
	Long: "vselect opens a searchable, windowed select list over one or more option\n" +
		"catalogues (TOML, YAML or TSV) and prints the chosen values on exit.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelect(cmd, args, opts)
	},
}

var listCmd = &cobra.Command{
	Use:   "list [catalogue...]",
	Short: "Print the merged catalogue as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args, opts)
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.IntVar(&opts.generate, "generate", 0, "generate N synthetic options instead of reading catalogues")
	f.IntVar(&opts.groups, "groups", 0, "number of groups for --generate")

	f = rootCmd.Flags()
	f.BoolVarP(&opts.multi, "multi", "m", false, "allow selecting several options")
	f.BoolVarP(&opts.search, "search", "s", true, "show the search input")
	f.BoolVar(&opts.sticky, "sticky", false, "pin the current group header to the top")
	f.BoolVar(&opts.loop, "loop", false, "wrap keyboard navigation at the ends")
	f.DurationVar(&opts.debounce, "debounce", 200*time.Millisecond, "delay before search text is applied")
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.NewConfigService().Path()+")")
	f.BoolVar(&opts.remember, "remember", false, "restore and persist the last selection for these catalogues")
	f.BoolVar(&opts.saveConfig, "save-config", false, "write the effective settings back to the config file")
	f.StringVar(&opts.title, "title", "", "title shown above the list")

	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
