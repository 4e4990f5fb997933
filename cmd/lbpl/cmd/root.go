// Package cmd wires the lbpl binary's Cobra command tree (run, lex,
// parse, repl, version), grounded on the teacher's cmd/dwscript/cmd
// structure: one file per subcommand, each registering itself in init.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; defaults to a development marker.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lbpl",
	Short: "LBPL interpreter",
	Long: `lbpl is a tree-walking interpreter for LBPL, a small
dynamically-typed, class-based scripting language.`,
	Version: Version,
	// Args/RunE let `lbpl script.lbpl` run a file directly, equivalent to
	// `lbpl run script.lbpl`, without forcing a subcommand name.
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runRun(cmd, args)
	},
}

var verbose bool

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{with .Name}}{{printf \"%%s \" .}}{{end}}{{printf \"version %%s\" .Version}}\nCommit: %s\n", GitCommit))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
