package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lbpl/internal/repl"
)

const replBanner = `  _ _             _
 | | |           | |
 | | |__  _ __  | |
 | | '_ \| '_ \| |
 | | |_) | |_) | |
 |_|_.__/| .__/|_|
         | |
         |_|`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive LBPL session",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	session := repl.New(replBanner, Version, strings.Repeat("-", 40), "lbpl> ")
	return session.Start(os.Stdout)
}
