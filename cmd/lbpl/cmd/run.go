package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an LBPL program",
	Long: `Execute an LBPL program from a file, an inline expression, or stdin.

Examples:
  lbpl run script.lbpl
  lbpl run -e 'println("hi");'
  cat script.lbpl | lbpl run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading a file")
}

func runRun(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}
	return runProgram(filename, src, os.Stdout)
}
