package cmd

import (
	"fmt"

	"github.com/cwbudde/go-lbpl/internal/ast"
	"github.com/spf13/cobra"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an LBPL file and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline source instead of reading a file")
}

func runParse(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	stmts, err := parseSource(filename, src)
	if err != nil {
		return err
	}

	fmt.Println(ast.Print(stmts))
	return nil
}
