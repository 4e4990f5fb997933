package cmd

import (
	"fmt"

	"github.com/cwbudde/go-lbpl/internal/lexer"
	"github.com/cwbudde/go-lbpl/internal/token"
	"github.com/spf13/cobra"
)

var lexExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an LBPL file and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline source instead of reading a file")
}

func runLex(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(lexExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(filename, src)
	for {
		tok := l.Next()
		fmt.Printf("%-12s %q @%d:%d\n", tok.Kind, tok.Lexeme, tok.Pos.Line, tok.Pos.Column)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}
