// Command lbpl is the LBPL interpreter's CLI front end.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lbpl/cmd/lbpl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
