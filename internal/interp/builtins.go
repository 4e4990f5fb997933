package interp

import (
	"fmt"
	"time"

	"github.com/cwbudde/go-lbpl/internal/value"
)

// registerBuiltins installs the two host functions spec.md §4.5 promises
// every program: `println` for output and `clock` for wall-clock timing.
// Both are plain HostFunction values so user code cannot tell them apart
// from a call to any other Callable.
func registerBuiltins(global *Environment) {
	global.Define("println", &HostFunction{
		Name: "println",
		Ar:   1,
		Fn: func(it *Interpreter, args []value.Value) (value.Value, error) {
			fmt.Fprintln(it.Stdout, args[0].String())
			return value.NilValue, nil
		},
	})

	global.Define("clock", &HostFunction{
		Name: "clock",
		Ar:   0,
		Fn: func(it *Interpreter, args []value.Value) (value.Value, error) {
			return value.Float{Value: float64(time.Now().UnixMilli()) / 1000.0}, nil
		},
	})
}
