package interp

import "github.com/cwbudde/go-lbpl/internal/value"

// signalKind distinguishes ordinary fall-through completion from the
// three non-local exits a statement can produce. Modeled as an explicit
// result variant propagated up the evaluator's return path, per
// spec.md's DESIGN NOTES §9 -- not as a Go panic/recover, so a loop
// driver or call frame can catch exactly the signal meant for it and
// let the others keep unwinding.
type signalKind int

const (
	signalNone signalKind = iota
	signalBreak
	signalContinue
	signalReturn
)

// signal carries a non-local exit plus its payload (only meaningful for
// signalReturn).
type signal struct {
	kind  signalKind
	value value.Value
}

var noSignal = signal{kind: signalNone}
