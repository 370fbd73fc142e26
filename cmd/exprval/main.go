// Exprval evaluates literals and single operators with the dual-form values
// of an expression evaluator, and keeps values in a cell database. It is a
// tool for inspecting how values are parsed, rendered and coerced.
package main

import (
	"os"

	"src.exprval.dev/pkg/buildinfo"
	"src.exprval.dev/pkg/calc"
	"src.exprval.dev/pkg/cells"
	"src.exprval.dev/pkg/pprof"
	"src.exprval.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		pprof.Wrap(prog.Composite(
			buildinfo.Program, cells.Program{}, calc.Program{}))))
}
