// Package calc implements the calculator subprogram, which evaluates literals
// and single operators given as arguments or read line by line from stdin.
package calc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"src.exprval.dev/pkg/errutil"
	"src.exprval.dev/pkg/exprval"
	"src.exprval.dev/pkg/literal"
	"src.exprval.dev/pkg/logutil"
	"src.exprval.dev/pkg/prog"
	"src.exprval.dev/pkg/sys"
)

var logger = logutil.GetLogger("[calc] ")

// Program is the calculator subprogram. It is always suitable, so it should
// come last in a composite program.
type Program struct{}

const prompt = "> "

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return eval(fds[1], f, args)
	}
	return loop(fds, f)
}

func loop(fds [3]*os.File, f *prog.Flags) error {
	interactive := sys.IsATTY(fds[0].Fd())
	logger.Println("reading stdin, interactive:", interactive)

	failed := false
	sc := bufio.NewScanner(fds[0])
	for {
		if interactive {
			fmt.Fprint(fds[1], prompt)
		}
		if !sc.Scan() {
			break
		}
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}
		if err := eval(fds[1], f, words); err != nil {
			fmt.Fprintln(fds[2], err)
			failed = true
		}
	}
	if interactive {
		// Finish the line with the dangling prompt.
		fmt.Fprintln(fds[1])
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if failed {
		return prog.Exit(1)
	}
	return nil
}

func eval(out io.Writer, f *prog.Flags, words []string) error {
	switch {
	case f.Describe:
		for _, word := range words {
			v := literal.Parse(word)
			fmt.Fprintln(out, v.Describe())
		}
		return nil
	case f.Bool:
		var errs []error
		for _, word := range words {
			v := literal.Parse(word)
			b, err := v.Bool()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			fmt.Fprintln(out, b)
		}
		return errutil.Multi(errs...)
	}

	v, err := evalExpr(words)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v.Text())
	return nil
}

func evalExpr(words []string) (exprval.Value, error) {
	switch {
	case len(words) == 1:
		return literal.Parse(words[0]), nil
	case len(words) == 2 && words[0] == "!":
		return literal.Not(literal.Parse(words[1]))
	case len(words) == 3 && literal.IsBinaryOp(words[1]):
		return literal.Apply(words[1], literal.Parse(words[0]), literal.Parse(words[2]))
	}
	return exprval.Value{}, prog.BadUsage(
		fmt.Sprintf("can't evaluate %q: want literal, ! literal or literal op literal", strings.Join(words, " ")))
}
