//go:build unix

package progtest

import (
	"io"

	"github.com/creack/pty"
	"src.exprval.dev/pkg/must"
	"src.exprval.dev/pkg/prog"
)

// RunInteractive runs a Program with a pseudo-terminal as stdin. The input,
// which should end with a newline, is typed into the terminal followed by an
// end-of-file character. It returns an error if no pseudo-terminal can be
// opened.
func RunInteractive(p prog.Program, args []string, input string) (exit int, stdout, stderr string, err error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return 0, "", "", err
	}
	defer ptmx.Close()
	defer tty.Close()
	// The terminal echoes input back; drain it so that writes never block.
	go io.Copy(io.Discard, ptmx)

	must.OK1(ptmx.WriteString(input + "\x04"))
	r := runWithStdin(p, append([]string{"exprval"}, args...), tty)
	return r.exitCode, r.stdout.content, r.stderr.content, nil
}
