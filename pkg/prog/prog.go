// Package prog provides the entry point to exprval. Its subpackages
// correspond to subprograms.
package prog

// This package sets up the basic environment and calls the appropriate
// "subprogram": the value cell store, the version printer or the calculator.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.exprval.dev/pkg/floatfmt"
	"src.exprval.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Flags keeps command-line flags.
type Flags struct {
	Log, Config string

	CPUProfile, AllocsProfile string

	Help, Version bool

	Describe, Bool bool

	// Significant digits for rendering doubles; -1 if not set.
	Precision int

	DB            string
	Set, Get, Del string
	Ls            bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("exprval", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.Config, "config", "", "a YAML config file")

	fs.StringVar(&f.CPUProfile, "cpuprofile", "", "write CPU profile to file")
	fs.StringVar(&f.AllocsProfile, "allocsprofile", "", "write memory allocation profile to file")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")

	fs.BoolVar(&f.Describe, "describe", false, "describe the internal state of values instead of printing their text")
	fs.BoolVar(&f.Bool, "bool", false, "print the boolean value of each argument")
	fs.IntVar(&f.Precision, "precision", -1, "significant digits for doubles, 0 for shortest")

	fs.StringVar(&f.DB, "db", "", "path to the cell database")
	fs.StringVar(&f.Set, "set", "", "set a cell to the literal given as argument")
	fs.StringVar(&f.Get, "get", "", "print the value of a cell")
	fs.StringVar(&f.Del, "del", "", "delete a cell")
	fs.BoolVar(&f.Ls, "ls", false, "list cell names")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: exprval [flags] [literal | ! literal | literal op literal]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. -help is defined but -h is not, so
			// -h has been requested. Handle this like an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Config != "" {
		cfg, err := LoadConfig(f.Config)
		if err != nil {
			fmt.Fprintln(fds[2], err)
			return 2
		}
		cfg.apply(f)
	}

	if f.Precision >= 0 {
		// Restored so that Run can be called repeatedly within one process.
		defer floatfmt.SetPrecision(floatfmt.Precision())
		if err := floatfmt.SetPrecision(f.Precision); err != nil {
			fmt.Fprintln(fds[2], err)
			usage(fds[2], fs)
			return 2
		}
		logger.Println("precision set to", f.Precision)
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var (
		bu badUsageError
		ex exitError
	)
	switch {
	case errors.As(err, &bu):
		usage(fds[2], fs)
	case errors.As(err, &ex):
		return ex.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
