// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.exprval.dev/pkg/buildinfo.VersionSuffix=value" to
// "go build".
package buildinfo

import (
	"fmt"
	"os"

	"src.exprval.dev/pkg/prog"
)

// Version identifies the version of exprval. On development commits, it
// identifies the next release.
const Version = "0.1.0"

// VersionSuffix is appended to Version in the output of "exprval -version".
var VersionSuffix = "-dev.unknown"

// Program is the buildinfo subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fmt.Fprintln(fds[1], Version+VersionSuffix)
	return nil
}
