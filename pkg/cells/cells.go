// Package cells implements the subprogram that manages persistent value
// cells.
package cells

import (
	"errors"
	"fmt"
	"os"

	"src.exprval.dev/pkg/errutil"
	"src.exprval.dev/pkg/literal"
	"src.exprval.dev/pkg/logutil"
	"src.exprval.dev/pkg/prog"
	"src.exprval.dev/pkg/store"
	"src.exprval.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[cells] ")

// Program is the cells subprogram. It runs when one of -set, -get, -del and
// -ls is given.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) (err error) {
	if f.Set == "" && f.Get == "" && f.Del == "" && !f.Ls {
		return prog.ErrNotSuitable
	}
	if f.DB == "" {
		return prog.BadUsage("-db is required to access cells")
	}
	if f.Set != "" && len(args) != 1 {
		return prog.BadUsage("-set requires exactly one literal argument")
	}
	if f.Set == "" && len(args) > 0 {
		return prog.BadUsage("arguments are not allowed")
	}

	st, err := store.NewStore(f.DB)
	if err != nil {
		return fmt.Errorf("open cell database: %w", err)
	}
	defer func() { err = errutil.Multi(err, st.Close()) }()
	logger.Println("opened", f.DB)

	switch {
	case f.Set != "":
		return st.SetCell(f.Set, literal.Parse(args[0]))
	case f.Get != "":
		v, err := st.Cell(f.Get)
		if errors.Is(err, storedefs.ErrNoCell) {
			return fmt.Errorf("%s: %w", f.Get, err)
		} else if err != nil {
			return err
		}
		if f.Describe {
			fmt.Fprintln(fds[1], v.Describe())
		} else {
			fmt.Fprintln(fds[1], v.Text())
		}
		return nil
	case f.Del != "":
		return st.DelCell(f.Del)
	default:
		names, err := st.CellNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(fds[1], name)
		}
		return nil
	}
}
