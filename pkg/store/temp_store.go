package store

import (
	"path/filepath"

	"src.exprval.dev/pkg/must"
	"src.exprval.dev/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file. The Store is
// closed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	st := must.OK1(NewStore(filepath.Join(testutil.TempDir(c), "cells.db")))
	c.Cleanup(func() { must.OK(st.Close()) })
	return st
}
