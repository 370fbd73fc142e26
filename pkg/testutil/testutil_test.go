package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"src.exprval.dev/pkg/must"
	"src.exprval.dev/pkg/tt"
)

type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}

func TestRecover(t *testing.T) {
	tt.Test(t, Recover,
		tt.Args(func() {}).Rets(nil),
		tt.Args(func() { panic("unreachable") }).Rets("unreachable"),
	)
}

func TestSet(t *testing.T) {
	x := 1
	c := &cleanuper{}
	Set(c, &x, 2)
	if x != 2 {
		t.Errorf("x = %d after Set, want 2", x)
	}
	c.runCleanups()
	if x != 1 {
		t.Errorf("x = %d after cleanup, want 1", x)
	}
}

func TestTempDir_CleanupRemovesDirRecursively(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)
	must.OK(os.WriteFile(filepath.Join(dir, "a"), []byte("test"), 0600))

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("Dir %q still exists after cleanup", dir)
	}
}

func TestInTempDir(t *testing.T) {
	original := must.OK1(os.Getwd())
	c := &cleanuper{}
	dir := InTempDir(c)

	if wd := must.OK1(os.Getwd()); wd != dir {
		t.Errorf("pwd is now %q, want %q", wd, dir)
	}
	c.runCleanups()
	if wd := must.OK1(os.Getwd()); wd != original {
		t.Errorf("pwd restored to %q, want %q", wd, original)
	}
}

func TestApplyDir(t *testing.T) {
	InTempDir(t)

	ApplyDir(Dir{
		"foo": "foo content",
		"bar": File{0600, "bar content"},
		"d":   Dir{"baz": "baz content"},
	})

	for name, want := range map[string]string{
		"foo":   "foo content",
		"bar":   "bar content",
		"d/baz": "baz content",
	} {
		if got := must.ReadFileString(name); got != want {
			t.Errorf("%s has content %q, want %q", name, got, want)
		}
	}
	if fi := must.OK1(os.Stat("bar")); fi.Mode().Perm() != 0600 {
		t.Errorf("bar has perm %v, want 0600", fi.Mode().Perm())
	}
}
