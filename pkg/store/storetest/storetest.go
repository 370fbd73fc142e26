// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.exprval.dev/pkg/exprval"
	"src.exprval.dev/pkg/store/storedefs"
)

// TestCells tests the cell functionality of a Store.
func TestCells(t *testing.T, store storedefs.Store) {
	t.Helper()

	if _, err := store.Cell("foo"); !errors.Is(err, storedefs.ErrNoCell) {
		t.Errorf("Cell(foo) -> %v, want ErrNoCell", err)
	}

	cells := map[string]exprval.Value{
		"int":      exprval.FromInt(42),
		"octal":    exprval.FromInt(7, "007"),
		"double":   exprval.FromDouble(1.5),
		"exp":      exprval.FromDouble(1500, "1.5e3"),
		"str":      exprval.FromText("hello world"),
		"empty":    exprval.FromText(""),
		"negative": exprval.FromInt(-1),
	}
	for name, v := range cells {
		if err := store.SetCell(name, v); err != nil {
			t.Errorf("SetCell(%s) -> %v", name, err)
		}
	}

	for name, want := range cells {
		got, err := store.Cell(name)
		if err != nil {
			t.Errorf("Cell(%s) -> %v", name, err)
			continue
		}
		if got.Kind() != want.Kind() || got.HasCachedText() != want.HasCachedText() ||
			got.Text() != want.Text() {
			t.Errorf("Cell(%s) = %#v, want %#v", name, &got, &want)
		}
	}

	names, err := store.CellNames()
	wantNames := []string{"double", "empty", "exp", "int", "negative", "octal", "str"}
	if err != nil || !cmp.Equal(names, wantNames) {
		t.Errorf("CellNames() -> (%v, %v), want (%v, nil)", names, err, wantNames)
	}

	if err := store.DelCell("int"); err != nil {
		t.Errorf("DelCell(int) -> %v", err)
	}
	if _, err := store.Cell("int"); !errors.Is(err, storedefs.ErrNoCell) {
		t.Errorf("Cell(int) after DelCell -> %v, want ErrNoCell", err)
	}
	if err := store.DelCell("int"); err != nil {
		t.Errorf("DelCell(int) again -> %v, want nil", err)
	}
}
