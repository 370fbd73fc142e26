// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import (
	"errors"

	"src.exprval.dev/pkg/exprval"
)

// ErrNoCell is returned by Store.Cell when there is no such cell.
var ErrNoCell = errors.New("no such cell")

// Store is an interface satisfied by the storage service. It keeps named value
// cells that outlive a single evaluation.
type Store interface {
	Cell(name string) (exprval.Value, error)
	SetCell(name string, v exprval.Value) error
	DelCell(name string) error
	CellNames() ([]string, error)
}
