package exprval

import (
	"errors"
	"fmt"

	"src.exprval.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[exprval] ")

var (
	// ErrInvalidArgument is returned when a constructor is missing required
	// input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is matched by all *InvalidStateError values.
	ErrInvalidState = errors.New("invalid state")
)

// InvalidStateError is raised when an operation is invoked on a Value whose
// kind or cache violates the operation's precondition.
type InvalidStateError struct {
	Op  string
	Msg string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Is makes errors.Is(err, ErrInvalidState) hold.
func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// Panics with an *InvalidStateError. Only reachable in debug builds.
func fault(op, msg string) {
	err := &InvalidStateError{Op: op, Msg: msg}
	logger.Println("fault:", err)
	panic(err)
}

func checkKind(op string, v *Value, k Kind) {
	if v.kind != k {
		fault(op, fmt.Sprintf("called on %s value, need %s", v.kind, k))
	}
}

func checkKinds(op string, v, other *Value, k Kind) {
	checkKind(op, v, k)
	if other.kind != k {
		fault(op, fmt.Sprintf("operand is %s value, need %s", other.kind, k))
	}
}
