// Package literal reads number and string literals into values and applies
// operators to them, standing in for an expression evaluator.
//
// Operands are unified before the optimized operators of exprval are called:
// when one operand is a Double, the other is promoted.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"src.exprval.dev/pkg/exprval"
)

// Parse reads s as an integer literal, then as a floating-point literal, and
// falls back to a string. Numbers keep s as their text.
//
// Integer literals follow Go's base prefixes, and a leading 0 means octal, as
// in Tcl 8.4. A malformed literal made only of digits, like "08", is a string.
func Parse(s string) exprval.Value {
	if s == "" || strings.ContainsRune(s, '_') || strings.TrimSpace(s) != s {
		return exprval.FromText(s)
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return exprval.FromInt(i, s)
	}
	if errors.Is(err, strconv.ErrRange) || isDigits(strings.TrimLeft(s, "+-")) {
		return exprval.FromText(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return exprval.FromDouble(f, s)
	}
	return exprval.FromText(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// OperandError is returned when an operator is applied to a non-numeric
// operand.
type OperandError struct {
	Op      string
	Operand string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("can't use non-numeric string %q as operand of %q", e.Operand, e.Op)
}

var errUnknownOp = errors.New("unknown operator")

type binOp struct {
	int, double func(v, other *exprval.Value)
}

var binOps = map[string]binOp{
	"*":  {(*exprval.Value).IntMul, (*exprval.Value).DoubleMul},
	"+":  {(*exprval.Value).IntAdd, (*exprval.Value).DoubleAdd},
	"-":  {(*exprval.Value).IntSub, (*exprval.Value).DoubleSub},
	"<":  {(*exprval.Value).IntLess, (*exprval.Value).DoubleLess},
	">":  {(*exprval.Value).IntGreater, (*exprval.Value).DoubleGreater},
	"<=": {(*exprval.Value).IntLessEq, (*exprval.Value).DoubleLessEq},
	">=": {(*exprval.Value).IntGreaterEq, (*exprval.Value).DoubleGreaterEq},
	"==": {(*exprval.Value).IntEq, (*exprval.Value).DoubleEq},
	"!=": {(*exprval.Value).IntNotEq, (*exprval.Value).DoubleNotEq},
}

// IsBinaryOp reports whether op is a binary operator supported by Apply.
func IsBinaryOp(op string) bool {
	_, ok := binOps[op]
	return ok
}

// Apply applies the binary operator op to a and b.
func Apply(op string, a, b exprval.Value) (exprval.Value, error) {
	f, ok := binOps[op]
	if !ok {
		return exprval.Value{}, fmt.Errorf("%w %q", errUnknownOp, op)
	}
	for _, v := range []*exprval.Value{&a, &b} {
		if !v.IsNumeric() {
			return exprval.Value{}, &OperandError{op, v.Text()}
		}
	}
	if a.IsInt() && b.IsInt() {
		f.int(&a, &b)
		return a, nil
	}
	promote(&a)
	promote(&b)
	f.double(&a, &b)
	return a, nil
}

// Not applies the logical not operator to a.
func Not(a exprval.Value) (exprval.Value, error) {
	switch a.Kind() {
	case exprval.Int:
		if a.HasCachedText() {
			a.IntNot()
		} else {
			a.IntNotNoClear()
		}
	case exprval.Double:
		a.DoubleNot()
	default:
		return exprval.Value{}, &OperandError{"!", a.Text()}
	}
	return a, nil
}

func promote(v *exprval.Value) {
	if v.IsInt() {
		v.SetDouble(float64(v.Int()))
	}
}
