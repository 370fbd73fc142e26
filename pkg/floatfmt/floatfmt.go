// Package floatfmt renders float64 values the way Tcl expressions print them.
//
// Doubles always look like doubles: a rendering that would otherwise read as
// an integer gets a ".0" suffix. Infinities and NaN are spelled Inf, -Inf and
// NaN.
package floatfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// MaxPrecision is the largest number of significant digits that makes a
// difference for a float64.
const MaxPrecision = 17

// Decimal exponent range rendered in fixed notation by shortest formatting.
const (
	minFixedExp = -4
	maxFixedExp = 16
)

var precision atomic.Int32

// Precision returns the number of significant digits used by Format. 0 means
// the shortest representation that round-trips.
func Precision() int { return int(precision.Load()) }

// SetPrecision sets the precision used by Format. It should be called before
// any formatting happens, since values may have cached their text already.
func SetPrecision(p int) error {
	if p < 0 || p > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, p)
	}
	precision.Store(int32(p))
	return nil
}

// Format renders f with the current precision.
func Format(f float64) string {
	return FormatPrec(f, Precision())
}

// FormatPrec renders f with prec significant digits; 0 means shortest.
//
// Shortest formatting uses fixed notation when the decimal exponent is in
// [-4, 16]. Otherwise, like C's %.<prec>g, fixed notation is used when the
// exponent is at least -4 and less than prec.
func FormatPrec(f float64, prec int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	digits, exp, neg := decompose(f, prec)
	useExp := exp < minFixedExp || exp > maxFixedExp
	if prec > 0 {
		useExp = exp < minFixedExp || exp >= prec
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	switch {
	case useExp:
		sb.WriteString(digits[:1])
		if len(digits) > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		sb.WriteByte('e')
		if exp < 0 {
			sb.WriteByte('-')
			exp = -exp
		} else {
			sb.WriteByte('+')
		}
		if exp < 10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.Itoa(exp))
	case exp < 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -exp-1))
		sb.WriteString(digits)
	case len(digits) > exp+1:
		sb.WriteString(digits[:exp+1])
		sb.WriteByte('.')
		sb.WriteString(digits[exp+1:])
	default:
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", exp+1-len(digits)))
		sb.WriteString(".0")
	}
	return sb.String()
}

// Splits a finite f into its significant decimal digits, without trailing
// zeros, and the decimal exponent of the first digit.
func decompose(f float64, prec int) (digits string, exp int, neg bool) {
	s := strconv.FormatFloat(f, 'e', prec-1, 64)
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	mant, expStr, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		panic("unexpected exponent in " + s)
	}
	digits = strings.TrimRight(strings.Replace(mant, ".", "", 1), "0")
	if digits == "" {
		digits = "0"
	}
	return digits, exp, neg
}
