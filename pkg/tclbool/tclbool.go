// Package tclbool parses boolean literals the way Tcl does.
//
// The accepted forms are any unambiguous prefix of "true", "false", "yes",
// "no", "on" and "off", case-insensitively, and numbers, which are true iff
// nonzero.
package tclbool

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotABoolean is matched by all *NotABooleanError values.
var ErrNotABoolean = errors.New("not a boolean")

// NotABooleanError is returned by Parse when the text is not a boolean
// literal.
type NotABooleanError struct {
	Text string
}

func (e *NotABooleanError) Error() string {
	return fmt.Sprintf("expected boolean value but got %q", e.Text)
}

// Is makes errors.Is(err, ErrNotABoolean) hold.
func (e *NotABooleanError) Is(target error) bool {
	return target == ErrNotABoolean
}

// Parse parses s as a boolean literal.
func Parse(s string) (bool, error) {
	if b, ok := parseWord(s); ok {
		return b, nil
	}
	if b, ok := parseNumber(s); ok {
		return b, nil
	}
	return false, &NotABooleanError{s}
}

var words = []struct {
	word  string
	value bool
	// Shortest accepted prefix.
	min int
}{
	{"true", true, 1},
	{"false", false, 1},
	{"yes", true, 1},
	{"no", false, 1},
	// "o" alone could be either of these.
	{"on", true, 2},
	{"off", false, 2},
}

func parseWord(s string) (value, ok bool) {
	if len(s) > len("false") {
		return false, false
	}
	lower := strings.ToLower(s)
	for _, w := range words {
		if len(lower) >= w.min && strings.HasPrefix(w.word, lower) {
			return w.value, true
		}
	}
	return false, false
}

func parseNumber(s string) (value, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return false, false
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return i != 0, true
	}
	if errors.Is(err, strconv.ErrRange) {
		// Too large for int64, but certainly not zero.
		return true, true
	}
	if isDigits(strings.TrimLeft(s, "+-")) {
		// A malformed octal literal like "08" is not a number.
		return false, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false, false
	}
	if math.IsNaN(f) {
		return false, false
	}
	return f != 0, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
