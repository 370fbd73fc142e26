package exprval

import (
	"strconv"
	"strings"
)

// Describe returns a diagnostic description of v: its kind and payload and,
// for numbers, the text it was parsed from when that differs from the
// canonical rendering. It does not populate the cache.
func (v *Value) Describe() string {
	var sb strings.Builder
	var canonical string
	switch v.kind {
	case Int:
		canonical = formatInt(v.i)
		sb.WriteString("int ")
	case Double:
		canonical = formatDouble(v.d)
		sb.WriteString("double ")
	default:
		sb.WriteString("string ")
		sb.WriteString(strconv.Quote(v.text))
		return sb.String()
	}
	sb.WriteString(strconv.Quote(canonical))
	if v.hasText && v.text != canonical {
		sb.WriteString(" parsed from ")
		sb.WriteString(strconv.Quote(v.text))
	}
	return sb.String()
}

// GoString implements fmt.GoStringer, so that %#v shows Describe.
func (v *Value) GoString() string { return v.Describe() }
