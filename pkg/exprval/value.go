// Package exprval implements the value type that flows through the expression
// evaluator.
//
// A Value holds exactly one of an int64, a float64 or a string. Numeric values
// carry an optional text form: either the literal the number was parsed from,
// or its canonical rendering, computed on demand and cached. The string form
// of a String value is the value itself.
//
// Values are plain structs and are copied on assignment. Methods that mutate
// the receiver must only be called by the value's sole owner.
package exprval

import (
	"strconv"

	"src.exprval.dev/pkg/floatfmt"
	"src.exprval.dev/pkg/tclbool"
)

// Kind is the active variant of a Value.
type Kind uint8

// Possible values of Kind.
const (
	Int Kind = iota
	Double
	String
)

var kindNames = [...]string{Int: "int", Double: "double", String: "string"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an expression value. The zero Value is the integer 0 with no
// cached text.
type Value struct {
	kind Kind
	i    int64
	d    float64
	// text is authoritative when kind is String. For numeric kinds it caches
	// the canonical rendering or holds the source literal, and is only
	// meaningful when hasText is set.
	text    string
	hasText bool
}

// Renderers for the numeric kinds. Tests replace them to observe how often
// rendering happens.
var (
	formatInt    = func(i int64) string { return strconv.FormatInt(i, 10) }
	formatDouble = floatfmt.Format
)

// FromInt returns an Int value. If src is given, its first element becomes
// the cached text, preserving the literal the number was parsed from.
func FromInt(i int64, src ...string) Value {
	var v Value
	if len(src) > 0 {
		v.SetIntText(i, src[0])
	} else {
		v.SetInt(i)
	}
	return v
}

// FromDouble returns a Double value. If src is given, its first element
// becomes the cached text.
func FromDouble(d float64, src ...string) Value {
	var v Value
	if len(src) > 0 {
		v.SetDoubleText(d, src[0])
	} else {
		v.SetDouble(d)
	}
	return v
}

// FromString returns a String value. It fails with ErrInvalidArgument if s is
// nil.
func FromString(s *string) (Value, error) {
	var v Value
	err := v.SetString(s)
	return v, err
}

// FromText returns a String value holding s.
func FromText(s string) Value {
	return Value{kind: String, text: s, hasText: true}
}

// FromBool returns the Int value 1 or 0.
func FromBool(b bool) Value {
	var v Value
	v.SetBool(b)
	return v
}

// SetInt makes v the Int value i, with no cached text.
func (v *Value) SetInt(i int64) {
	v.text, v.hasText = "", false
	v.i = i
	v.kind = Int
}

// SetIntText makes v the Int value i, with s as its text.
func (v *Value) SetIntText(i int64, s string) {
	v.text, v.hasText = s, true
	v.i = i
	v.kind = Int
}

// SetBool makes v the Int value 1 or 0, with no cached text.
func (v *Value) SetBool(b bool) {
	v.text, v.hasText = "", false
	v.i = b2i(b)
	v.kind = Int
}

// SetDouble makes v the Double value d, with no cached text.
func (v *Value) SetDouble(d float64) {
	v.text, v.hasText = "", false
	v.d = d
	v.kind = Double
}

// SetDoubleText makes v the Double value d, with s as its text.
func (v *Value) SetDoubleText(d float64, s string) {
	v.text, v.hasText = s, true
	v.d = d
	v.kind = Double
}

// SetString makes v the String value *s. If s is nil, it returns
// ErrInvalidArgument and leaves v unchanged.
func (v *Value) SetString(s *string) error {
	if s == nil {
		return ErrInvalidArgument
	}
	v.text, v.hasText = *s, true
	v.kind = String
	return nil
}

func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsInt() bool { return v.kind == Int }

func (v *Value) IsDouble() bool { return v.kind == Double }

func (v *Value) IsString() bool { return v.kind == String }

// IsNumeric reports whether v is an Int or a Double.
func (v *Value) IsNumeric() bool { return v.kind == Int || v.kind == Double }

// HasCachedText reports whether v currently holds a text form. It is always
// true for String values.
func (v *Value) HasCachedText() bool { return v.hasText }

// Int returns the integer payload. The caller must know that v is an Int;
// this is only checked in debug builds.
func (v *Value) Int() int64 {
	if validate {
		checkKind("Int", v, Int)
	}
	return v.i
}

// Double returns the floating-point payload. The caller must know that v is a
// Double; this is only checked in debug builds.
func (v *Value) Double() float64 {
	if validate {
		checkKind("Double", v, Double)
	}
	return v.d
}

// Text returns the text form of v. For numeric values without a cached text,
// the canonical rendering is computed and cached.
func (v *Value) Text() string {
	if !v.hasText {
		switch v.kind {
		case Int:
			v.text = formatInt(v.i)
		case Double:
			v.text = formatDouble(v.d)
		}
		v.hasText = true
	}
	return v.text
}

// Bool converts v to a boolean. Numbers are true iff nonzero; strings must be
// boolean literals as accepted by tclbool.Parse.
func (v *Value) Bool() (bool, error) {
	switch v.kind {
	case Int:
		return v.i != 0, nil
	case Double:
		return v.d != 0, nil
	default:
		return tclbool.Parse(v.text)
	}
}

// AssignFrom overwrites every field of v with the fields of other, whatever
// their kind.
func (v *Value) AssignFrom(other *Value) {
	// A kind-dependent copy needs a branch; copying everything is faster in
	// the evaluator loop.
	*v = *other
}

// ClearCache drops the cached text of a numeric value. The text of a String
// value is never dropped.
func (v *Value) ClearCache() {
	if v.kind == String {
		if validate {
			fault("ClearCache", "called on string value")
		}
		return
	}
	v.text, v.hasText = "", false
}

// DemoteToString turns a numeric value into a String holding its text form.
// It fails with an *InvalidStateError if v is already a String.
func (v *Value) DemoteToString() error {
	if v.kind == String {
		return &InvalidStateError{Op: "DemoteToString", Msg: "called on string value"}
	}
	v.Text()
	v.kind = String
	return nil
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
