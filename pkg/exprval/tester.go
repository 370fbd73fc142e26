package exprval

import (
	"errors"
	"testing"
)

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v *Value
}

// TestValue returns a Tester for v. Methods that need the text form may
// populate v's cache.
func TestValue(t *testing.T, v *Value) Tester {
	return Tester{t, v}
}

// Kind tests the Kind of the value.
func (vt Tester) Kind(wantKind Kind) Tester {
	vt.t.Helper()
	if kind := vt.v.Kind(); kind != wantKind {
		vt.t.Errorf("Kind() = %s, want %s", kind, wantKind)
	}
	return vt
}

// Int tests that the value is an Int with the given payload.
func (vt Tester) Int(want int64) Tester {
	vt.t.Helper()
	if !vt.v.IsInt() {
		vt.t.Errorf("got %#v, want int %d", vt.v, want)
	} else if i := vt.v.Int(); i != want {
		vt.t.Errorf("Int() = %d, want %d", i, want)
	}
	return vt
}

// Double tests that the value is a Double with the given payload.
func (vt Tester) Double(want float64) Tester {
	vt.t.Helper()
	if !vt.v.IsDouble() {
		vt.t.Errorf("got %#v, want double %v", vt.v, want)
	} else if d := vt.v.Double(); d != want {
		vt.t.Errorf("Double() = %v, want %v", d, want)
	}
	return vt
}

// Cached tests whether the value holds a text form.
func (vt Tester) Cached(want bool) Tester {
	vt.t.Helper()
	if has := vt.v.HasCachedText(); has != want {
		vt.t.Errorf("HasCachedText() = %v, want %v", has, want)
	}
	return vt
}

// Text tests the Text of the value.
func (vt Tester) Text(want string) Tester {
	vt.t.Helper()
	if text := vt.v.Text(); text != want {
		vt.t.Errorf("Text() = %q, want %q", text, want)
	}
	return vt
}

// Bool tests the Bool of the value.
func (vt Tester) Bool(want bool) Tester {
	vt.t.Helper()
	b, err := vt.v.Bool()
	if err != nil {
		vt.t.Errorf("Bool() -> error %v, want %v", err, want)
	} else if b != want {
		vt.t.Errorf("Bool() = %v, want %v", b, want)
	}
	return vt
}

// BoolError tests that Bool fails with an error matching target.
func (vt Tester) BoolError(target error) Tester {
	vt.t.Helper()
	_, err := vt.v.Bool()
	if !errors.Is(err, target) {
		vt.t.Errorf("Bool() -> error %v, want %v", err, target)
	}
	return vt
}

// Describe tests the Describe of the value.
func (vt Tester) Describe(want string) Tester {
	vt.t.Helper()
	if desc := vt.v.Describe(); desc != want {
		vt.t.Errorf("Describe() = %s, want %s", desc, want)
	}
	return vt
}
