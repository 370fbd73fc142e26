package tclbool

import (
	"errors"
	"testing"

	"src.exprval.dev/pkg/tt"
)

var (
	Args = tt.Args
	It   = tt.It
)

func notABoolean(s string) error { return &NotABooleanError{s} }

func TestParse(t *testing.T) {
	tt.Test(t, Parse,
		It("accepts full words").Args("true").Rets(true, nil),
		Args("false").Rets(false, nil),
		Args("yes").Rets(true, nil),
		Args("no").Rets(false, nil),
		Args("on").Rets(true, nil),
		Args("off").Rets(false, nil),

		It("is case-insensitive").Args("TRUE").Rets(true, nil),
		Args("No").Rets(false, nil),
		Args("oFF").Rets(false, nil),

		It("accepts unambiguous prefixes").Args("t").Rets(true, nil),
		Args("tr").Rets(true, nil),
		Args("f").Rets(false, nil),
		Args("fal").Rets(false, nil),
		Args("y").Rets(true, nil),
		Args("n").Rets(false, nil),
		Args("of").Rets(false, nil),

		It("rejects the ambiguous prefix o").Args("o").Rets(false, notABoolean("o")),
		It("rejects words with extra letters").Args("truee").Rets(false, notABoolean("truee")),
		Args("yess").Rets(false, notABoolean("yess")),

		It("accepts numbers").Args("1").Rets(true, nil),
		Args("0").Rets(false, nil),
		Args("-3").Rets(true, nil),
		Args("0x10").Rets(true, nil),
		Args("0.0").Rets(false, nil),
		Args("2.5").Rets(true, nil),
		Args("1e-300").Rets(true, nil),
		Args(" 1 ").Rets(true, nil),
		Args("99999999999999999999").Rets(true, nil),

		It("rejects NaN").Args("NaN").Rets(false, notABoolean("NaN")),
		It("rejects malformed octal").Args("08").Rets(false, notABoolean("08")),
		Args("-019").Rets(false, notABoolean("-019")),
		It("rejects underscores").Args("1_0").Rets(false, notABoolean("1_0")),
		It("rejects other text").Args("maybe").Rets(false, notABoolean("maybe")),
		Args("").Rets(false, notABoolean("")),
		Args(" yes").Rets(false, notABoolean(" yes")),
	)
}

func TestNotABooleanError(t *testing.T) {
	_, err := Parse("maybe")
	if !errors.Is(err, ErrNotABoolean) {
		t.Errorf("errors.Is(%v, ErrNotABoolean) = false, want true", err)
	}
	if msg, want := err.Error(), `expected boolean value but got "maybe"`; msg != want {
		t.Errorf("got message %q, want %q", msg, want)
	}
}
