//go:build unix

package sys

import (
	"testing"

	"github.com/creack/pty"
)

func TestIsATTY_Pty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	if !IsATTY(tty.Fd()) {
		t.Errorf("IsATTY(tty) = false, want true")
	}
}
