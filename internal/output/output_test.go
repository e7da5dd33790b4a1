package output

import (
	"bytes"
	"context"
	"os"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := FromContext(WithPrinter(context.Background(), &buf))
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Println("build:", "tsc")
	p.Printf("%s: %s\n", "test", "jest")
	want := "build: tsc\ntest: jest\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_StripsStylesForNonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("failed")
	p.Print(styled)
	if got := buf.String(); got != "failed" {
		t.Errorf("Print() wrote %q, want plain %q", got, "failed")
	}
}
