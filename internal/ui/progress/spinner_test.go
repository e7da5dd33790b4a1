package progress

import (
	"bytes"
	"strings"
	"testing"

	"charm.land/bubbles/v2/spinner"
)

func TestSpinnerModel_MessageUpdate(t *testing.T) {
	t.Parallel()

	ch := make(chan string, 1)
	m := spinnerModel{spinner: spinner.New(), message: "Checking installation status...", msgChan: ch}

	updated, cmd := m.Update(messageUpdate("Checking for updates..."))
	um := updated.(spinnerModel)
	if um.message != "Checking for updates..." {
		t.Errorf("message = %q", um.message)
	}
	if cmd == nil {
		t.Error("expected a command waiting for the next message")
	}
	if !strings.Contains(um.render(), "Checking for updates...") {
		t.Errorf("render() = %q", um.render())
	}
}

func TestSpinnerModel_EmptyMessage(t *testing.T) {
	t.Parallel()

	m := spinnerModel{spinner: spinner.New()}
	if got := m.render(); got != "" {
		t.Errorf("render() = %q, want empty", got)
	}
}

func TestSpinner_UpdateBeforeStart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(&buf, "first")
	s.Update("second")
	if s.lastMsg != "second" {
		t.Errorf("lastMsg = %q, want second", s.lastMsg)
	}

	// Stop without Start must not block or write
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("Stop without Start wrote %q", buf.String())
	}
}
