package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

var (
	// ErrCancelled is returned when the user dismisses a prompt with esc or q.
	ErrCancelled = errors.New("prompt cancelled")

	// ErrInterrupted is returned when the user presses ctrl+c or the
	// context is cancelled while a prompt is open.
	ErrInterrupted = errors.New("prompt interrupted")
)

// outcome is the terminal state shared by all prompt models.
type outcome int

const (
	pending outcome = iota
	accepted
	cancelled
	interrupted
)

func (o outcome) err() error {
	switch o {
	case cancelled:
		return ErrCancelled
	case interrupted:
		return ErrInterrupted
	}
	return nil
}

// run executes a prompt model on stderr and returns the final model.
func run(ctx context.Context, model tea.Model) (tea.Model, error) {
	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	final, err := p.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	}
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}
