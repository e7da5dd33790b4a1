// Package selector lets the user pick a script when none was named.
package selector

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/rpc/internal/log"
	"github.com/raphi011/rpc/internal/manifest"
	"github.com/raphi011/rpc/internal/ui/prompt"
	"github.com/raphi011/rpc/internal/ui/static"
)

// Title is shown above the selection list.
const Title = "Select a script to run"

// ErrNotInteractive is returned when a choice is needed but stdin is not a
// terminal.
var ErrNotInteractive = errors.New("no script given and stdin is not a terminal")

// PromptFunc shows options and returns the chosen index.
type PromptFunc func(ctx context.Context, title string, options []prompt.Option) (int, error)

// Options configures Select. Zero values use the terminal.
type Options struct {
	// AutoSelectSingle picks the only script without prompting.
	AutoSelectSingle bool

	// IsTerminal reports whether a prompt can be shown. Defaults to
	// checking stdin.
	IsTerminal func() bool

	// Prompt defaults to prompt.Select.
	Prompt PromptFunc
}

func (o Options) withDefaults() Options {
	if o.IsTerminal == nil {
		o.IsTerminal = StdinIsTerminal
	}
	if o.Prompt == nil {
		o.Prompt = prompt.Select
	}
	return o
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Select lists the scripts and asks the user to choose one.
// Prompt errors (prompt.ErrCancelled, prompt.ErrInterrupted) are returned
// unchanged for the caller to map.
func Select(ctx context.Context, scripts manifest.Scripts, opts Options) (manifest.Script, error) {
	opts = opts.withDefaults()
	l := log.FromContext(ctx)
	all := scripts.All()

	if len(all) == 0 {
		return manifest.Script{}, fmt.Errorf("nothing to select: %w", manifest.ErrInvalid)
	}
	if len(all) == 1 && opts.AutoSelectSingle {
		l.Debug("auto-selected only script", "script", all[0].Name)
		return all[0], nil
	}

	l.Printf("%s", static.RenderScripts(all))

	if !opts.IsTerminal() {
		return manifest.Script{}, ErrNotInteractive
	}

	options := make([]prompt.Option, len(all))
	for i, s := range all {
		options[i] = prompt.Option{Label: s.Name, Description: "→ " + s.Command}
	}

	idx, err := opts.Prompt(ctx, Title, options)
	if err != nil {
		return manifest.Script{}, err
	}
	if idx < 0 || idx >= len(all) {
		return manifest.Script{}, prompt.ErrCancelled
	}
	return all[idx], nil
}
