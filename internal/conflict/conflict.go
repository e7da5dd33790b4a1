// Package conflict decides whether a requested name means a project script
// or one of rpc's built-in commands.
//
// A name that is both a script and a reserved command is ambiguous, and the
// user is asked once which one they meant. Every other case is resolved
// without prompting.
package conflict

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/rpc/internal/manifest"
)

// Choice is the resolved meaning of a requested name.
type Choice int

const (
	// ChoiceScript runs the project script.
	ChoiceScript Choice = iota + 1
	// ChoiceCommand runs the built-in rpc command.
	ChoiceCommand
)

func (c Choice) String() string {
	switch c {
	case ChoiceScript:
		return "script"
	case ChoiceCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Options shown when a name is ambiguous, in Choice order.
const (
	OptionScript  = "Run as a script (from package.json)"
	OptionCommand = "Run as an rpc command"
)

// ErrScriptNotFound is returned when a name is neither a script nor a
// built-in command.
var ErrScriptNotFound = errors.New("script not found")

// reserved holds the built-in command names and aliases that may shadow
// scripts. It must list every command the root command registers.
var reserved = []string{"doctor", "run", "help", "version", "config", "cfg", "completion"}

// Reserved returns the built-in command names that may collide with scripts.
func Reserved() []string {
	return slices.Clone(reserved)
}

// IsReserved reports whether name is a built-in command.
func IsReserved(name string) bool {
	return slices.Contains(reserved, name)
}

// ChooseFunc asks the user to pick one of options and returns its index.
type ChooseFunc func(ctx context.Context, prompt string, options []string) (int, error)

// NotFoundError reports an unknown script together with close matches.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("script %q not found in %s", e.Name, manifest.FileName)
}

func (e *NotFoundError) Unwrap() error {
	return ErrScriptNotFound
}

// Resolve determines what name refers to. choose is called exactly once
// when name is both a script and a reserved command, and never otherwise.
func Resolve(ctx context.Context, name string, scripts manifest.Scripts, choose ChooseFunc) (Choice, error) {
	isScript := scripts.Has(name)
	isCommand := IsReserved(name)

	switch {
	case isScript && isCommand:
		prompt := fmt.Sprintf("'%s' exists as both a script and an rpc command. Which would you like to run?", name)
		idx, err := choose(ctx, prompt, []string{OptionScript, OptionCommand})
		if err != nil {
			return 0, err
		}
		if idx == 1 {
			return ChoiceCommand, nil
		}
		return ChoiceScript, nil
	case isScript:
		return ChoiceScript, nil
	case isCommand:
		return ChoiceCommand, nil
	default:
		return 0, &NotFoundError{Name: name, Suggestions: Suggest(name, scripts)}
	}
}

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// Suggest returns up to three script names that fuzzy-match name, best first.
func Suggest(name string, scripts manifest.Scripts) []string {
	names := scripts.Names()
	matches := fuzzy.Find(name, names)

	var out []string
	for _, m := range matches {
		out = append(out, names[m.Index])
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
