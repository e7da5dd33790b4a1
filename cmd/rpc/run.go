package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/rpc/internal/config"
	"github.com/raphi011/rpc/internal/conflict"
	"github.com/raphi011/rpc/internal/log"
	"github.com/raphi011/rpc/internal/manifest"
	"github.com/raphi011/rpc/internal/output"
	"github.com/raphi011/rpc/internal/runner"
	"github.com/raphi011/rpc/internal/selector"
	"github.com/raphi011/rpc/internal/ui/prompt"
	"github.com/raphi011/rpc/internal/ui/static"
	"github.com/raphi011/rpc/internal/ui/styles"
)

// runEntry loads the manifest and runs name, or asks for a script when
// name is empty.
func runEntry(cmd *cobra.Command, name string, forceScript bool) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	dir := config.WorkDirFromContext(ctx)

	m, err := manifest.Load(dir)
	if err != nil {
		printManifestHint(l, err)
		return err
	}
	l.Debug("loaded manifest", "path", m.Path, "scripts", m.Scripts.Len())

	if name == "" {
		return selectAndRun(ctx, dir, m)
	}

	choice := conflict.ChoiceScript
	if forceScript {
		if !m.Scripts.Has(name) {
			err = &conflict.NotFoundError{Name: name, Suggestions: conflict.Suggest(name, m.Scripts)}
		}
	} else {
		choice, err = conflict.Resolve(ctx, name, m.Scripts, chooseMeaning)
	}
	if err != nil {
		var notFound *conflict.NotFoundError
		if errors.As(err, &notFound) {
			printNotFound(l, cmd.Root(), notFound, m.Scripts)
		}
		return err
	}

	if choice == conflict.ChoiceCommand {
		return runBuiltin(cmd, name, dir, m)
	}

	command, _ := m.Scripts.Get(name)
	return runner.New(dir).Run(ctx, name, command)
}

// selectAndRun lets the user pick a script and runs it.
func selectAndRun(ctx context.Context, dir string, m *manifest.Manifest) error {
	var opts selector.Options
	if cfg := config.FromContext(ctx); cfg != nil {
		opts.AutoSelectSingle = cfg.AutoSelectSingle
	}

	s, err := selector.Select(ctx, m.Scripts, opts)
	if err != nil {
		return err
	}
	return runner.New(dir).Run(ctx, s.Name, s.Command)
}

// runBuiltin dispatches a reserved name the user chose to run as a command.
func runBuiltin(cmd *cobra.Command, name, dir string, m *manifest.Manifest) error {
	ctx := cmd.Context()
	log.FromContext(ctx).Printf("Running '%s' as an rpc command...\n", name)

	switch name {
	case "doctor":
		return runDoctor(ctx, false)
	case "help":
		return cmd.Root().Help()
	case "run":
		return selectAndRun(ctx, dir, m)
	case "version":
		output.FromContext(ctx).Println(versionString())
		return nil
	}

	// Commands that need further arguments show their help.
	if sub, _, err := cmd.Root().Find([]string{name}); err == nil && sub != cmd.Root() {
		return sub.Help()
	}
	return fmt.Errorf("no built-in command %q", name)
}

// chooseMeaning asks whether an ambiguous name is a script or a command.
func chooseMeaning(ctx context.Context, title string, options []string) (int, error) {
	if !selector.StdinIsTerminal() {
		return -1, fmt.Errorf("%s (use --script to run the script without asking): %w", title, selector.ErrNotInteractive)
	}
	return prompt.Select(ctx, title, prompt.Options(options...))
}

func printManifestHint(l *log.Logger, err error) {
	switch {
	case errors.Is(err, manifest.ErrNotFound):
		l.Printf("%s\n", styles.MutedStyle.Render("Run rpc inside a project directory or pass --dir."))
	case errors.Is(err, manifest.ErrInvalid):
		l.Printf("%s\n", styles.MutedStyle.Render(`Add scripts to package.json, e.g. "scripts": {"build": "tsc"}`))
	}
}

func printNotFound(l *log.Logger, root *cobra.Command, err *conflict.NotFoundError, scripts manifest.Scripts) {
	l.Printf("%s", static.RenderScripts(scripts.All()))

	suggestions := err.Suggestions
	for _, s := range root.SuggestionsFor(err.Name) {
		suggestions = append(suggestions, s+" (command)")
	}
	if len(suggestions) > 0 {
		l.Printf("\n%s %s\n", styles.WarningStyle.Render("Did you mean:"), strings.Join(suggestions, ", "))
	}
}
