package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/rpc/internal/config"
	"github.com/raphi011/rpc/internal/log"
	"github.com/raphi011/rpc/internal/output"
	"github.com/raphi011/rpc/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// Execute runs the root command and exits with the mapped exit code.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes rpc with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, stdout)
	// Replaced once flags are parsed
	ctx = log.WithLogger(ctx, log.New(stderr, false, false))

	err := root.ExecuteContext(ctx)
	return handleError(stderr, err)
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		dir     string
	)

	root := &cobra.Command{
		Use:   "rpc [script]",
		Short: "Run scripts from package.json",
		Long: `rpc runs the scripts defined in the package.json of the current directory.

Without arguments it lists the available scripts and lets you pick one.
With a script name it runs that script through npm, yarn or pnpm,
depending on which lock file is present.

Built-in commands (doctor, run, help, version, config, completion) take
precedence over scripts of the same name. Use "rpc run <name>" to be asked
which one you mean, or "rpc run -s <name>" to run the script.`,
		Example: `  rpc                # Pick a script interactively
  rpc build          # Run the build script
  rpc run doctor     # Run a script that shadows a built-in command
  rpc doctor         # Check the rpc installation`,
		Args:                       cobra.ArbitraryArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		ValidArgsFunction:          completeScripts,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate mutually exclusive flags
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			ctx := cmd.Context()

			// Create logger (stderr for diagnostics)
			logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
			ctx = log.WithLogger(ctx, logger)

			// Load config; an invalid file falls back to defaults
			cfg, err := config.Load()
			if err != nil {
				logger.Printf("Warning: %v\n", err)
			}
			ctx = config.WithConfig(ctx, &cfg)
			styles.Init(cfg.Theme)

			workDir, err := resolveWorkDir(dir)
			if err != nil {
				return err
			}
			ctx = config.WithWorkDir(ctx, workDir)

			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected a single script name, got %d arguments", len(args))
			}
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return runEntry(cmd, name, false)
		},
	}

	// Global flags
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	root.PersistentFlags().StringVarP(&dir, "dir", "C", "", "Run as if rpc was started in `dir`")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")
	_ = root.MarkPersistentFlagDirname("dir")

	// Version flag
	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	root.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)
	root.SetHelpCommandGroupID(GroupCore)

	// Core commands
	root.AddCommand(newRunCmd())
	root.AddCommand(newDoctorCmd())

	// Config commands
	root.AddCommand(newConfigCmd())
	root.AddCommand(newCompletionCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// resolveWorkDir returns the absolute directory scripts are run in.
func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve --dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("resolve --dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("--dir %s is not a directory", abs)
	}
	return abs, nil
}
