package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/rpc/internal/config"
	"github.com/raphi011/rpc/internal/doctor"
	"github.com/raphi011/rpc/internal/log"
	"github.com/raphi011/rpc/internal/output"
	"github.com/raphi011/rpc/internal/ui/progress"
	"github.com/raphi011/rpc/internal/ui/styles"
)

// doctorRunner is swapped in tests.
var doctorRunner doctor.Runner = doctor.ExecRunner{}

func newDoctorCmd() *cobra.Command {
	var copyReport bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check the rpc installation",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Check the rpc installation.

Checks:
- rpc is installed globally with npm
- the installed version is the latest published one
- Node.js meets the minimum supported version

Lookups that fail (for example when offline) are reported as unknown.
The command always exits 0.`,
		Example: `  rpc doctor          # Run all checks
  rpc doctor --copy   # Also copy the report for an issue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context(), copyReport)
		},
	}

	cmd.Flags().BoolVar(&copyReport, "copy", false, "Copy the report to the clipboard")

	return cmd
}

func runDoctor(ctx context.Context, copyReport bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	cfg := config.FromContext(ctx)
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}

	opts := doctor.Options{
		PackageName:    cfg.PackageName,
		MinNodeVersion: cfg.MinNodeVersion,
		IssuesURL:      cfg.IssuesURL,
		LocalVersion:   version,
		Timeout:        cfg.Doctor.Timeout,
		Runner:         doctorRunner,
	}
	if exe, err := os.Executable(); err == nil {
		opts.Executable = exe
	}

	// Only animate when a human is watching stderr
	stop := func() {}
	if isatty.IsTerminal(os.Stderr.Fd()) && l.Writer() == os.Stderr && !l.IsVerbose() {
		sp := progress.New(os.Stderr, "Checking...")
		opts.OnCheck = sp.Update
		sp.Start()
		stop = sp.Stop
	}

	report := doctor.Run(ctx, opts)
	stop()
	if ctx.Err() != nil {
		return fmt.Errorf("doctor: %w", errInterrupted)
	}

	out.Print(report.Render())

	if copyReport {
		if err := clipboard.WriteAll(report.PlainText()); err != nil {
			l.Printf("%s\n", styles.WarningStyle.Render(fmt.Sprintf("Warning: could not copy report: %v", err)))
		} else {
			l.Printf("%s\n", styles.SuccessStyle.Render("Report copied to clipboard"))
		}
	}
	return nil
}
