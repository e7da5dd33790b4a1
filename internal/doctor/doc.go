// Package doctor reports on rpc's own installation.
//
// Three independent, read-only checks are run:
//
//   - Install: whether the package is installed globally with npm.
//   - Version: the running version against the latest published one.
//   - Runtime: the installed Node.js version against the configured minimum.
//
// Every check is best-effort. A lookup that fails or times out is reported
// with [StatusUnknown] (or as a warning for the install check) and never
// prevents the other checks from running. External lookups go through a
// [Runner] so tests can substitute canned output.
//
// # Usage
//
//	report := doctor.Run(ctx, doctor.Options{
//		PackageName:    cfg.PackageName,
//		MinNodeVersion: cfg.MinNodeVersion,
//		LocalVersion:   version,
//		Timeout:        cfg.Doctor.Timeout,
//	})
//	fmt.Print(report.Render())
package doctor
