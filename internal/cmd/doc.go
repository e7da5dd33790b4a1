// Package cmd provides helpers for executing external commands.
//
// Two flavours exist:
//
//   - [RunContext] and [OutputContext] capture stderr and fold it into the
//     returned error. They are used for short read-only lookups such as
//     "npm show <pkg> version" in the doctor checks.
//
//   - [Interactive] attaches the caller's terminal streams to the child so
//     its output streams live. It is used to run package-manager scripts.
//
// Every helper takes a [context.Context]. When the context is cancelled
// while an interactive child runs, the child receives an interrupt signal
// and is killed if it has not exited after [InterruptGrace].
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, "", "npm", "show", "rpc", "version")
//
//	err := cmd.Interactive(ctx, dir, cmd.StdStreams(), "npm", "run", "build")
//	var exitErr *exec.ExitError
//	if errors.As(err, &exitErr) {
//	    // the script ran and failed
//	}
package cmd
