package main

import (
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var forceScript bool

	cmd := &cobra.Command{
		Use:     "run [script]",
		Short:   "Run a script from package.json",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Run a script from the package.json in the current directory.

Without a script name, the available scripts are listed and you can pick
one interactively. The package manager is chosen from the lock file:
yarn.lock selects yarn, pnpm-lock.yaml selects pnpm, otherwise npm.

If the name is both a script and a built-in command (doctor, run, help,
version, config, completion) you are asked which one to run. --script
skips the question.`,
		Example: `  rpc run              # Pick a script interactively
  rpc run test         # Run the test script
  rpc run doctor -s    # Run the doctor script, not the built-in`,
		ValidArgsFunction: completeScripts,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return runEntry(cmd, name, forceScript)
		},
	}

	cmd.Flags().BoolVarP(&forceScript, "script", "s", false, "Always treat the name as a script")

	return cmd
}
