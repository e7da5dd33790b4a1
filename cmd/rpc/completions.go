package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/rpc/internal/manifest"
)

// completeScripts completes script names from the package.json in the
// working directory (or --dir), with the script body as description.
func completeScripts(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	dir, _ := cmd.Flags().GetString("dir")
	dir, err := resolveWorkDir(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	m, err := manifest.Load(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, s := range m.Scripts.All() {
		if strings.HasPrefix(s.Name, toComplete) {
			matches = append(matches, s.Name+"\t"+s.Command)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
