package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/rpc/internal/output"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the rpc version",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FromContext(cmd.Context()).Println(versionString())
			return nil
		},
	}
}
