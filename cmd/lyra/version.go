package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyra/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lyra version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lyra %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built %s\n", version.BuildDate)
		}
	},
}
