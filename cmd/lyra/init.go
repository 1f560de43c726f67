package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyra/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter lyra.toml in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := project.WriteDefault(".")
		if err != nil {
			return err
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		}
		return nil
	},
}
