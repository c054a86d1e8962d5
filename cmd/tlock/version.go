package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideal-lab5/timelock/pkg/timelock"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the tlock version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "tlock version %s\n", timelock.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
