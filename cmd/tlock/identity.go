package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ideal-lab5/timelock/pkg/timelock"
)

var identityCmd = &cobra.Command{
	Use:   "identity <round>",
	Short: "Print the hex identity for a drand round",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		round, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid round number %q: %w", args[0], err)
		}
		id := timelock.RoundIdentity(round)
		fmt.Fprintf(cmd.OutOrStdout(), "%x\n", id[:])
		return nil
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <message-length>",
	Short: "Print the ciphertext size bound for a message length",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid message length %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", timelock.EstimateCiphertextSize(n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(estimateCmd)
}
