package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideal-lab5/timelock/pkg/timelock"
)

var (
	decryptSignature string
	decryptIn        string
	decryptOut       string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a ciphertext with a published beacon signature",
	RunE: func(cmd *cobra.Command, args []string) error {
		if decryptSignature == "" {
			return fmt.Errorf("--signature flag is required")
		}
		sig, err := timelock.ParseSignature(decryptSignature)
		if err != nil {
			return err
		}

		ciphertext, err := readInput(decryptIn)
		if err != nil {
			return fmt.Errorf("failed to read ciphertext: %w", err)
		}

		plaintext, err := timelock.Decrypt(ciphertext, sig)
		if err != nil {
			return err
		}
		return writeOutput(decryptOut, plaintext)
	},
}

func init() {
	decryptCmd.Flags().StringVar(&decryptSignature, "signature", "", "hex-encoded beacon signature for the round (compressed G1)")
	decryptCmd.Flags().StringVar(&decryptIn, "in", "", "ciphertext file (default stdin)")
	decryptCmd.Flags().StringVar(&decryptOut, "out", "", "plaintext file (default stdout)")
	rootCmd.AddCommand(decryptCmd)
}
