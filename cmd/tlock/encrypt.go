package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideal-lab5/timelock/pkg/timelock"
)

var (
	encryptPublicKey string
	encryptRound     uint64
	encryptIn        string
	encryptOut       string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a message to a future drand round",
	Long: `Encrypt reads a message and seals it to the identity of the given
round under the beacon public key. The ciphertext is written as raw
bytes. The ephemeral session secret is generated internally and never
leaves the process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if encryptPublicKey == "" {
			return fmt.Errorf("--public-key flag is required")
		}
		pk, err := timelock.ParsePublicKey(encryptPublicKey)
		if err != nil {
			return err
		}

		message, err := readInput(encryptIn)
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		secret := make([]byte, timelock.SecretKeySize)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		defer timelock.ZeroizeBytes(secret)

		identity := timelock.RoundIdentity(encryptRound)
		ciphertext, err := timelock.Encrypt(pk, identity[:], secret, message)
		if err != nil {
			return err
		}
		return writeOutput(encryptOut, ciphertext)
	},
}

func init() {
	encryptCmd.Flags().StringVar(&encryptPublicKey, "public-key", "", "hex-encoded beacon public key (compressed G2)")
	encryptCmd.Flags().Uint64Var(&encryptRound, "round", 0, "drand round number to encrypt to")
	encryptCmd.Flags().StringVar(&encryptIn, "in", "", "message file (default stdin)")
	encryptCmd.Flags().StringVar(&encryptOut, "out", "", "ciphertext file (default stdout)")
	rootCmd.AddCommand(encryptCmd)
}
