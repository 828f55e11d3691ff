package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "Three-rotor cipher machine",
	Long: `enigma simulates a historical electromechanical rotor cipher:
three rotors, a reflector, and a plugboard compose a symmetric,
stateful substitution cipher.

The machine is configured by three 3-letter setting strings (initial
rotor offsets, ring settings, notch positions), resolved from flags,
ENIGMA_ environment variables, or a config.yml file, in that order.

Encryption and decryption are the same transform: decrypting requires
a fresh machine built from the settings used to encrypt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.yml (default: searched in standard locations)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(versionCmd)
}
