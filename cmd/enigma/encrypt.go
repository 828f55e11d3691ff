package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kbukum/enigmakit/config"
	"github.com/kbukum/enigmakit/enigma"
	"github.com/kbukum/enigmakit/logger"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt text with a configured machine",
	Long: `Encrypt text using a machine built from the configured settings.

Input is uppercased and whitespace gaps are removed before processing;
every remaining character must be a letter A-Z.

INPUT METHODS:
  enigma encrypt --text "HELLO WORLD"       # Direct text
  enigma encrypt --file input.txt           # From file
  echo "HELLO" | enigma encrypt             # From stdin

SETTINGS:
  enigma encrypt -t HELLO -o NFC -r GYZ -n DFR
  ENIGMA_OFFSETS=NFC ENIGMA_RINGS=GYZ ENIGMA_NOTCHES=DFR enigma encrypt -t HELLO`,
	RunE: runTransform("encrypt"),
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt text with a configured machine",
	Long: `Decrypt text using a machine built from the configured settings.

Decryption is the same transform as encryption: a freshly constructed
machine with the settings used to encrypt reverses the message.`,
	RunE: runTransform("decrypt"),
}

func init() {
	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		cmd.Flags().StringP("offsets", "o", "", "Initial rotor offsets (3 letters, rightmost rotor first)")
		cmd.Flags().StringP("rings", "r", "", "Ring settings (3 letters, rightmost rotor first)")
		cmd.Flags().StringP("notches", "n", "", "Notch positions (3 letters, rightmost rotor first)")
		cmd.Flags().StringP("text", "t", "", "Text to process")
		cmd.Flags().StringP("file", "f", "", "File to process")
		cmd.Flags().String("output", "", "Output file (default: stdout)")
	}
}

// runTransform builds the shared encrypt/decrypt runner. Both commands
// perform the same symmetric transform on a fresh machine.
func runTransform(operation string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		logger.Init(cfg.Logging)
		log := logger.WithComponent("cli").WithFields(logger.Fields(
			logger.FieldSessionID, uuid.NewString(),
			logger.FieldOperation, operation,
		))

		text, err := inputText(cmd)
		if err != nil {
			log.Error("failed to read input", logger.ErrorFields(operation, err))
			return err
		}
		if text == "" {
			err := fmt.Errorf("no input text provided; use --text, --file, or pipe to stdin")
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		machine, err := enigma.New(cfg.Offsets, cfg.Rings, cfg.Notches)
		if err != nil {
			log.Error("failed to construct machine", logger.ErrorFields(operation, err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		start := time.Now()
		result, err := machine.Encode(text)
		if err != nil {
			log.Error("transform failed", logger.ErrorFields(operation, err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		log.Debug("transform complete", logger.Fields(
			logger.FieldChars, len(result),
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))

		return writeOutput(cmd, result)
	}
}

// resolveConfig loads configuration and merges flag overrides on top:
// flags beat environment variables, which beat config file values.
func resolveConfig(cmd *cobra.Command) (*config.MachineConfig, error) {
	cfgFile, _ := cmd.Flags().GetString("config")

	var opts []config.LoaderOption
	if cfgFile != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	cfg, err := config.Load("enigma", opts...)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("offsets"); v != "" {
		cfg.Offsets = v
	}
	if v, _ := cmd.Flags().GetString("rings"); v != "" {
		cfg.Rings = v
	}
	if v, _ := cmd.Flags().GetString("notches"); v != "" {
		cfg.Notches = v
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// inputText resolves the message from --text, --file, or stdin.
func inputText(cmd *cobra.Command) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", nil
}

// writeOutput sends the result to --output or stdout.
func writeOutput(cmd *cobra.Command, result string) error {
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(result+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
