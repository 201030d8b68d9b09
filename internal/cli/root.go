// Package cli provides the command-line interface for the Wordle solver.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Version information (set at build time).
var Version = "0.1.0"

// cfg is the configuration resolved by the root command's PersistentPreRunE.
var cfg *Config

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solver",
		Short: "Interactive Wordle solving assistant",
		Long: `solver narrows down the possible answers to a Wordle-style puzzle.

After each guess you make in the real game, feed the solver the result:
prefix every letter of your guess with a marker describing its tile,
green=*, yellow=?, gray=!. The solver eliminates every word that is no
longer possible and ranks the rest by how common their letters are among
the remaining candidates.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = loadConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if cfg.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringP("dictionary", "d", "", "Path to a dictionary file, one word per line (default: embedded list)")
	rootCmd.PersistentFlags().IntP("length", "n", defaultLength, "Number of letters in the word")
	rootCmd.PersistentFlags().Int("limit", defaultLimit, "Maximum entries shown per list")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewSolveCommand())
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadDictionary loads the configured word list, falling back to the
// embedded default when no path is configured.
func loadDictionary() ([]string, error) {
	if cfg.Dictionary != "" {
		return words.Load(cfg.Dictionary, cfg.Length)
	}
	return words.Default(cfg.Length)
}
