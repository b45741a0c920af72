// Package main is the entry point for the sword-goal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sword-goal/internal/config"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	envFile     string
	translation string
	book        int
}

func rootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "sword-goal",
		Short:         "Set a daily Bible reading goal",
		Long:          `sword-goal edits a reading goal: a verse range within one book, a number of pages, or a daily reading time.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return runForm(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "path to a .env file")
	cmd.Flags().StringVar(&flags.translation, "translation", "", "translation short name (overrides SWORD_GOAL_TRANSLATION)")
	cmd.Flags().IntVar(&flags.book, "book", 0, "book number (overrides SWORD_GOAL_BOOK)")

	cmd.AddCommand(downloadCmd(&flags))
	cmd.AddCommand(keysCmd())

	return cmd
}

func loadConfig(flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if flags.translation != "" {
		cfg.Translation = flags.translation
	}
	if flags.book > 0 {
		cfg.Book = flags.book
	}
	return cfg, nil
}
