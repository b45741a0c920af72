package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sword-goal/internal/cache"
	"sword-goal/internal/versekey"
)

func downloadCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "download <translation>",
		Short: "Download a translation for offline use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}
			c, err := cache.NewCache(cfg.CacheDir)
			if err != nil {
				return err
			}
			if c.IsCached(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already cached\n", args[0])
				return nil
			}
			if err := c.DownloadTranslation(args[0]); err != nil {
				return fmt.Errorf("download %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s cached in %s\n", args[0], cfg.CacheDir)
			return nil
		},
	}
}

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <chapter:verse>...",
		Short: "Check verse keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bad int
			for _, a := range args {
				k, err := versekey.Decode(a)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid\n", a)
					bad++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tchapter %d verse %d\n", k, k.Chapter, k.Verse)
			}
			if bad > 0 {
				return fmt.Errorf("%d invalid verse key(s)", bad)
			}
			return nil
		},
	}
}
