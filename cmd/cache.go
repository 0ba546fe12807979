package cmd

import (
	"github.com/mtgdex/mtgdex/pkg/cache"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the response cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached API responses",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Cache.Dir == "" {
			cmd.Println("Caching is disabled")
			return nil
		}
		if err := cache.Clear(cfg.Cache.Dir); err != nil {
			return err
		}
		cmd.Printf("Cleared cache at %s\n", cfg.Cache.Dir)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
