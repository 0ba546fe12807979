package cmd

import (
	"fmt"
	"time"

	"github.com/flanksource/clicky/task"
	flanksourceContext "github.com/flanksource/commons/context"
	"github.com/mtgdex/mtgdex/pkg/api"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show API reachability and rate-limit budget",
	Long:  `status issues a minimal request against the MTG API and reports latency and the remaining hourly rate-limit budget for this client.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command) error {
	// Rate-limit numbers must come from a live response
	cfg.Cache.Dir = ""
	client := newClient()

	var latency time.Duration

	check := task.StartTask("api-status", func(ctx flanksourceContext.Context, t *task.Task) (*api.PageInfo, error) {
		start := time.Now()
		info, err := client.Ratelimit(ctx)
		latency = time.Since(start)
		return info, err
	})

	// GetResult blocks until the task has run
	info, statusErr := check.GetResult()

	cmd.Printf("MTG API Status (%s)\n", cfg.BaseURL)
	cmd.Println("===================")

	if statusErr != nil {
		cmd.Printf("  Reachable: ❌ No\n")
		cmd.Printf("  Error: %v\n", statusErr)
		return fmt.Errorf("API is unreachable: %w", statusErr)
	}

	cmd.Printf("  Reachable: ✅ Yes (%s)\n", latency.Round(time.Millisecond))
	cmd.Printf("  Ratelimit: %d/%d remaining\n", info.RatelimitRemaining, info.RatelimitLimit)
	cmd.Printf("  Catalog: %d cards\n", info.TotalCount)

	if info.RatelimitRemaining < 100 {
		cmd.Printf("  ⚠️  Warning: low rate-limit budget remaining\n")
	}
	return nil
}
