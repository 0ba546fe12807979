package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/flanksource/clicky"
	"github.com/flanksource/commons/logger"
	"github.com/mtgdex/mtgdex/pkg/api"
	"github.com/mtgdex/mtgdex/pkg/config"
	"github.com/mtgdex/mtgdex/pkg/httpclient"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	configFile string
	pageSize   int
	timeout    time.Duration
	noCache    bool
	noColor    bool
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mtgdex",
	Short: "Look up Magic: The Gathering cards from the command line",
	Long: `mtgdex queries the Magic: The Gathering API (docs.magicthegathering.io).
It can fetch single cards by multiverse ID, search by name and filters,
browse the full catalog page by page, and list expansions.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Apply clicky flags after command line parsing
		clicky.Flags.UseFlags()

		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		// CLI flags win over the config file
		if cmd.Flags().Changed("api-url") {
			cfg.BaseURL = apiURL
		}
		if cmd.Flags().Changed("page-size") {
			cfg.PageSize = pageSize
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = timeout.String()
		}
		if cmd.Flags().Changed("no-color") {
			cfg.NoColor = noColor
		}
		if noCache {
			cfg.Cache.Dir = ""
		}

		logger.V(3).Infof("Using API %s (page size %d, cache %q)", cfg.BaseURL, cfg.PageSize, cfg.Cache.Dir)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// newClient builds an API client from the effective configuration.
func newClient() *api.Client {
	opts := []api.Option{
		api.WithBaseURL(cfg.BaseURL),
		api.WithHTTPClient(httpclient.New(httpclient.WithTimeout(cfg.TimeoutDuration()))),
		api.WithPageSize(cfg.PageSize),
	}
	if cfg.Cache.Dir != "" {
		opts = append(opts, api.WithCache(cfg.Cache.Dir, cfg.CacheTTL()))
	}
	return api.NewClient(opts...)
}

func init() {
	clicky.BindAllFlags(rootCmd.PersistentFlags(), "tasks", "!format")

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", config.DefaultBaseURL, "MTG API base URL")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to .mtgdex.yaml config file")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", config.DefaultPageSize, "Cards per page for list requests")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", config.DefaultTimeout, "Per-request timeout")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the response cache")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable terminal styling")
}
