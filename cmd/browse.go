package cmd

import (
	"context"

	"github.com/flanksource/clicky"
	"github.com/mtgdex/mtgdex/pkg/card"
	"github.com/spf13/cobra"
)

var browsePage uint64

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Page through the full card catalog",
	Long: `Browse all known cards one page at a time.

Examples:
  mtgdex browse
  mtgdex browse --page 42
  mtgdex browse --page 42 --page-size 25`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().Uint64Var(&browsePage, "page", 1, "Catalog page to fetch")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cards, info, err := newClient().CardsPage(context.Background(), browsePage)
	if err != nil {
		return err
	}

	result, err := clicky.Format(card.NewTable(cards))
	if err != nil {
		return err
	}
	cmd.Println(result)

	if info != nil {
		cmd.Printf("Page %d/%d, %d cards total (ratelimit %d/%d remaining)\n",
			browsePage, info.TotalPages(), info.TotalCount, info.RatelimitRemaining, info.RatelimitLimit)
	}
	return nil
}
