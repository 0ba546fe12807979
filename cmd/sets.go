package cmd

import (
	"context"

	"github.com/flanksource/clicky"
	"github.com/mtgdex/mtgdex/pkg/card"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets [name]",
	Short: "List Magic expansions",
	Long: `List all sets, optionally filtered by a partial set name.

Examples:
  mtgdex sets
  mtgdex sets Khans`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSets,
}

func init() {
	rootCmd.AddCommand(setsCmd)
}

func runSets(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}

	sets, err := newClient().Sets(context.Background(), name)
	if err != nil {
		return err
	}

	result, err := clicky.Format(card.NewSetTable(sets))
	if err != nil {
		return err
	}
	cmd.Println(result)
	return nil
}
