package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mtgdex/mtgdex/pkg/card"
	"github.com/spf13/cobra"
)

var cardTemplate string

var cardCmd = &cobra.Command{
	Use:   "card <multiverse-id>",
	Short: "Show a single card by its multiverse ID",
	Long: `Fetch one card by its Gatherer multiverse ID and print it as a
framed text card.

Examples:
  mtgdex card 386616
  mtgdex card 386616 --template '{{.name}} costs {{.manaCost}}'`,
	Args: cobra.ExactArgs(1),
	RunE: runCard,
}

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.Flags().StringVar(&cardTemplate, "template", "", "Render the card through a Go template instead of the frame")
}

func runCard(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid multiverse id %q: %w", args[0], err)
	}

	c, err := newClient().CardByID(context.Background(), id)
	if err != nil {
		return err
	}

	if cardTemplate != "" {
		out, err := card.RenderTemplate(*c, cardTemplate)
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	}

	cmd.Print(card.Frame(*c, card.WithStyling(!cfg.NoColor)))
	return nil
}
