package cmd

import (
	"context"
	"fmt"

	"github.com/flanksource/clicky"
	"github.com/mtgdex/mtgdex/pkg/api"
	"github.com/mtgdex/mtgdex/pkg/card"
	"github.com/mtgdex/mtgdex/pkg/search"
	"github.com/spf13/cobra"
)

var (
	searchExact    bool
	searchSet      string
	searchRarity   string
	searchColors   []string
	searchType     string
	searchPage     uint64
	searchFilter   string
	searchTemplate string
	searchFrame    bool
)

// maxSuggestions caps the "did you mean" list on empty name searches.
const maxSuggestions = 3

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Search cards by name and filters",
	Long: `Search the card catalog. Name matches are partial unless --exact is
given; additional filters narrow the result server-side, and --filter
applies a CEL expression on top.

Examples:
  mtgdex search "Narset"
  mtgdex search "Narset, Enlightened Master" --exact
  mtgdex search --set KTK --rarity Mythic
  mtgdex search Dragon --filter 'cmc >= 6.0' --frame
  mtgdex search Bolt --template '{{.name}}: {{.text}}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchExact, "exact", false, "Match the card name exactly")
	searchCmd.Flags().StringVar(&searchSet, "set", "", "Filter by set code (e.g. KTK)")
	searchCmd.Flags().StringVar(&searchRarity, "rarity", "", "Filter by rarity (Common, Uncommon, Rare, Mythic)")
	searchCmd.Flags().StringSliceVar(&searchColors, "colors", nil, "Filter by colors (e.g. Blue,Red)")
	searchCmd.Flags().StringVar(&searchType, "type", "", "Filter by type line substring")
	searchCmd.Flags().Uint64Var(&searchPage, "page", 0, "Result page to fetch")
	searchCmd.Flags().StringVar(&searchFilter, "filter", "", "CEL expression or named filter (creatures, lands, mythics, multicolor, free)")
	searchCmd.Flags().StringVar(&searchTemplate, "template", "", "Render each card through a Go template")
	searchCmd.Flags().BoolVar(&searchFrame, "frame", false, "Render each card as a framed text card")
}

func runSearch(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" && searchSet == "" && searchRarity == "" && len(searchColors) == 0 && searchType == "" {
		return fmt.Errorf("a card name or at least one filter is required")
	}

	ctx := context.Background()
	client := newClient()

	q := api.SearchQuery{
		Name:      name,
		ExactName: searchExact,
		Set:       searchSet,
		Rarity:    searchRarity,
		Colors:    searchColors,
		Type:      searchType,
		Page:      searchPage,
	}

	cards, info, err := client.SearchCards(ctx, q)
	if err != nil {
		return err
	}

	if len(cards) == 0 && name != "" {
		return noSuchCard(ctx, client, name, searchExact)
	}

	if searchFilter != "" {
		expr := searchFilter
		if named, ok := card.CommonFilters[expr]; ok {
			expr = named
		}
		if cards, err = card.Filter(cards, expr); err != nil {
			return err
		}
		if len(cards) == 0 {
			return fmt.Errorf("no cards match filter %q", searchFilter)
		}
	}

	if err := printCards(cmd, cards); err != nil {
		return err
	}
	printPageFooter(cmd, info, len(cards))
	return nil
}

// noSuchCard builds an ErrNoSuchCardName, enriched with close names
// from a partial search when the miss came from an exact lookup.
func noSuchCard(ctx context.Context, client *api.Client, name string, wasExact bool) error {
	notFound := &api.ErrNoSuchCardName{Name: name}
	if !wasExact {
		return notFound
	}

	near, _, err := client.SearchCards(ctx, api.SearchQuery{Name: name})
	if err != nil {
		return notFound
	}
	notFound.Suggestions = search.Suggestions(name, card.Names(near), maxSuggestions)
	return notFound
}

func printCards(cmd *cobra.Command, cards []card.Card) error {
	switch {
	case searchTemplate != "":
		for _, c := range cards {
			out, err := card.RenderTemplate(c, searchTemplate)
			if err != nil {
				return err
			}
			cmd.Println(out)
		}
	case searchFrame:
		for _, c := range cards {
			cmd.Print(card.Frame(c, card.WithStyling(!cfg.NoColor)))
		}
	default:
		result, err := clicky.Format(card.NewTable(cards))
		if err != nil {
			return err
		}
		cmd.Println(result)
	}
	return nil
}

func printPageFooter(cmd *cobra.Command, info *api.PageInfo, shown int) {
	if info == nil || info.TotalCount <= shown {
		return
	}
	page := uint64(1)
	if searchPage > 0 {
		page = searchPage
	}
	cmd.Printf("Page %d/%d, %d cards total (ratelimit %d/%d remaining)\n",
		page, info.TotalPages(), info.TotalCount, info.RatelimitRemaining, info.RatelimitLimit)
}
