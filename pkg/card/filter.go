package card

import (
	"fmt"
	"strings"

	"github.com/flanksource/gomplate/v3"
)

// Filter applies a CEL expression to each card and keeps the ones it
// matches. The expression is evaluated with the card's fields in scope:
//
//   - name, manaCost, type, rarity, set, setName, number, artist,
//     text, flavor (string)
//   - cmc (double), id (int)
//   - colors (comma-joined string)
//
// Examples:
//
//	cmc >= 4.0 && rarity == "Mythic"
//	type.contains("Creature") && colors.contains("Blue")
func Filter(cards []Card, expr string) ([]Card, error) {
	if expr == "" {
		return cards, nil
	}

	var matched []Card
	for _, c := range cards {
		evaluated, err := gomplate.RunTemplate(c.Context(), gomplate.Template{
			Expression: expr,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate filter for card %q: %w", c.Name, err)
		}

		switch strings.TrimSpace(evaluated) {
		case "true":
			matched = append(matched, c)
		case "false", "":
			continue
		default:
			return nil, fmt.Errorf("filter %q must evaluate to a boolean, got %q", expr, evaluated)
		}
	}

	return matched, nil
}

// Common filter expressions for convenience.
var CommonFilters = map[string]string{
	"creatures":  `type.contains("Creature")`,
	"lands":      `type.contains("Land")`,
	"mythics":    `rarity == "Mythic"`,
	"multicolor": `colors.contains(",")`,
	"free":       `cmc == 0.0`,
}
