package card

import (
	"fmt"

	"github.com/flanksource/gomplate/v3"
)

// RenderTemplate renders a Go template against a card's fields, one
// card per call. The same context keys as Filter are available, e.g.
//
//	{{.name}} ({{.manaCost}}) - {{.setName}}
func RenderTemplate(c Card, templateStr string) (string, error) {
	result, err := gomplate.RunTemplate(c.Context(), gomplate.Template{
		Template: templateStr,
	})
	if err != nil {
		return "", fmt.Errorf("template execution failed for card %q: %w", c.Name, err)
	}
	return result, nil
}
