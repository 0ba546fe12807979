package card

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// DefaultFrameWidth is the column width of a rendered card frame.
const DefaultFrameWidth = 50

var flavorStyle = lipgloss.NewStyle().Italic(true)

// FrameOption configures card frame rendering.
type FrameOption func(*frameConfig)

type frameConfig struct {
	width  int
	styled bool
}

// WithWidth overrides the frame column width.
func WithWidth(w int) FrameOption {
	return func(c *frameConfig) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithStyling toggles terminal styling (italic flavor text). Disable
// for plain-text output or when writing to a pipe.
func WithStyling(styled bool) FrameOption {
	return func(c *frameConfig) {
		c.styled = styled
	}
}

// Frame renders a card as a classic framed text card:
//
//	**************************************************
//	Narset, Enlightened Master             {3}{U}{R}{W}
//	--------------------------------------------------
//	Legendary Creature — Human Monk             Mythic
//	--------------------------------------------------
//	First strike, hexproof ...
//	                                    Khans of Tarkir
//	**************************************************
func Frame(c Card, opts ...FrameOption) string {
	cfg := &frameConfig{width: DefaultFrameWidth, styled: true}
	for _, opt := range opts {
		opt(cfg)
	}

	// Wrap before styling so ANSI escapes do not count toward the width.
	var wrapped strings.Builder
	wrap(&wrapped, c.Flavor, cfg.width)
	flavor := strings.TrimSuffix(wrapped.String(), "\n")
	if cfg.styled {
		flavor = flavorStyle.Render(flavor)
	}

	var b strings.Builder
	divider(&b, cfg.width, '*')
	columns(&b, c.Name, c.ManaCost, cfg.width)
	divider(&b, cfg.width, '-')
	columns(&b, c.Type, c.Rarity, cfg.width)
	divider(&b, cfg.width, '-')
	wrap(&b, c.Text, cfg.width)
	b.WriteString(flavor)
	b.WriteByte('\n')
	columns(&b, "", c.SetName, cfg.width)
	divider(&b, cfg.width, '*')
	return b.String()
}

// divider writes a full-width line of ch.
func divider(b *strings.Builder, width int, ch rune) {
	for i := 0; i < width; i++ {
		b.WriteRune(ch)
	}
	b.WriteByte('\n')
}

// columns writes left and right separated by at least one space,
// padded so the line fills the frame width.
func columns(b *strings.Builder, left, right string, width int) {
	pad := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(right)
	b.WriteByte('\n')
}

// wrap hard-breaks body at the frame width. Embedded newlines reset
// the column counter.
//
// TODO: break on word boundaries instead of mid-word.
func wrap(b *strings.Builder, body string, width int) {
	count := 0
	for _, ch := range body {
		if ch == '\n' {
			count = 0
			b.WriteRune(ch)
			continue
		}
		if count > 0 && count%width == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(ch)
		count++
	}
	b.WriteByte('\n')
}
