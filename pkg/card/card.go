package card

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Card is a single Magic: The Gathering card as returned by the
// /cards endpoints. Fields not present in a response decode to their
// zero values; promo and funny-set cards routinely omit manaCost,
// text or flavor.
type Card struct {
	// ID is the multiverse identifier used by the /cards/{id} endpoint
	ID int64 `json:"multiverseid,omitempty" yaml:"multiverseid,omitempty"`
	// Name is the card's printed name
	Name string `json:"name" yaml:"name"`
	// ManaCost uses the API's brace notation, e.g. "{3}{U}{R}{W}"
	ManaCost string `json:"manaCost,omitempty" yaml:"manaCost,omitempty"`
	// CMC is the converted mana cost
	CMC float64 `json:"cmc,omitempty" yaml:"cmc,omitempty"`
	// Colors lists the card's colors ("White", "Blue", ...)
	Colors []string `json:"colors,omitempty" yaml:"colors,omitempty"`
	// Type is the full type line, e.g. "Legendary Creature — Human Monk"
	Type string `json:"type" yaml:"type"`
	// Rarity is one of Common, Uncommon, Rare, Mythic, Special, Basic Land
	Rarity string `json:"rarity" yaml:"rarity"`
	// Set is the three-letter set code the printing belongs to
	Set string `json:"set,omitempty" yaml:"set,omitempty"`
	// SetName is the full name of the set
	SetName string `json:"setName" yaml:"setName"`
	// Number is the collector number within the set
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	// Artist credited for the printing
	Artist string `json:"artist,omitempty" yaml:"artist,omitempty"`
	// Text is the rules text
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Flavor is the flavor text
	Flavor string `json:"flavor,omitempty" yaml:"flavor,omitempty"`
	// ImageURL points at the gatherer card image when one exists
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Set is a Magic: The Gathering expansion as returned by /sets.
type Set struct {
	Code        string `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Block       string `json:"block,omitempty" yaml:"block,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
}

// Row is the table representation of a card used for CLI output.
type Row struct {
	ID     int64  `json:"id,omitempty" pretty:"label=ID"`
	Name   string `json:"name" pretty:"label=Name"`
	Cost   string `json:"cost,omitempty" pretty:"label=Cost"`
	Type   string `json:"type" pretty:"label=Type"`
	Rarity string `json:"rarity" pretty:"label=Rarity"`
	Set    string `json:"set" pretty:"label=Set"`
}

// Table wraps card rows for clicky table rendering.
type Table struct {
	Cards []Row `json:"cards" pretty:"table"`
}

// SetRow is the table representation of a set.
type SetRow struct {
	Code     string `json:"code" pretty:"label=Code"`
	Name     string `json:"name" pretty:"label=Name"`
	Type     string `json:"type,omitempty" pretty:"label=Type"`
	Block    string `json:"block,omitempty" pretty:"label=Block"`
	Released string `json:"released,omitempty" pretty:"label=Released"`
}

// SetTable wraps set rows for clicky table rendering.
type SetTable struct {
	Sets []SetRow `json:"sets" pretty:"table"`
}

// NewTable converts cards into their table form, preserving order.
func NewTable(cards []Card) Table {
	return Table{
		Cards: lo.Map(cards, func(c Card, _ int) Row {
			return Row{
				ID:     c.ID,
				Name:   c.Name,
				Cost:   c.ManaCost,
				Type:   c.Type,
				Rarity: c.Rarity,
				Set:    c.SetName,
			}
		}),
	}
}

// NewSetTable converts sets into their table form sorted by release date.
func NewSetTable(sets []Set) SetTable {
	rows := lo.Map(sets, func(s Set, _ int) SetRow {
		return SetRow{
			Code:     s.Code,
			Name:     s.Name,
			Type:     s.Type,
			Block:    s.Block,
			Released: s.ReleaseDate,
		}
	})
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Released < rows[j].Released
	})
	return SetTable{Sets: rows}
}

// Names returns the unique card names in order of first appearance.
func Names(cards []Card) []string {
	return lo.Uniq(lo.Map(cards, func(c Card, _ int) string {
		return c.Name
	}))
}

// Context returns the card as a flat map for template rendering and
// expression filters.
func (c Card) Context() map[string]interface{} {
	return map[string]interface{}{
		"id":       c.ID,
		"name":     c.Name,
		"manaCost": c.ManaCost,
		"cmc":      c.CMC,
		"colors":   strings.Join(c.Colors, ","),
		"type":     c.Type,
		"rarity":   c.Rarity,
		"set":      c.Set,
		"setName":  c.SetName,
		"number":   c.Number,
		"artist":   c.Artist,
		"text":     c.Text,
		"flavor":   c.Flavor,
	}
}
