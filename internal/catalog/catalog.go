// Package catalog exposes the read-only card catalog consumed by the
// combat core. Content comes from the config file; the drafting subsystem
// owns what ends up in decks.
package catalog

import "github.com/everdane/gauntlet/internal/game"

// Catalog resolves card identifiers to full card specs.
type Catalog struct {
	byID  map[string]game.Card
	order []string
}

// New builds a catalog from the configured card list, preserving file
// order for listing endpoints.
func New(cards []game.Card) *Catalog {
	c := &Catalog{byID: make(map[string]game.Card, len(cards))}
	for _, card := range cards {
		if _, dup := c.byID[card.CardID]; dup {
			continue
		}
		c.byID[card.CardID] = card
		c.order = append(c.order, card.CardID)
	}
	return c
}

// GetCardSpec returns the card with the given id.
func (c *Catalog) GetCardSpec(cardID string) (game.Card, bool) {
	card, ok := c.byID[cardID]
	return card, ok
}

// All returns every card in catalog order.
func (c *Catalog) All() []game.Card {
	out := make([]game.Card, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
