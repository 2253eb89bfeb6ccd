// Package deck provides the default hand/deck manager used at round
// boundaries. It moves cards between piles in order; shuffling and draft
// composition belong to the deck-building phase, not here.
package deck

import "github.com/everdane/gauntlet/internal/game"

// Manager implements the combat core's HandManager collaborator.
type Manager struct{}

// NewManager returns the in-order pile manager.
func NewManager() *Manager {
	return &Manager{}
}

// DrawCards moves up to n cards from the top of the deck into the hand.
// When the deck runs dry the discard pile is flipped back in, preserving
// its order.
func (m *Manager) DrawCards(c *game.Combatant, n int) {
	for i := 0; i < n; i++ {
		if len(c.Deck) == 0 {
			if len(c.Discard) == 0 {
				return
			}
			c.Deck = c.Discard
			c.Discard = nil
		}
		c.Hand = append(c.Hand, c.Deck[0])
		c.Deck = c.Deck[1:]
	}
}

// DiscardHand moves the whole hand to the discard pile.
func (m *Manager) DiscardHand(c *game.Combatant) {
	c.Discard = append(c.Discard, c.Hand...)
	c.Hand = nil
}
