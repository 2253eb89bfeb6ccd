package combat

import (
	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
)

// Policy is the automated side's decision procedure. Deterministic and
// stateless: cards are taken in hand order, playing every card whose cost
// is currently affordable, observing the hand mutate between picks.
type Policy struct{}

// NextCard returns the first affordable card in the opponent's current
// hand, or false when no remaining card can be paid for.
func (Policy) NextCard(opponent *game.Combatant, catalog Catalog) (game.Card, bool) {
	for _, id := range opponent.Hand {
		card, ok := catalog.GetCardSpec(id)
		if !ok {
			logging.Warn("opponent holds unknown card", logging.Fields{"card_id": id, "combatant": opponent.ID})
			continue
		}
		if card.Cost <= opponent.Energy {
			return card, true
		}
	}
	return game.Card{}, false
}
