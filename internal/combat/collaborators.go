package combat

import (
	"time"

	"github.com/everdane/gauntlet/internal/game"
)

// Catalog resolves card identifiers to their full specification. Populated
// by the drafting subsystem; read-only here.
type Catalog interface {
	GetCardSpec(cardID string) (game.Card, bool)
}

// HandManager owns draw-pile mechanics. The combat core calls it at round
// and turn boundaries but does not shuffle or reshuffle itself.
type HandManager interface {
	DrawCards(c *game.Combatant, n int)
	DiscardHand(c *game.Combatant)
}

// Notifier delivers one-way notifications to the connections observing a
// fight. Implementations must never block combat progress.
type Notifier interface {
	TurnStateChanged(fightID string, state game.TurnState)
	CardPlayed(fightID, casterID, targetID, cardID string)
	FightEnded(fightID, winnerID string)
	Notify(combatantID, message string)
}

// Progression is told once when every fight has concluded, triggering the
// next game phase.
type Progression interface {
	OnAllFightsComplete()
}

// Rules carries the round-cycle tuning from config.
type Rules struct {
	// FirstRoundDraw is the card draw on round one; PerRoundDraw applies
	// to every later round.
	FirstRoundDraw int
	PerRoundDraw   int
	// OpponentDelay paces successive opponent card plays. It suspends only
	// that fight's goroutine.
	OpponentDelay time.Duration
}

// DefaultRules returns the round tuning used when config omits it.
func DefaultRules() Rules {
	return Rules{FirstRoundDraw: 5, PerRoundDraw: 4}
}
