package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// TurnState is the current phase of a fight's turn cycle.
type TurnState string

const (
	TurnNone     TurnState = "none"
	TurnPlayer   TurnState = "player_turn"
	TurnOpponent TurnState = "opponent_turn"
	TurnEnded    TurnState = "fight_ended"
)

// Fight is one 1-v-1 encounter: a human combatant versus an automated
// opponent. The pairing is immutable for the fight's lifetime.
type Fight struct {
	ID       string
	Player   *Combatant
	Opponent *Combatant

	Round  int
	State  TurnState
	Winner string

	rng *rand.Rand
}

// NewFight pairs two combatants under a fresh fight identifier.
func NewFight(player, opponent *Combatant, seed int64) *Fight {
	return &Fight{
		ID:       uuid.NewString(),
		Player:   player,
		Opponent: opponent,
		State:    TurnNone,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// OpponentOf returns the other side of the pairing, or nil when c does not
// belong to this fight.
func (f *Fight) OpponentOf(c *Combatant) *Combatant {
	switch c {
	case f.Player:
		return f.Opponent
	case f.Opponent:
		return f.Player
	}
	return nil
}

// Contains reports whether the combatant with id participates in this fight.
func (f *Fight) Contains(id string) bool {
	return f.Player.ID == id || f.Opponent.ID == id
}

// Ended reports whether the fight reached its terminal state.
func (f *Fight) Ended() bool {
	return f.State == TurnEnded
}

// CritRoll rolls the fight-scoped RNG against a percent chance. The RNG is
// per-fight so concurrent fights never contend on a shared source.
func (f *Fight) CritRoll(chance int) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 100 {
		return true
	}
	return f.rng.Intn(100) < chance
}
