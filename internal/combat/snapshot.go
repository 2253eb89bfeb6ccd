package combat

import "github.com/everdane/gauntlet/internal/game"

// CombatantView is a copied, observer-safe view of one combatant.
type CombatantView struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Automated bool                  `json:"automated"`
	Health    int                   `json:"health"`
	MaxHealth int                   `json:"max_health"`
	Energy    int                   `json:"energy"`
	MaxEnergy int                   `json:"max_energy"`
	Stance    game.Stance           `json:"stance"`
	Hand      []string              `json:"hand,omitempty"`
	HandCount int                   `json:"hand_count"`
	DeckCount int                   `json:"deck_count"`
	Discards  int                   `json:"discard_count"`
	Statuses  []game.StatusInstance `json:"statuses"`
}

// Snapshot is a point-in-time copy of a fight taken under the fight lock.
type Snapshot struct {
	FightID  string         `json:"fight_id"`
	Round    int            `json:"round"`
	State    game.TurnState `json:"state"`
	Winner   string         `json:"winner,omitempty"`
	Player   CombatantView  `json:"player"`
	Opponent CombatantView  `json:"opponent"`
}

// Snapshot copies the fight state for observers without racing turn
// progress.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	f := o.fight
	return Snapshot{
		FightID:  f.ID,
		Round:    f.Round,
		State:    f.State,
		Winner:   f.Winner,
		Player:   viewOf(f.Player),
		Opponent: viewOf(f.Opponent),
	}
}

// SnapshotFor returns the requester's fight snapshot, when one is active.
func (s *Session) SnapshotFor(combatantID string) (Snapshot, bool) {
	o := s.orchestratorFor(combatantID)
	if o == nil {
		return Snapshot{}, false
	}
	return o.Snapshot(), true
}

func viewOf(c *game.Combatant) CombatantView {
	hand := make([]string, len(c.Hand))
	copy(hand, c.Hand)
	return CombatantView{
		ID:        c.ID,
		Name:      c.Name,
		Automated: c.Automated,
		Health:    c.Health,
		MaxHealth: c.MaxHealth,
		Energy:    c.Energy,
		MaxEnergy: c.MaxEnergy,
		Stance:    c.Stance,
		Hand:      hand,
		HandCount: len(hand),
		DeckCount: len(c.Deck),
		Discards:  len(c.Discard),
		Statuses:  c.Statuses.Active(),
	}
}
