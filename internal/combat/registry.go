package combat

import (
	"errors"
	"sync"

	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
)

var (
	ErrAlreadyFighting = errors.New("combatant already in an active fight")
	ErrNoOpponents     = errors.New("no opponents available for pairing")
)

// Registry maps each combatant to its one active fight and tracks how many
// fights remain. The active count is the only combat state shared across
// fights, so every access goes through the registry mutex.
type Registry struct {
	mu          sync.Mutex
	fights      map[string]*game.Fight
	byCombatant map[string]*game.Fight
	seed        int64
}

// NewRegistry creates an empty fight registry. The seed feeds each fight's
// private RNG; fights offset it so no two share a stream.
func NewRegistry(seed int64) *Registry {
	return &Registry{
		fights:      make(map[string]*game.Fight),
		byCombatant: make(map[string]*game.Fight),
		seed:        seed,
	}
}

// Assign pairs a human with an opponent for the duration of combat and
// returns the new fight. Assigning a combatant already in an active fight
// is rejected and logged.
func (r *Registry) Assign(human, opponent *game.Combatant) (*game.Fight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range []*game.Combatant{human, opponent} {
		if _, ok := r.byCombatant[c.ID]; ok {
			logging.Error("rejected fight assignment", ErrAlreadyFighting, logging.Fields{"combatant_id": c.ID})
			return nil, ErrAlreadyFighting
		}
	}

	r.seed++
	f := game.NewFight(human, opponent, r.seed)
	r.fights[f.ID] = f
	r.byCombatant[human.ID] = f
	r.byCombatant[opponent.ID] = f
	return f, nil
}

// PairAll assigns every human a fight. Each human gets the first available
// opponent it does not own; when only owned opponents remain, the first
// available one is used anyway.
func (r *Registry) PairAll(humans, opponents []*game.Combatant) ([]*game.Fight, error) {
	if len(opponents) < len(humans) {
		return nil, ErrNoOpponents
	}
	taken := make(map[string]bool, len(opponents))
	fights := make([]*game.Fight, 0, len(humans))
	for _, human := range humans {
		var pick *game.Combatant
		for _, opp := range opponents {
			if taken[opp.ID] || opp.OwnerID == human.ID {
				continue
			}
			pick = opp
			break
		}
		if pick == nil {
			for _, opp := range opponents {
				if !taken[opp.ID] {
					pick = opp
					break
				}
			}
		}
		if pick == nil {
			return nil, ErrNoOpponents
		}
		taken[pick.ID] = true
		f, err := r.Assign(human, pick)
		if err != nil {
			return nil, err
		}
		fights = append(fights, f)
	}
	return fights, nil
}

// Get returns the fight with the given id, or nil.
func (r *Registry) Get(fightID string) *game.Fight {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fights[fightID]
}

// FightFor returns the active fight a combatant belongs to, or nil.
func (r *Registry) FightFor(combatantID string) *game.Fight {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byCombatant[combatantID]
}

// GetOpponent returns the opponent paired against the given combatant, or
// nil when the combatant has no active fight.
func (r *Registry) GetOpponent(combatantID string) *game.Combatant {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.byCombatant[combatantID]
	if f == nil {
		return nil
	}
	if f.Player.ID == combatantID {
		return f.Opponent
	}
	return f.Player
}

// Remove drops a concluded fight. Removing an unknown fight is a no-op.
func (r *Registry) Remove(fightID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fights[fightID]
	if !ok {
		return
	}
	delete(r.fights, fightID)
	delete(r.byCombatant, f.Player.ID)
	delete(r.byCombatant, f.Opponent.ID)
}

// ActiveCount returns how many fights are still running.
func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fights)
}
