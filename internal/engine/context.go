package engine

import (
	"strings"

	"github.com/everdane/gauntlet/internal/game"
)

// Tuning carries the percentage modifiers consulted during damage
// computation. Values come from the combat section of the config file.
type Tuning struct {
	// WeakPercent reduces damage dealt by a Weak attacker.
	WeakPercent int
	// BreakPercent increases damage taken by a Broken defender.
	BreakPercent int
	// AggressivePercent / DefensivePercent are the stance modifiers on
	// damage dealt and taken.
	AggressivePercent int
	DefensivePercent  int
	// FocusedCritBonus is added to crit chance while in the focused stance.
	FocusedCritBonus int
}

// DefaultTuning returns the modifiers used when the config omits them.
func DefaultTuning() Tuning {
	return Tuning{
		WeakPercent:       25,
		BreakPercent:      25,
		AggressivePercent: 25,
		DefensivePercent:  25,
		FocusedCritBonus:  15,
	}
}

// Resolver applies card-effect specifications to combatants. It holds no
// fight state; one resolver serves every concurrent fight.
type Resolver struct {
	tuning Tuning
}

// NewResolver creates a Resolver with the given damage tuning.
func NewResolver(t Tuning) *Resolver {
	return &Resolver{tuning: t}
}

// Outcome reports what a resolution did, as human-readable summary lines
// in application order.
type Outcome struct {
	Summary []string
}

// Joined returns the accumulated summary as a single string.
func (o *Outcome) Joined() string {
	return strings.Join(o.Summary, "\n")
}

// mimic replays recorded specs through the same resolution path; the depth
// guard stops a recorded Mimic from replaying itself forever.
const maxResolveDepth = 8

// --- Resolution context and helpers ------------------------------------
type resolutionContext struct {
	r       *Resolver
	fight   *game.Fight
	summary []string
	depth   int
}

func (rc *resolutionContext) add(msg string) { rc.summary = append(rc.summary, msg) }

// targetsFor expands a target type into concrete combatants. Fights are
// 1-v-1, so ally-flavored targets collapse onto the source.
func (rc *resolutionContext) targetsFor(tt game.TargetType, source *game.Combatant) []*game.Combatant {
	other := rc.fight.OpponentOf(source)
	switch tt {
	case game.TargetSelf, game.TargetAlly, game.TargetAllAllies:
		return []*game.Combatant{source}
	case game.TargetOpponent, game.TargetAllEnemies:
		if other == nil {
			return nil
		}
		return []*game.Combatant{other}
	case game.TargetAll:
		if other == nil {
			return []*game.Combatant{source}
		}
		return []*game.Combatant{source, other}
	}
	return nil
}
