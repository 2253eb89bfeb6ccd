package engine

import (
	"fmt"
	"strings"

	"github.com/everdane/gauntlet/internal/game"
)

// applyDamage runs the full damage pipeline for one hit:
// strength/curse potency deltas, weak and aggressive-stance modifiers on
// the attacker, the crit roll, break and defensive-stance modifiers on the
// defender, shield absorption, health loss and the thorns reflection.
func (rc *resolutionContext) applyDamage(source, target *game.Combatant, base int) {
	t := rc.r.tuning
	dmg := base
	if dmg < 0 {
		dmg = 0
	}

	dmg += source.Statuses.Potency(game.StatusStrength)
	dmg -= source.Statuses.Potency(game.StatusCurse)
	if dmg < 0 {
		dmg = 0
	}

	var notes []string
	if source.Statuses.Query(game.StatusWeak) != nil {
		dmg = dmg * (100 - t.WeakPercent) / 100
		notes = append(notes, "weakened")
	}
	if source.Stance == game.StanceAggressive {
		dmg = dmg * (100 + t.AggressivePercent) / 100
		notes = append(notes, "aggressive stance")
	}

	chance := source.Statuses.Potency(game.StatusCritChance)
	if source.Stance == game.StanceFocused {
		chance += t.FocusedCritBonus
	}
	if rc.fight.CritRoll(chance) {
		dmg *= 2
		notes = append(notes, "critical")
	}

	if target.Statuses.Query(game.StatusBreak) != nil {
		dmg = dmg * (100 + t.BreakPercent) / 100
		notes = append(notes, "guard broken")
	}
	if target.Stance == game.StanceDefensive {
		dmg = dmg * (100 - t.DefensivePercent) / 100
		notes = append(notes, "defensive stance")
	}
	if dmg < 0 {
		dmg = 0
	}

	absorbed := target.Statuses.ConsumePotency(game.StatusShield, dmg)
	if absorbed > 0 {
		notes = append(notes, fmt.Sprintf("%d absorbed by shield", absorbed))
	}
	taken := target.ApplyHealthDelta(-(dmg - absorbed))
	source.Counters.DamageDealtThisTurn += taken
	source.Counters.DamageDealtThisFight += taken

	line := fmt.Sprintf("%s hits %s for %d damage (HP %d/%d)", source.Name, target.Name, taken, target.Health, target.MaxHealth)
	if len(notes) > 0 {
		line += " (" + strings.Join(notes, ", ") + ")"
	}
	rc.add(line)

	// Thorns: any landed hit reflects the full stored potency back at the
	// attacker and clears the instance, even when the shield soaked it all.
	if dmg > 0 && source != target {
		if thorns := target.Statuses.Potency(game.StatusThorns); thorns > 0 {
			target.Statuses.RemoveConsumed(game.StatusThorns)
			reflected := source.ApplyHealthDelta(-thorns)
			rc.add(fmt.Sprintf("%s's thorns reflect %d back at %s (HP %d/%d)", target.Name, reflected, source.Name, source.Health, source.MaxHealth))
		}
	}
}
