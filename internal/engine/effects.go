package engine

import (
	"fmt"

	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
)

// siphonPriority is the fixed scan order Siphon and Corrupt use when
// looking for a beneficial status on the target.
var siphonPriority = []game.StatusKind{
	game.StatusStrength,
	game.StatusShield,
	game.StatusSalve,
	game.StatusCritChance,
	game.StatusThorns,
}

// corruptMapping maps each beneficial status to its harmful counterpart.
var corruptMapping = map[game.StatusKind]game.StatusKind{
	game.StatusShield:     game.StatusBurn,
	game.StatusStrength:   game.StatusCurse,
	game.StatusSalve:      game.StatusBurn,
	game.StatusCritChance: game.StatusWeak,
	game.StatusThorns:     game.StatusBreak,
}

// applyKind dispatches one scaled effect by kind. The switch is
// exhaustive over the closed effect set.
func (rc *resolutionContext) applyKind(spec game.EffectSpec, source, target *game.Combatant) {
	switch spec.Kind {
	case game.EffectDamage:
		rc.applyDamage(source, target, spec.Amount)

	case game.EffectHeal:
		healed := target.ApplyHealthDelta(spec.Amount)
		rc.add(fmt.Sprintf("%s heals %d (HP %d/%d)", target.Name, healed, target.Health, target.MaxHealth))

	case game.EffectApplyShield:
		target.Statuses.Apply(game.StatusShield, spec.Amount, 0)
		rc.add(fmt.Sprintf("%s gains %d shield", target.Name, spec.Amount))
	case game.EffectApplyThorns:
		target.Statuses.Apply(game.StatusThorns, spec.Amount, 0)
		rc.add(fmt.Sprintf("%s gains %d thorns", target.Name, spec.Amount))
	case game.EffectApplyStrength:
		target.Statuses.Apply(game.StatusStrength, spec.Amount, 0)
		rc.add(fmt.Sprintf("%s gains %d strength", target.Name, spec.Amount))
	case game.EffectApplySalve:
		target.Statuses.Apply(game.StatusSalve, spec.Amount, 0)
		rc.add(fmt.Sprintf("%s gains %d salve", target.Name, spec.Amount))
	case game.EffectApplyBurn:
		target.Statuses.Apply(game.StatusBurn, spec.Amount, 0)
		rc.add(fmt.Sprintf("%s is burning (%d)", target.Name, spec.Amount))
	case game.EffectApplyCurse:
		target.Statuses.Apply(game.StatusCurse, spec.Amount, 0)
		rc.add(fmt.Sprintf("%s is cursed (%d)", target.Name, spec.Amount))
	case game.EffectRaiseCrit:
		target.Statuses.Apply(game.StatusCritChance, spec.Amount, 0)
		rc.add(fmt.Sprintf("%s's crit chance rises by %d%%", target.Name, spec.Amount))

	case game.EffectApplyWeak:
		target.Statuses.Apply(game.StatusWeak, 0, turns(spec.Duration))
		rc.add(fmt.Sprintf("%s is weakened for %d turn(s)", target.Name, turns(spec.Duration)))
	case game.EffectApplyBreak:
		target.Statuses.Apply(game.StatusBreak, 0, turns(spec.Duration))
		rc.add(fmt.Sprintf("%s's guard is broken for %d turn(s)", target.Name, turns(spec.Duration)))

	case game.EffectApplyStun:
		n := spec.Amount
		if n <= 0 {
			n = 1
		}
		target.Statuses.Apply(game.StatusStun, n, 0)
		rc.add(fmt.Sprintf("%s is stunned: next %d card(s) fizzle", target.Name, n))

	case game.EffectEnterStance:
		target.Stance = spec.Stance
		rc.add(fmt.Sprintf("%s enters the %s stance", target.Name, spec.Stance))
	case game.EffectExitStance:
		target.Stance = game.StanceNone
		rc.add(target.Name + " returns to a neutral stance")

	case game.EffectRedirect:
		opt := spec.Redirect
		if opt == "" {
			opt = game.RedirectToAttacker
		}
		target.PendingRedirect = &game.RedirectMarker{Option: opt}
		rc.add(target.Name + " readies a redirect")
	case game.EffectAmplify:
		// The marker always lands on the caster, whoever the spec targets.
		source.PendingAmplify += spec.Amount
		rc.add(fmt.Sprintf("%s readies an amplify (+%d)", source.Name, spec.Amount))

	case game.EffectSiphon:
		rc.applySiphon(source, target)
	case game.EffectCorrupt:
		rc.applyCorrupt(target)
	case game.EffectMimic:
		rc.applyMimic(source, target)
	case game.EffectHealthSwap:
		rc.applyHealthSwap(source, target)

	default:
		logging.Warn("unknown effect kind ignored", logging.Fields{"effect": string(spec.Kind)})
	}
}

// applySiphon moves the first beneficial status found on the target (in
// fixed priority order) onto the source, potency and duration intact.
func (rc *resolutionContext) applySiphon(source, target *game.Combatant) {
	for _, kind := range siphonPriority {
		inst := target.Statuses.Query(kind)
		if inst == nil {
			continue
		}
		potency, duration := inst.Potency, inst.Duration
		target.Statuses.RemoveConsumed(kind)
		source.Statuses.Apply(kind, potency, duration)
		rc.add(fmt.Sprintf("%s siphons %s (%d) from %s", source.Name, kind, potency, target.Name))
		return
	}
	rc.add(source.Name + " finds nothing to siphon")
}

// applyCorrupt replaces the target's first beneficial status with its
// harmful counterpart in place, preserving magnitude.
func (rc *resolutionContext) applyCorrupt(target *game.Combatant) {
	for _, kind := range siphonPriority {
		inst := target.Statuses.Query(kind)
		if inst == nil {
			continue
		}
		mapped := corruptMapping[kind]
		potency, duration := inst.Potency, inst.Duration
		if duration == 0 && (mapped == game.StatusWeak || mapped == game.StatusBreak) {
			duration = potency
		}
		target.Statuses.RemoveConsumed(kind)
		target.Statuses.Apply(mapped, potency, duration)
		rc.add(fmt.Sprintf("%s's %s corrupts into %s", target.Name, kind, mapped))
		return
	}
	rc.add(target.Name + " has nothing to corrupt")
}

// applyMimic replays the last hostile effect the target suffered,
// resolving that exact spec against the current target.
func (rc *resolutionContext) applyMimic(source, target *game.Combatant) {
	rec := target.LastHostile
	if rec == nil {
		logging.Warn("mimic with no recorded hostile effect", logging.Fields{"target": target.ID})
		rc.add(source.Name + " finds nothing to mimic")
		return
	}
	rc.add(fmt.Sprintf("%s mimics the last effect suffered by %s", source.Name, target.Name))
	rc.resolveAgainst(rec.Spec, source, target)
}

// applyHealthSwap exchanges current health between source and target, each
// clamped to its own maximum. Not a damage effect: no shield, thorns or
// counters involved.
func (rc *resolutionContext) applyHealthSwap(source, target *game.Combatant) {
	if source == target {
		return
	}
	src, tgt := source.Health, target.Health
	source.Health = clampHealth(tgt, source.MaxHealth)
	target.Health = clampHealth(src, target.MaxHealth)
	rc.add(fmt.Sprintf("%s and %s swap health (%d <-> %d)", source.Name, target.Name, source.Health, target.Health))
}

func clampHealth(v, maximum int) int {
	if v < 0 {
		return 0
	}
	if v > maximum {
		return maximum
	}
	return v
}

// turns normalizes a spec duration; duration-tracked statuses always last
// at least one turn.
func turns(d int) int {
	if d <= 0 {
		return 1
	}
	return d
}
