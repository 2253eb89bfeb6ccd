package engine

import (
	"fmt"

	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
)

// Resolve applies one card-effect specification with source as the caster
// and the fight providing target lookup. The same path serves human plays
// and the opponent policy.
//
// Order per effect: redirect substitution, amplify consumption,
// conditional branch, scaling, kind dispatch. Additional effects then
// resolve independently, followed by the stance-exit flag. Fight-end
// detection stays with the caller, which rechecks health after every
// resolution.
func (r *Resolver) Resolve(spec game.EffectSpec, source *game.Combatant, fight *game.Fight) *Outcome {
	rc := &resolutionContext{r: r, fight: fight}
	if source == nil || fight == nil {
		logging.Warn("effect resolution without source or fight", nil)
		return &Outcome{}
	}
	rc.resolveEffect(spec, source)
	return &Outcome{Summary: rc.summary}
}

// resolveEffect runs one spec against every combatant its target type
// selects, then the additional-effect list, then the stance-exit flag.
func (rc *resolutionContext) resolveEffect(spec game.EffectSpec, source *game.Combatant) {
	targets := rc.targetsFor(spec.Target, source)
	if len(targets) == 0 {
		logging.Warn("effect resolved against missing target", logging.Fields{
			"effect": string(spec.Kind),
			"target": string(spec.Target),
		})
		return
	}
	for _, tgt := range targets {
		rc.resolveAgainst(spec, source, tgt)
	}
	for _, add := range spec.Additional {
		rc.resolveEffect(add, source)
	}
	if spec.AlsoExitStance && source.Stance != game.StanceNone {
		source.Stance = game.StanceNone
		rc.add(source.Name + " drops back to a neutral stance")
	}
}

// resolveAgainst applies one spec to one primary target.
func (rc *resolutionContext) resolveAgainst(spec game.EffectSpec, source, primary *game.Combatant) {
	if primary == nil {
		logging.Warn("effect resolved against missing target", logging.Fields{"effect": string(spec.Kind)})
		return
	}
	if rc.depth >= maxResolveDepth {
		logging.Warn("effect resolution depth exceeded", logging.Fields{"effect": string(spec.Kind)})
		return
	}
	rc.depth++
	defer func() { rc.depth-- }()

	// 1. Redirect: a pending marker on the target reroutes the effect and
	// is consumed.
	target := primary
	if marker := primary.PendingRedirect; marker != nil {
		primary.PendingRedirect = nil
		target = rc.redirectedTarget(marker.Option, source, primary)
		if target != primary {
			rc.add(primary.Name + " redirects the effect to " + target.Name)
		}
	}

	// 2. Amplify: a pending marker on the source raises the amount before
	// any further computation and is consumed.
	if source.PendingAmplify > 0 {
		spec.Amount += source.PendingAmplify
		rc.add(fmt.Sprintf("%s's amplify adds %d", source.Name, source.PendingAmplify))
		source.PendingAmplify = 0
	}

	// 3. Conditional branch.
	var bonus *game.EffectSpec
	if cond := spec.Condition; cond != nil && rc.conditionHolds(cond, source) {
		switch cond.Mode {
		case game.CondReplace:
			if cond.Then != nil {
				rc.applyScaled(*cond.Then, source, target)
				rc.recordHostile(*cond.Then, source, target)
				return
			}
		case game.CondAddBonus:
			bonus = cond.Then
		}
	}

	rc.applyScaled(spec, source, target)
	rc.recordHostile(spec, source, target)

	if bonus != nil {
		rc.resolveEffect(*bonus, source)
	}
}

// applyScaled runs step 4 (scaling) and step 5 (dispatch by kind).
func (rc *resolutionContext) applyScaled(spec game.EffectSpec, source, target *game.Combatant) {
	if s := spec.Scaling; s != nil {
		v := source.MetricValue(s.Metric)
		scaled := int(float64(v) * s.Multiplier)
		if scaled > s.Cap {
			scaled = s.Cap
		}
		spec.Amount += scaled
	}
	rc.applyKind(spec, source, target)
}

// conditionHolds evaluates a predicate against the source's live state.
func (rc *resolutionContext) conditionHolds(cond *game.Condition, source *game.Combatant) bool {
	if cond.Metric == game.MetricStance {
		return source.Stance == cond.Stance
	}
	v := source.MetricValue(cond.Metric)
	switch cond.Op {
	case game.OpLTE:
		return v <= cond.Value
	case game.OpEQ:
		return v == cond.Value
	default:
		return v >= cond.Value
	}
}

// redirectedTarget resolves a marker option to a concrete combatant. With
// two combatants per fight "ally of the holder" is the holder itself.
func (rc *resolutionContext) redirectedTarget(opt game.RedirectOption, source, holder *game.Combatant) *game.Combatant {
	switch opt {
	case game.RedirectToOpponent:
		if other := rc.fight.OpponentOf(holder); other != nil {
			return other
		}
	case game.RedirectToAlly:
		return holder
	case game.RedirectToAttacker:
		return source
	}
	return source
}

// recordHostile maintains the target's last-hostile-effect record, which
// Mimic replays later. Hostility is simply source != target.
func (rc *resolutionContext) recordHostile(spec game.EffectSpec, source, target *game.Combatant) {
	if source == target || target == nil {
		return
	}
	if spec.Kind == game.EffectMimic {
		// record what the mimic replayed, not the mimic itself; the replay
		// path records it.
		return
	}
	target.LastHostile = &game.EffectRecord{SourceID: source.ID, Spec: spec}
}
