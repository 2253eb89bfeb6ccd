package engine

import (
	"testing"

	"github.com/everdane/gauntlet/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFight() (*game.Fight, *game.Combatant, *game.Combatant) {
	player := &game.Combatant{ID: "p1", Name: "P1", Health: 25, MaxHealth: 25, Energy: 3, MaxEnergy: 3}
	opponent := &game.Combatant{ID: "o1", Name: "O1", Health: 25, MaxHealth: 25, Energy: 3, MaxEnergy: 3, Automated: true}
	return game.NewFight(player, opponent, 1), player, opponent
}

func noCritResolver() *Resolver {
	t := DefaultTuning()
	t.FocusedCritBonus = 0
	return NewResolver(t)
}

func TestResolve_DamageThroughShield(t *testing.T) {
	f, _, opp := newTestFight()
	opp.Statuses.Apply(game.StatusShield, 5, 0)
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 8}, f.Player, f)

	assert.Equal(t, 17, opp.Health)
	assert.Nil(t, opp.Statuses.Query(game.StatusShield))
	assert.Equal(t, 3, f.Player.Counters.DamageDealtThisTurn)
}

func TestResolve_StrengthAndCurseAdjustDamage(t *testing.T) {
	f, src, opp := newTestFight()
	src.Statuses.Apply(game.StatusStrength, 3, 0)
	src.Statuses.Apply(game.StatusCurse, 1, 0)
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 4}, src, f)

	// 4 + 3 - 1 = 6
	assert.Equal(t, 19, opp.Health)
}

func TestResolve_WeakAndBreakModifiers(t *testing.T) {
	f, src, opp := newTestFight()
	src.Statuses.Apply(game.StatusWeak, 0, 1)
	opp.Statuses.Apply(game.StatusBreak, 0, 1)
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 8}, src, f)

	// 8 * 0.75 = 6, then 6 * 1.25 = 7 (integer math)
	assert.Equal(t, 18, opp.Health)
}

func TestResolve_StanceModifiers(t *testing.T) {
	f, src, opp := newTestFight()
	src.Stance = game.StanceAggressive
	opp.Stance = game.StanceDefensive
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 8}, src, f)

	// 8 * 1.25 = 10, then 10 * 0.75 = 7
	assert.Equal(t, 18, opp.Health)
}

func TestResolve_ThornsReflectThenClear(t *testing.T) {
	f, src, opp := newTestFight()
	opp.Statuses.Apply(game.StatusThorns, 4, 0)
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 3}, src, f)

	assert.Equal(t, 22, opp.Health)
	assert.Equal(t, 21, src.Health)
	assert.Nil(t, opp.Statuses.Query(game.StatusThorns))

	// A second hit meets no thorns.
	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 3}, src, f)
	assert.Equal(t, 21, src.Health)
}

func TestResolve_ThornsTriggerOnFullyAbsorbedHit(t *testing.T) {
	f, src, opp := newTestFight()
	opp.Statuses.Apply(game.StatusShield, 10, 0)
	opp.Statuses.Apply(game.StatusThorns, 4, 0)
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 3}, src, f)

	assert.Equal(t, 25, opp.Health)
	assert.Equal(t, 21, src.Health)
	assert.Nil(t, opp.Statuses.Query(game.StatusThorns))
}

func TestResolve_HealClampsAtMax(t *testing.T) {
	f, src, _ := newTestFight()
	src.Health = 23
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectHeal, Target: game.TargetSelf, Amount: 10}, src, f)

	assert.Equal(t, 25, src.Health)
}

func TestResolve_ScalingCapped(t *testing.T) {
	f, src, opp := newTestFight()
	src.Counters.CardsPlayedThisTurn = 5
	r := noCritResolver()

	spec := game.EffectSpec{
		Kind:    game.EffectDamage,
		Target:  game.TargetOpponent,
		Amount:  2,
		Scaling: &game.ScalingRule{Metric: game.MetricCardsPlayed, Multiplier: 2.0, Cap: 6},
	}
	r.Resolve(spec, src, f)

	// 2 + min(5*2, 6) = 8
	assert.Equal(t, 17, opp.Health)
}

func TestResolve_ConditionalReplace(t *testing.T) {
	f, src, opp := newTestFight()
	src.Health = 5 // missing 20
	r := noCritResolver()

	spec := game.EffectSpec{
		Kind:   game.EffectDamage,
		Target: game.TargetOpponent,
		Amount: 5,
		Condition: &game.Condition{
			Metric: game.MetricMissingHealth,
			Op:     game.OpGTE,
			Value:  15,
			Mode:   game.CondReplace,
			Then:   &game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 12},
		},
	}
	r.Resolve(spec, src, f)

	assert.Equal(t, 13, opp.Health)
}

func TestResolve_ConditionalAddBonus(t *testing.T) {
	f, src, opp := newTestFight()
	src.Stance = game.StanceAggressive
	tun := DefaultTuning()
	tun.AggressivePercent = 0
	r := NewResolver(tun)

	spec := game.EffectSpec{
		Kind:   game.EffectDamage,
		Target: game.TargetOpponent,
		Amount: 4,
		Condition: &game.Condition{
			Metric: game.MetricStance,
			Stance: game.StanceAggressive,
			Mode:   game.CondAddBonus,
			Then:   &game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 3},
		},
	}
	r.Resolve(spec, src, f)

	assert.Equal(t, 18, opp.Health)
}

func TestResolve_ConditionNotMetUsesPrimary(t *testing.T) {
	f, src, opp := newTestFight()
	r := noCritResolver()

	spec := game.EffectSpec{
		Kind:   game.EffectDamage,
		Target: game.TargetOpponent,
		Amount: 5,
		Condition: &game.Condition{
			Metric: game.MetricMissingHealth,
			Op:     game.OpGTE,
			Value:  15,
			Mode:   game.CondReplace,
			Then:   &game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 12},
		},
	}
	r.Resolve(spec, src, f)

	assert.Equal(t, 20, opp.Health)
}

func TestResolve_AmplifyConsumedOnce(t *testing.T) {
	f, src, opp := newTestFight()
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectAmplify, Target: game.TargetSelf, Amount: 4}, src, f)
	assert.Equal(t, 4, src.PendingAmplify)

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 3}, src, f)
	assert.Equal(t, 18, opp.Health)
	assert.Equal(t, 0, src.PendingAmplify)

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 3}, src, f)
	assert.Equal(t, 15, opp.Health)
}

func TestResolve_AmplifyAccumulates(t *testing.T) {
	f, src, _ := newTestFight()
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectAmplify, Target: game.TargetSelf, Amount: 2}, src, f)
	r.Resolve(game.EffectSpec{Kind: game.EffectAmplify, Target: game.TargetSelf, Amount: 3}, src, f)

	assert.Equal(t, 5, src.PendingAmplify)
}

func TestResolve_RedirectToAttacker(t *testing.T) {
	f, src, opp := newTestFight()
	r := noCritResolver()

	// Opponent readies a redirect, then the player attacks.
	r.Resolve(game.EffectSpec{Kind: game.EffectRedirect, Target: game.TargetSelf, Redirect: game.RedirectToAttacker}, opp, f)
	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 6}, src, f)

	assert.Equal(t, 19, src.Health)
	assert.Equal(t, 25, opp.Health)
	assert.Nil(t, opp.PendingRedirect)

	// Marker is single-use.
	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 6}, src, f)
	assert.Equal(t, 19, opp.Health)
}

func TestResolve_SiphonMovesFirstBeneficialStatus(t *testing.T) {
	f, src, opp := newTestFight()
	opp.Statuses.Apply(game.StatusShield, 5, 0)
	opp.Statuses.Apply(game.StatusStrength, 2, 0)
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectSiphon, Target: game.TargetOpponent}, src, f)

	// strength outranks shield in the scan order
	assert.Nil(t, opp.Statuses.Query(game.StatusStrength))
	assert.Equal(t, 2, src.Statuses.Potency(game.StatusStrength))
	assert.Equal(t, 5, opp.Statuses.Potency(game.StatusShield))
}

func TestResolve_CorruptConvertsInPlace(t *testing.T) {
	f, src, opp := newTestFight()
	opp.Statuses.Apply(game.StatusShield, 5, 0)
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectCorrupt, Target: game.TargetOpponent}, src, f)

	assert.Nil(t, opp.Statuses.Query(game.StatusShield))
	assert.Equal(t, 5, opp.Statuses.Potency(game.StatusBurn))
	assert.Empty(t, src.Statuses.Active())
}

func TestResolve_MimicReplaysLastHostile(t *testing.T) {
	f, src, opp := newTestFight()
	r := noCritResolver()

	// Opponent burns the player; mimicking replays the recorded spec
	// against the chosen target (self here), stacking onto the original.
	r.Resolve(game.EffectSpec{Kind: game.EffectApplyBurn, Target: game.TargetOpponent, Amount: 3}, opp, f)
	require.NotNil(t, src.LastHostile)
	assert.Equal(t, 3, src.Statuses.Potency(game.StatusBurn))

	r.Resolve(game.EffectSpec{Kind: game.EffectMimic, Target: game.TargetSelf}, src, f)

	assert.Equal(t, 6, src.Statuses.Potency(game.StatusBurn))
}

func TestResolve_MimicWithoutRecordIsNoop(t *testing.T) {
	f, src, opp := newTestFight()
	r := noCritResolver()

	out := r.Resolve(game.EffectSpec{Kind: game.EffectMimic, Target: game.TargetOpponent}, src, f)

	assert.Equal(t, 25, opp.Health)
	assert.NotEmpty(t, out.Summary)
}

func TestResolve_HealthSwapClampsToOwnMax(t *testing.T) {
	f, src, opp := newTestFight()
	src.Health = 5
	opp.MaxHealth = 30
	opp.Health = 30
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectHealthSwap, Target: game.TargetOpponent}, src, f)

	assert.Equal(t, 25, src.Health)
	assert.Equal(t, 5, opp.Health)
	assert.Equal(t, 0, src.Counters.DamageTakenThisFight)
	assert.Equal(t, 0, opp.Counters.DamageTakenThisFight)
}

func TestResolve_AdditionalEffectsAndStanceExit(t *testing.T) {
	f, src, opp := newTestFight()
	src.Stance = game.StanceAggressive
	tun := DefaultTuning()
	tun.AggressivePercent = 0
	r := NewResolver(tun)

	spec := game.EffectSpec{
		Kind:           game.EffectDamage,
		Target:         game.TargetOpponent,
		Amount:         3,
		AlsoExitStance: true,
		Additional: []game.EffectSpec{
			{Kind: game.EffectApplyShield, Target: game.TargetSelf, Amount: 2},
		},
	}
	r.Resolve(spec, src, f)

	assert.Equal(t, 22, opp.Health)
	assert.Equal(t, 2, src.Statuses.Potency(game.StatusShield))
	assert.Equal(t, game.StanceNone, src.Stance)
}

func TestResolve_StanceRoundTrip(t *testing.T) {
	f, src, opp := newTestFight()
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectEnterStance, Target: game.TargetSelf, Stance: game.StanceAggressive}, src, f)
	assert.Equal(t, game.StanceAggressive, src.Stance)

	r.Resolve(game.EffectSpec{Kind: game.EffectExitStance, Target: game.TargetSelf}, src, f)

	// Identical to a combatant that never entered a stance: same neutral
	// stance, and the same damage output.
	assert.Equal(t, game.StanceNone, src.Stance)
	assert.Equal(t, opp.Stance, src.Stance)

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 8}, src, f)
	assert.Equal(t, 17, opp.Health)
}

func TestResolve_EnterStanceReplacesPrevious(t *testing.T) {
	f, src, _ := newTestFight()
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectEnterStance, Target: game.TargetSelf, Stance: game.StanceDefensive}, src, f)
	r.Resolve(game.EffectSpec{Kind: game.EffectEnterStance, Target: game.TargetSelf, Stance: game.StanceFocused}, src, f)

	assert.Equal(t, game.StanceFocused, src.Stance)
}

func TestResolve_StunAppliesFizzleCounter(t *testing.T) {
	f, src, opp := newTestFight()
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectApplyStun, Target: game.TargetOpponent}, src, f)

	assert.Equal(t, 1, opp.Statuses.Potency(game.StatusStun))
}

func TestResolve_NegativeDamageClampsToZero(t *testing.T) {
	f, src, opp := newTestFight()
	src.Statuses.Apply(game.StatusCurse, 10, 0)
	r := noCritResolver()

	r.Resolve(game.EffectSpec{Kind: game.EffectDamage, Target: game.TargetOpponent, Amount: 2}, src, f)

	assert.Equal(t, 25, opp.Health)
}
