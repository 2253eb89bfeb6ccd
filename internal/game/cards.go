package game

import "gorm.io/gorm"

// EffectKind identifies one card effect in the closed effect set. The
// engine dispatches on this value with an exhaustive switch; adding a kind
// here requires a matching arm there.
type EffectKind string

const (
	EffectDamage EffectKind = "damage"
	EffectHeal   EffectKind = "heal"

	EffectApplyShield   EffectKind = "apply_shield"
	EffectApplyThorns   EffectKind = "apply_thorns"
	EffectApplyStrength EffectKind = "apply_strength"
	EffectApplySalve    EffectKind = "apply_salve"
	EffectApplyWeak     EffectKind = "apply_weak"
	EffectApplyBreak    EffectKind = "apply_break"
	EffectApplyBurn     EffectKind = "apply_burn"
	EffectApplyCurse    EffectKind = "apply_curse"
	EffectApplyStun     EffectKind = "apply_stun"
	EffectRaiseCrit     EffectKind = "raise_crit_chance"

	EffectEnterStance EffectKind = "enter_stance"
	EffectExitStance  EffectKind = "exit_stance"

	EffectRedirect   EffectKind = "redirect"
	EffectAmplify    EffectKind = "amplify"
	EffectSiphon     EffectKind = "siphon"
	EffectCorrupt    EffectKind = "corrupt"
	EffectMimic      EffectKind = "mimic"
	EffectHealthSwap EffectKind = "health_swap"
)

// KnownEffectKinds is used by config validation to reject typos in card files.
var KnownEffectKinds = map[EffectKind]bool{
	EffectDamage: true, EffectHeal: true,
	EffectApplyShield: true, EffectApplyThorns: true, EffectApplyStrength: true,
	EffectApplySalve: true, EffectApplyWeak: true, EffectApplyBreak: true,
	EffectApplyBurn: true, EffectApplyCurse: true, EffectApplyStun: true,
	EffectRaiseCrit: true, EffectEnterStance: true, EffectExitStance: true,
	EffectRedirect: true, EffectAmplify: true, EffectSiphon: true,
	EffectCorrupt: true, EffectMimic: true, EffectHealthSwap: true,
}

// TargetType selects which combatants an effect applies to. Fights are
// 1-v-1, so ally-flavored targets collapse onto the source side; the full
// set is kept so card definitions stay portable to larger encounters.
type TargetType string

const (
	TargetSelf       TargetType = "self"
	TargetOpponent   TargetType = "opponent"
	TargetAlly       TargetType = "ally"
	TargetAllEnemies TargetType = "all_enemies"
	TargetAllAllies  TargetType = "all_allies"
	TargetAll        TargetType = "all"
)

// Stance is a combatant's current fighting stance. Binary per combatant:
// entering a stance replaces the previous one.
type Stance string

const (
	StanceNone       Stance = ""
	StanceAggressive Stance = "aggressive"
	StanceDefensive  Stance = "defensive"
	StanceFocused    Stance = "focused"
)

// RedirectOption configures where a Redirect marker sends the next effect
// aimed at its holder.
type RedirectOption string

const (
	RedirectToAttacker RedirectOption = "to_attacker"
	RedirectToOpponent RedirectOption = "to_opponent"
	RedirectToAlly     RedirectOption = "to_ally"
)

// ScalingMetric names a live combat counter used by scaling rules and
// conditional predicates.
type ScalingMetric string

const (
	MetricZeroCostCardsPlayed ScalingMetric = "zero_cost_cards_played"
	MetricCardsPlayed         ScalingMetric = "cards_played"
	MetricDamageDealt         ScalingMetric = "damage_dealt"
	MetricComboCount          ScalingMetric = "combo_count"
	MetricHandSize            ScalingMetric = "hand_size"
	MetricCurrentHealth       ScalingMetric = "current_health"
	MetricMissingHealth       ScalingMetric = "missing_health"
	MetricStance              ScalingMetric = "stance"
)

// ScalingRule computes an effect amount from a live metric:
// amount = base + min(value*multiplier, cap).
type ScalingRule struct {
	Metric     ScalingMetric `json:"metric"`
	Multiplier float64       `json:"multiplier"`
	Cap        int           `json:"cap"`
}

// ConditionOp compares a metric value against the condition threshold.
type ConditionOp string

const (
	OpGTE ConditionOp = "gte"
	OpLTE ConditionOp = "lte"
	OpEQ  ConditionOp = "eq"
)

// ConditionMode selects how a satisfied condition combines with the
// primary effect.
type ConditionMode string

const (
	CondReplace  ConditionMode = "replace"
	CondAddBonus ConditionMode = "add_bonus"
)

// Condition is an optional branch on an effect: when the predicate holds,
// Then either replaces the primary effect or resolves as an extra bonus.
type Condition struct {
	Metric ScalingMetric `json:"metric"`
	// Stance is compared instead of Value when Metric == MetricStance.
	Stance Stance      `json:"stance,omitempty"`
	Op     ConditionOp `json:"op,omitempty"`
	Value  int         `json:"value,omitempty"`

	Mode ConditionMode `json:"mode"`
	Then *EffectSpec   `json:"then"`
}

// EffectSpec describes one effect of a card. Multi-effect cards chain
// further specs through Additional, each with its own target type.
type EffectSpec struct {
	Kind   EffectKind `json:"kind"`
	Target TargetType `json:"target"`
	Amount int        `json:"amount,omitempty"`
	// Duration applies to duration-tracked statuses (Weak, Break).
	Duration int `json:"duration,omitempty"`

	Stance   Stance         `json:"stance,omitempty"`
	Redirect RedirectOption `json:"redirect,omitempty"`

	Scaling   *ScalingRule `json:"scaling,omitempty"`
	Condition *Condition   `json:"condition,omitempty"`

	AlsoExitStance bool `json:"also_exit_stance,omitempty"`

	Additional []EffectSpec `json:"additional,omitempty"`
}

// Card is a catalog entry. Identity is persisted (card_templates table);
// gameplay data always comes from the config file and is intentionally not
// stored, so balance changes never require a migration.
type Card struct {
	gorm.Model
	CardID string `json:"card_id" gorm:"uniqueIndex;size:64"`
	Name   string `json:"name"`

	Cost   int        `json:"cost" gorm:"-"`
	Effect EffectSpec `json:"effect" gorm:"-"`
}

// TableName overrides the default GORM table name for Card.
func (Card) TableName() string { return "card_templates" }
