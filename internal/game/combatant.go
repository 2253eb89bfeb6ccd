package game

// CombatCounters tracks the per-turn and per-fight metrics consulted by
// scaling rules and conditional effects. Turn-scoped counters reset when
// the owner's turn ends; everything resets when the fight concludes.
type CombatCounters struct {
	DamageTakenThisTurn  int `json:"damage_taken_this_turn"`
	DamageTakenThisFight int `json:"damage_taken_this_fight"`
	DamageDealtThisTurn  int `json:"damage_dealt_this_turn"`
	DamageDealtThisFight int `json:"damage_dealt_this_fight"`
	CardsPlayedThisTurn  int `json:"cards_played_this_turn"`
	CardsPlayedThisFight int `json:"cards_played_this_fight"`
	ZeroCostCardsPlayed  int `json:"zero_cost_cards_played"`
	ComboCount           int `json:"combo_count"`
}

// EffectRecord remembers the last hostile effect a combatant suffered, so
// Mimic can replay it.
type EffectRecord struct {
	SourceID string     `json:"source_id"`
	Spec     EffectSpec `json:"spec"`
}

// RedirectMarker is a single-use marker installed by a Redirect effect on
// its holder; the next effect aimed at the holder is rerouted and the
// marker consumed.
type RedirectMarker struct {
	Option RedirectOption `json:"option"`
}

// Combatant is one participant in a fight: a human-controlled player or an
// automated opponent. All mutation happens through the orchestrator and
// the resolution engine; observers only ever see copies.
type Combatant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// OwnerID links an automated opponent back to the player who drafted
	// it, so fight pairing can avoid matching owners with their own
	// creations. Empty for humans.
	OwnerID   string `json:"owner_id,omitempty"`
	Automated bool   `json:"automated"`

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Energy    int `json:"energy"`
	MaxEnergy int `json:"max_energy"`

	Stance Stance `json:"stance"`

	Hand    []string `json:"hand"`
	Deck    []string `json:"deck"`
	Discard []string `json:"discard"`

	Statuses StatusLedger   `json:"statuses"`
	Counters CombatCounters `json:"counters"`

	LastHostile     *EffectRecord   `json:"-"`
	PendingAmplify  int             `json:"-"`
	PendingRedirect *RedirectMarker `json:"-"`
}

// ApplyHealthDelta shifts health by delta, clamped to [0, MaxHealth], and
// returns the applied amount (always >= 0, sign dropped). Negative deltas
// also feed the damage-taken counters.
func (c *Combatant) ApplyHealthDelta(delta int) int {
	before := c.Health
	c.Health += delta
	if c.Health < 0 {
		c.Health = 0
	}
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	applied := c.Health - before
	if applied < 0 {
		taken := -applied
		c.Counters.DamageTakenThisTurn += taken
		c.Counters.DamageTakenThisFight += taken
		return taken
	}
	return applied
}

// SpendEnergy deducts cost when affordable and reports whether it was.
func (c *Combatant) SpendEnergy(cost int) bool {
	if cost > c.Energy {
		return false
	}
	c.Energy -= cost
	return true
}

// ResetEnergy refills energy to the maximum at round start.
func (c *Combatant) ResetEnergy() {
	c.Energy = c.MaxEnergy
}

// RemoveFromHand moves the first matching card from hand to discard and
// reports whether it was present.
func (c *Combatant) RemoveFromHand(cardID string) bool {
	for i, id := range c.Hand {
		if id == cardID {
			c.Hand = append(c.Hand[:i], c.Hand[i+1:]...)
			c.Discard = append(c.Discard, cardID)
			return true
		}
	}
	return false
}

// HasInHand reports whether cardID is currently held.
func (c *Combatant) HasInHand(cardID string) bool {
	for _, id := range c.Hand {
		if id == cardID {
			return true
		}
	}
	return false
}

// NoteCardPlayed updates the play counters after a card resolves (or
// fizzles; a fizzled play still counts as played).
func (c *Combatant) NoteCardPlayed(cost int) {
	c.Counters.CardsPlayedThisTurn++
	c.Counters.CardsPlayedThisFight++
	c.Counters.ComboCount++
	if cost == 0 {
		c.Counters.ZeroCostCardsPlayed++
	}
}

// ResetTurnCounters clears the turn-scoped counters when the combatant's
// turn ends.
func (c *Combatant) ResetTurnCounters() {
	c.Counters.DamageTakenThisTurn = 0
	c.Counters.DamageDealtThisTurn = 0
	c.Counters.CardsPlayedThisTurn = 0
	c.Counters.ComboCount = 0
}

// MetricValue reads the named metric for scaling and conditional checks.
func (c *Combatant) MetricValue(metric ScalingMetric) int {
	switch metric {
	case MetricZeroCostCardsPlayed:
		return c.Counters.ZeroCostCardsPlayed
	case MetricCardsPlayed:
		return c.Counters.CardsPlayedThisTurn
	case MetricDamageDealt:
		return c.Counters.DamageDealtThisTurn
	case MetricComboCount:
		return c.Counters.ComboCount
	case MetricHandSize:
		return len(c.Hand)
	case MetricCurrentHealth:
		return c.Health
	case MetricMissingHealth:
		return c.MaxHealth - c.Health
	}
	return 0
}

// ConcludeFight wipes transient combat state. The combatant identity and
// collection survive into the next phase; statuses, counters, markers and
// stance do not.
func (c *Combatant) ConcludeFight() {
	c.Statuses.Clear()
	c.Counters = CombatCounters{}
	c.LastHostile = nil
	c.PendingAmplify = 0
	c.PendingRedirect = nil
	c.Stance = StanceNone
}
