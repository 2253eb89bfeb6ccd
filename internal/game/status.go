package game

// StatusKind identifies an active status effect on a combatant.
type StatusKind string

const (
	StatusShield     StatusKind = "shield"
	StatusThorns     StatusKind = "thorns"
	StatusStrength   StatusKind = "strength"
	StatusSalve      StatusKind = "salve"
	StatusBurn       StatusKind = "burn"
	StatusCurse      StatusKind = "curse"
	StatusWeak       StatusKind = "weak"
	StatusBreak      StatusKind = "break"
	StatusStun       StatusKind = "stun"
	StatusCritChance StatusKind = "crit_chance"
)

// StatusInstance is one active status effect. Potency carries the
// magnitude (shield amount, burn damage, stun fizzle count); Duration is
// only meaningful for duration-tracked kinds (Weak, Break) and is zero for
// the rest.
type StatusInstance struct {
	Kind     StatusKind `json:"kind"`
	Potency  int        `json:"potency"`
	Duration int        `json:"duration,omitempty"`
}

// TickPhase selects which per-turn processing a Tick call performs.
type TickPhase int

const (
	StartOfTurn TickPhase = iota
	EndOfTurn
)

// TickResult reports what a Tick produced. The ledger has no access to
// combatant health, so burn damage and salve healing are returned for the
// caller to apply.
type TickResult struct {
	BurnDamage int
	SalveHeal  int
	Expired    []StatusKind
}

// durationStacked kinds stack by extending remaining duration; their
// potency is fixed by the damage modifiers in config, not stored here.
var durationStacked = map[StatusKind]bool{
	StatusWeak:  true,
	StatusBreak: true,
}

// StatusLedger is the per-combatant collection of active status effects.
// At most one instance per kind; repeated applications stack per the
// kind's rule.
type StatusLedger struct {
	instances []StatusInstance
}

// Apply writes or stacks a status onto the ledger.
// Shield/Thorns/Strength/Salve/Burn/Curse/CritChance and the Stun fizzle
// counter stack by adding potency; Weak/Break stack by adding duration.
func (l *StatusLedger) Apply(kind StatusKind, potency, duration int) {
	if inst := l.find(kind); inst != nil {
		if durationStacked[kind] {
			inst.Duration += duration
		} else {
			inst.Potency += potency
		}
		return
	}
	l.instances = append(l.instances, StatusInstance{Kind: kind, Potency: potency, Duration: duration})
}

// Query returns the active instance of kind, or nil.
func (l *StatusLedger) Query(kind StatusKind) *StatusInstance {
	return l.find(kind)
}

// Potency returns the potency of kind, or zero when absent.
func (l *StatusLedger) Potency(kind StatusKind) int {
	if inst := l.find(kind); inst != nil {
		return inst.Potency
	}
	return 0
}

// RemoveConsumed drops the instance of kind, typically after a trigger
// consumed it (shield exhausted, thorns reflected, stun fizzled out).
func (l *StatusLedger) RemoveConsumed(kind StatusKind) {
	for i := range l.instances {
		if l.instances[i].Kind == kind {
			l.instances = append(l.instances[:i], l.instances[i+1:]...)
			return
		}
	}
}

// ConsumePotency reduces the potency of kind by amount, removing the
// instance when it reaches zero. Returns the amount actually consumed.
func (l *StatusLedger) ConsumePotency(kind StatusKind, amount int) int {
	inst := l.find(kind)
	if inst == nil || amount <= 0 {
		return 0
	}
	consumed := amount
	if consumed > inst.Potency {
		consumed = inst.Potency
	}
	inst.Potency -= consumed
	if inst.Potency <= 0 {
		l.RemoveConsumed(kind)
	}
	return consumed
}

// Tick runs the per-turn status processing for one phase.
// StartOfTurn removes unconsumed Shield and Thorns. EndOfTurn reports burn
// damage and salve healing at current potency, then decays
// Burn/Salve/Curse potency and Weak/Break duration by one, pruning
// anything that reaches zero.
func (l *StatusLedger) Tick(phase TickPhase) TickResult {
	var res TickResult
	switch phase {
	case StartOfTurn:
		for _, kind := range []StatusKind{StatusShield, StatusThorns} {
			if l.find(kind) != nil {
				l.RemoveConsumed(kind)
				res.Expired = append(res.Expired, kind)
			}
		}
	case EndOfTurn:
		res.BurnDamage = l.Potency(StatusBurn)
		res.SalveHeal = l.Potency(StatusSalve)

		kept := l.instances[:0]
		for _, inst := range l.instances {
			switch inst.Kind {
			case StatusBurn, StatusSalve, StatusCurse:
				inst.Potency--
				if inst.Potency <= 0 {
					res.Expired = append(res.Expired, inst.Kind)
					continue
				}
			case StatusWeak, StatusBreak:
				inst.Duration--
				if inst.Duration <= 0 {
					res.Expired = append(res.Expired, inst.Kind)
					continue
				}
			}
			kept = append(kept, inst)
		}
		l.instances = kept
	}
	return res
}

// Active returns a copy of the active instances for state views.
func (l *StatusLedger) Active() []StatusInstance {
	out := make([]StatusInstance, len(l.instances))
	copy(out, l.instances)
	return out
}

// Clear removes every instance. Used when a fight concludes.
func (l *StatusLedger) Clear() {
	l.instances = nil
}

func (l *StatusLedger) find(kind StatusKind) *StatusInstance {
	for i := range l.instances {
		if l.instances[i].Kind == kind {
			return &l.instances[i]
		}
	}
	return nil
}
