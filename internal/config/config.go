package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/everdane/gauntlet/internal/combat"
	"github.com/everdane/gauntlet/internal/engine"
	"github.com/everdane/gauntlet/internal/game"
)

type cardEntry struct {
	CardID string          `json:"card_id"`
	Name   string          `json:"name"`
	Cost   int             `json:"cost"`
	Effect game.EffectSpec `json:"effect"`
}

// RosterEntry describes one combatant of the configured encounter.
// PlayerUUID is set for human-controlled combatants and empty for
// automated opponents.
type RosterEntry struct {
	Name       string   `json:"name"`
	PlayerUUID string   `json:"player_uuid"`
	Health     int      `json:"health"`
	Deck       []string `json:"deck"`
}

// Encounter is the combat roster the server boots with. The outer game
// normally decides who fights whom; a standalone server reads it from
// configuration instead.
type Encounter struct {
	Players   []RosterEntry `json:"players"`
	Opponents []RosterEntry `json:"opponents"`
}

type rawConfig struct {
	CardList  []cardEntry `json:"card_list"`
	Encounter *Encounter  `json:"encounter"`
	Combat    *struct {
		MaxEnergy           int `json:"max_energy"`
		FirstRoundDraw      int `json:"first_round_draw"`
		PerRoundDraw        int `json:"per_round_draw"`
		WeakPercent         int `json:"weak_percent"`
		BreakPercent        int `json:"break_percent"`
		AggressivePercent   int `json:"aggressive_percent"`
		DefensivePercent    int `json:"defensive_percent"`
		FocusedCritBonus    int `json:"focused_crit_bonus"`
		OpponentPlayDelayMS int `json:"opponent_play_delay_ms"`
	} `json:"combat"`
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig carries the card catalog to seed and the combat tuning.
type LoadedConfig struct {
	Cards         []game.Card
	Encounter     *Encounter
	Rules         combat.Rules
	Tuning        engine.Tuning
	MaxEnergy     int
	ServerAddress string
}

// LoadConfig reads the configuration file at path. It requires the key
// `card_list` (snake_case) and validates every effect spec against the
// closed effect set.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CardList) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide a 'card_list' array)", path)
	}

	cards := make([]game.Card, 0, len(rc.CardList))
	idSet := make(map[string]struct{}, len(rc.CardList))
	for _, e := range rc.CardList {
		id := strings.TrimSpace(e.CardID)
		if id == "" {
			return nil, fmt.Errorf("config file %s: card entry missing 'card_id'", path)
		}
		if _, exists := idSet[id]; exists {
			return nil, fmt.Errorf("config file %s: duplicate card_id '%s'", path, id)
		}
		idSet[id] = struct{}{}
		if e.Cost < 0 {
			return nil, fmt.Errorf("config file %s: card '%s' has negative cost", path, id)
		}
		if err := validateEffect(e.Effect, id); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		cards = append(cards, game.Card{CardID: id, Name: e.Name, Cost: e.Cost, Effect: e.Effect})
	}

	out := &LoadedConfig{
		Cards:         cards,
		Rules:         combat.DefaultRules(),
		Tuning:        engine.DefaultTuning(),
		MaxEnergy:     3,
		ServerAddress: ":8080",
	}
	if c := rc.Combat; c != nil {
		if c.MaxEnergy > 0 {
			out.MaxEnergy = c.MaxEnergy
		}
		if c.FirstRoundDraw > 0 {
			out.Rules.FirstRoundDraw = c.FirstRoundDraw
		}
		if c.PerRoundDraw > 0 {
			out.Rules.PerRoundDraw = c.PerRoundDraw
		}
		if c.OpponentPlayDelayMS > 0 {
			out.Rules.OpponentDelay = time.Duration(c.OpponentPlayDelayMS) * time.Millisecond
		}
		if c.WeakPercent > 0 {
			out.Tuning.WeakPercent = c.WeakPercent
		}
		if c.BreakPercent > 0 {
			out.Tuning.BreakPercent = c.BreakPercent
		}
		if c.AggressivePercent > 0 {
			out.Tuning.AggressivePercent = c.AggressivePercent
		}
		if c.DefensivePercent > 0 {
			out.Tuning.DefensivePercent = c.DefensivePercent
		}
		if c.FocusedCritBonus > 0 {
			out.Tuning.FocusedCritBonus = c.FocusedCritBonus
		}
	}
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Encounter != nil {
		if err := validateEncounter(rc.Encounter, idSet); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		out.Encounter = rc.Encounter
	}
	return out, nil
}

func validateEncounter(enc *Encounter, knownCards map[string]struct{}) error {
	if len(enc.Players) == 0 {
		return fmt.Errorf("encounter has no players")
	}
	if len(enc.Opponents) == 0 {
		return fmt.Errorf("encounter has no opponents")
	}
	check := func(role string, entries []RosterEntry, wantUUID bool) error {
		for _, e := range entries {
			if strings.TrimSpace(e.Name) == "" {
				return fmt.Errorf("encounter %s missing 'name'", role)
			}
			if wantUUID && strings.TrimSpace(e.PlayerUUID) == "" {
				return fmt.Errorf("encounter player '%s' missing 'player_uuid'", e.Name)
			}
			if e.Health <= 0 {
				return fmt.Errorf("encounter %s '%s' needs positive health", role, e.Name)
			}
			if len(e.Deck) == 0 {
				return fmt.Errorf("encounter %s '%s' has an empty deck", role, e.Name)
			}
			for _, id := range e.Deck {
				if _, ok := knownCards[id]; !ok {
					return fmt.Errorf("encounter %s '%s' references unknown card '%s'", role, e.Name, id)
				}
			}
		}
		return nil
	}
	if err := check("player", enc.Players, true); err != nil {
		return err
	}
	return check("opponent", enc.Opponents, false)
}

// validateEffect walks a spec tree rejecting unknown kinds and malformed
// branches, so typos in card files fail at startup instead of mid-fight.
func validateEffect(spec game.EffectSpec, cardID string) error {
	if !game.KnownEffectKinds[spec.Kind] {
		return fmt.Errorf("card '%s': unknown effect kind '%s'", cardID, spec.Kind)
	}
	if spec.Kind == game.EffectEnterStance && spec.Stance == game.StanceNone {
		return fmt.Errorf("card '%s': enter_stance requires a stance", cardID)
	}
	if cond := spec.Condition; cond != nil {
		if cond.Then == nil {
			return fmt.Errorf("card '%s': condition missing 'then' effect", cardID)
		}
		if cond.Mode != game.CondReplace && cond.Mode != game.CondAddBonus {
			return fmt.Errorf("card '%s': condition mode must be replace or add_bonus", cardID)
		}
		if err := validateEffect(*cond.Then, cardID); err != nil {
			return err
		}
	}
	if s := spec.Scaling; s != nil && s.Cap < 0 {
		return fmt.Errorf("card '%s': scaling cap must be non-negative", cardID)
	}
	for _, add := range spec.Additional {
		if err := validateEffect(add, cardID); err != nil {
			return err
		}
	}
	return nil
}
