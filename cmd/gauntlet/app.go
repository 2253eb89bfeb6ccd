package main

import (
	"github.com/everdane/gauntlet/internal/config"
	"github.com/everdane/gauntlet/internal/game"
	"github.com/everdane/gauntlet/internal/logging"
	"github.com/everdane/gauntlet/internal/service"

	"github.com/google/uuid"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid gauntlet configuration", err, logging.Fields{"config_path": path, "hint": "create a gauntlet_config.json with a 'card_list' array of card objects (card_id,name,cost,effect) and optional keys: combat{...}, server.address, encounter{players,opponents}"})
	}
	return cfg
}

// logProgression is the standalone server's stand-in for the outer game's
// progression hook: it only records that the combat phase finished.
type logProgression struct{}

func (logProgression) OnAllFightsComplete() {
	logging.Info("all fights complete", nil)
}

// beginEncounterOrExit builds combatants from the configured encounter and
// opens the fights. A server without an encounter is useless, so a missing
// or unpairable roster is fatal.
func beginEncounterOrExit(svc *service.CombatService, cfg *config.LoadedConfig) {
	if cfg.Encounter == nil {
		logging.Fatal("No encounter configured", nil, logging.Fields{"hint": "add an 'encounter' object with 'players' and 'opponents' arrays to the configuration file"})
	}

	humans := make([]*game.Combatant, 0, len(cfg.Encounter.Players))
	for _, e := range cfg.Encounter.Players {
		humans = append(humans, combatantFromRoster(e, e.PlayerUUID, false, cfg.MaxEnergy))
	}
	opponents := make([]*game.Combatant, 0, len(cfg.Encounter.Opponents))
	for _, e := range cfg.Encounter.Opponents {
		opponents = append(opponents, combatantFromRoster(e, uuid.NewString(), true, cfg.MaxEnergy))
	}

	if err := svc.StartCombat(humans, opponents); err != nil {
		logging.Fatal("Failed to begin encounter", err, nil)
	}
}

func combatantFromRoster(e config.RosterEntry, id string, automated bool, maxEnergy int) *game.Combatant {
	deck := make([]string, len(e.Deck))
	copy(deck, e.Deck)
	return &game.Combatant{
		ID:        id,
		Name:      e.Name,
		Automated: automated,
		Health:    e.Health,
		MaxHealth: e.Health,
		MaxEnergy: maxEnergy,
		Deck:      deck,
	}
}
