package main

import (
	"os"
	"time"

	"github.com/everdane/gauntlet/internal/api"
	"github.com/everdane/gauntlet/internal/catalog"
	"github.com/everdane/gauntlet/internal/combat"
	"github.com/everdane/gauntlet/internal/constants"
	"github.com/everdane/gauntlet/internal/deck"
	"github.com/everdane/gauntlet/internal/engine"
	"github.com/everdane/gauntlet/internal/logging"
	"github.com/everdane/gauntlet/internal/notify"
	"github.com/everdane/gauntlet/internal/service"
	"github.com/everdane/gauntlet/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration (required). Path may be provided via the
	// GAUNTLET_CONFIG env var or defaults to ./gauntlet_config.json in
	// the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./gauntlet_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via GAUNTLET_DB. Default to a
	// `data/` directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/gauntlet.db"
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.Cards)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db, cfg.Cards)

	cat := catalog.New(cfg.Cards)
	registry := combat.NewRegistry(time.Now().UnixNano())
	hub := notify.NewHub(func(fightID string) []string {
		f := registry.Get(fightID)
		if f == nil {
			return nil
		}
		return []string{f.Player.ID, f.Opponent.ID}
	})

	session := combat.NewSession(combat.SessionDeps{
		Registry:    registry,
		Resolver:    engine.NewResolver(cfg.Tuning),
		Catalog:     cat,
		Hands:       deck.NewManager(),
		Notifier:    hub,
		Progression: logProgression{},
		Rules:       cfg.Rules,
	})
	defer session.Close()

	svc := service.NewCombatService(session, repo)
	session.SetOnFightEnd(svc.HandleFightEnd)

	beginEncounterOrExit(svc, cfg)

	handler := api.NewCombatHandler(svc, repo, hub)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteCards, handler.ListCards)
		apiRoutes.GET(constants.RouteProfile, handler.GetProfile)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteFightState, handler.GetFight)
		apiRoutes.POST(constants.RouteFightPlay, handler.PlayCard)
		apiRoutes.POST(constants.RouteFightEnd, handler.EndTurn)
		apiRoutes.GET(constants.RouteNotifySock, handler.Subscribe)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
