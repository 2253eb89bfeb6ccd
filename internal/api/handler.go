package api

import (
	"github.com/everdane/gauntlet/internal/notify"
	"github.com/everdane/gauntlet/internal/service"
	"github.com/everdane/gauntlet/internal/storage"
)

// CombatHandler groups the combat-phase HTTP handlers.
type CombatHandler struct {
	svc  *service.CombatService
	repo storage.Repository
	hub  *notify.Hub
}

// NewCombatHandler creates a handler over the combat service, the
// repository and the notification hub.
func NewCombatHandler(svc *service.CombatService, repo storage.Repository, hub *notify.Hub) *CombatHandler {
	return &CombatHandler{svc: svc, repo: repo, hub: hub}
}
