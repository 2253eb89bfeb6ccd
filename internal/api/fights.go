package api

import (
	"net/http"

	"github.com/everdane/gauntlet/internal/constants"
	"github.com/everdane/gauntlet/internal/service"

	"github.com/gin-gonic/gin"
)

type PlayCardRequest struct {
	CardID string `json:"card_id"`
}

// PlayCard handles RequestPlayCard for the calling connection's own
// combatant. Rejections carry user-facing text and change no state.
func (h *CombatHandler) PlayCard(c *gin.Context) {
	playerUUID := c.GetHeader(constants.HeaderPlayerUUID)
	if playerUUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrIdentityRequired})
		return
	}
	var req PlayCardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	if err := h.svc.PlayCard(playerUUID, req.CardID); err != nil {
		h.respondCombatError(c, err, constants.ErrFailedPlayCard)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "card played"})
}

// EndTurn handles RequestEndTurn for the calling connection's own
// combatant.
func (h *CombatHandler) EndTurn(c *gin.Context) {
	playerUUID := c.GetHeader(constants.HeaderPlayerUUID)
	if playerUUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrIdentityRequired})
		return
	}
	if err := h.svc.EndTurn(playerUUID); err != nil {
		h.respondCombatError(c, err, constants.ErrFailedEndTurn)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "turn ended"})
}

// GetFight returns the caller's fight snapshot (opponent hand redacted).
func (h *CombatHandler) GetFight(c *gin.Context) {
	playerUUID := c.GetHeader(constants.HeaderPlayerUUID)
	if playerUUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrIdentityRequired})
		return
	}
	snap, err := h.svc.FightView(playerUUID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFightNotFound})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// respondCombatError maps service sentinels onto HTTP responses.
func (h *CombatHandler) respondCombatError(c *gin.Context, err error, fallback string) {
	switch err {
	case service.ErrFightNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFightNotFound})
	case service.ErrNotYourTurn:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotYourTurn})
	case service.ErrFightOver:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrFightOver})
	case service.ErrInsufficientEnergy:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrInsufficientEnergy})
	case service.ErrUnknownCard:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownCard})
	case service.ErrCardNotInHand:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCardNotInHand})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}
