package api

import (
	"net/http"

	"github.com/everdane/gauntlet/internal/constants"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the calling player's aggregate combat stats.
func (h *CombatHandler) GetProfile(c *gin.Context) {
	playerUUID := c.GetHeader(constants.HeaderPlayerUUID)
	if playerUUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrIdentityRequired})
		return
	}
	profile, err := h.repo.GetStatsByUUID(playerUUID)
	if err != nil || profile == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProfileNotFound})
		return
	}
	c.JSON(http.StatusOK, profile)
}
