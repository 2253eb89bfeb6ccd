package api

import (
	"net/http"
	"strconv"

	"github.com/everdane/gauntlet/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListLeaderboard returns the top players by wins (desc), limited to top 10 by default.
func (h *CombatHandler) ListLeaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	players, err := h.svc.Leaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, players)
}
