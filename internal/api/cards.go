package api

import (
	"net/http"

	"github.com/everdane/gauntlet/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListCards returns the full card catalog.
func (h *CombatHandler) ListCards(c *gin.Context) {
	cards, err := h.repo.GetCardTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	c.JSON(http.StatusOK, cards)
}
