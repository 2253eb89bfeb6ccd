package api

import (
	"net/http"

	"github.com/everdane/gauntlet/internal/constants"
	"github.com/everdane/gauntlet/internal/logging"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

// Subscribe upgrades the request to a websocket and streams combat
// events for the caller's combatant. The stream is one-way: inbound
// frames are read and discarded so pings keep the connection alive.
func (h *CombatHandler) Subscribe(c *gin.Context) {
	playerUUID := c.GetHeader(constants.HeaderPlayerUUID)
	if playerUUID == "" {
		playerUUID = c.Query("player")
	}
	if playerUUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrIdentityRequired})
		return
	}

	wsConn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		logging.Warn("websocket accept failed", logging.Fields{constants.LogFieldPlayerID: playerUUID, "error": err.Error()})
		return
	}
	defer wsConn.CloseNow()

	ctx := c.Request.Context()
	events, cancel := h.hub.Subscribe(playerUUID)
	defer cancel()

	// Drain the read side so client close frames are processed.
	go func() {
		for {
			if _, _, err := wsConn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			wsConn.Close(websocket.StatusNormalClosure, "server closing")
			return
		case ev, ok := <-events:
			if !ok {
				wsConn.Close(websocket.StatusNormalClosure, "subscription ended")
				return
			}
			if err := wsjson.Write(ctx, wsConn, ev); err != nil {
				return
			}
		}
	}
}
