package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Dashboards may be served from anywhere; the channel carries no secrets.
		return true
	},
}

// Handler upgrades the request and streams change events to the client.
func Handler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hub == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "realtime not available"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.logger.Debug("ws: upgrade failed", zap.Error(err))
			return
		}
		cl := newClient(hub, conn)
		if !hub.attach(cl) {
			conn.Close()
			return
		}

		go cl.writePump()
		cl.readPump()
	}
}
