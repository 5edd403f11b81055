package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /ws: upgrades the connection and hands it to
// the connection manager, which owns subscriptions, catch-up, and
// fan-out. Blocks until the socket closes.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}
