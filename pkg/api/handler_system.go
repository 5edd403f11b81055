package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dappsmith/conductor/pkg/database"
	"github.com/dappsmith/conductor/pkg/version"
)

// healthzHandler handles GET /healthz: process liveness only.
func (s *Server) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Full()})
}

// readyzHandler handles GET /readyz: the pod can take traffic iff the
// database answers and the worker pool is healthy.
func (s *Server) readyzHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unready",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	if s.pool != nil {
		if ph := s.pool.Health(); !ph.IsHealthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unready",
				"database": dbHealth,
				"pool":     ph,
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "database": dbHealth})
}

// systemInfoHandler handles GET /api/v1/system/info.
func (s *Server) systemInfoHandler(c *gin.Context) {
	info := SystemInfoResponse{
		Version:       version.Full(),
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
	}
	if s.pool != nil {
		info.Pool = s.pool.Health()
	}
	if s.supervisor != nil {
		held, total := s.supervisor.Ports().Occupancy()
		info.StreamPorts = &PortOccupancy{Held: held, Total: total}
	}
	if s.connManager != nil {
		info.ActiveWebsockets = s.connManager.ActiveConnections()
	}
	c.JSON(http.StatusOK, info)
}
