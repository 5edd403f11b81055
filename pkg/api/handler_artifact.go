package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// listArtifactsHandler handles GET /api/v1/runs/:id/artifacts.
// Optional filter: type.
func (s *Server) listArtifactsHandler(c *gin.Context) {
	arts, err := s.artifacts.ListArtifacts(c.Request.Context(), c.Param("id"), c.Query("type"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artifacts": arts})
}

// getArtifactHandler handles GET /api/v1/artifacts/:id (metadata only).
func (s *Server) getArtifactHandler(c *gin.Context) {
	a, err := s.artifacts.GetArtifact(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// downloadArtifactHandler handles GET /api/v1/artifacts/:id/download,
// streaming the blob.
func (s *Server) downloadArtifactHandler(c *gin.Context) {
	a, rc, err := s.artifacts.OpenArtifact(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Name))
	c.DataFromReader(http.StatusOK, a.SizeBytes, a.MimeType, rc, nil)
}
