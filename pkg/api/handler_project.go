package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dappsmith/conductor/pkg/models"
)

// createProjectHandler handles POST /api/v1/projects. The response is
// the only time the seed phrase leaves the service in plaintext.
func (s *Server) createProjectHandler(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listProjectsHandler handles GET /api/v1/projects.
func (s *Server) listProjectsHandler(c *gin.Context) {
	projects, err := s.projects.ListProjects(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// getProjectHandler handles GET /api/v1/projects/:id.
func (s *Server) getProjectHandler(c *gin.Context) {
	proj, err := s.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proj)
}

// updateProjectHandler handles PATCH /api/v1/projects/:id. Only name
// and dApp URL are mutable; wallet identity is fixed at creation.
func (s *Server) updateProjectHandler(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proj, err := s.projects.UpdateProject(c.Request.Context(), c.Param("id"), req.Name, req.DappURL)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proj)
}

// deleteProjectHandler handles DELETE /api/v1/projects/:id. Soft
// delete; the retention sweep purges the row and its blobs later.
func (s *Server) deleteProjectHandler(c *gin.Context) {
	if err := s.projects.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
