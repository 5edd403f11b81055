package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/pkg/models"
)

// createSpecHandler handles POST /api/v1/specs: hand-written or
// imported program text.
func (s *Server) createSpecHandler(c *gin.Context) {
	var req models.CreateSpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sp, err := s.specs.CreateSpec(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

// listSpecsHandler handles GET /api/v1/specs?recording_id=...
func (s *Server) listSpecsHandler(c *gin.Context) {
	recordingID := c.Query("recording_id")
	if recordingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recording_id is required"})
		return
	}

	specs, err := s.specs.ListSpecs(c.Request.Context(), recordingID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specs": specs})
}

// getSpecHandler handles GET /api/v1/specs/:id.
func (s *Server) getSpecHandler(c *gin.Context) {
	sp, err := s.specs.GetSpec(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

// updateSpecCodeHandler handles PUT /api/v1/specs/:id/code. A manual
// edit bumps the version, which invalidates in-flight patch write-backs
// against the old version.
func (s *Server) updateSpecCodeHandler(c *gin.Context) {
	var req UpdateSpecCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sp, err := s.specs.UpdateSpecCode(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

// setSpecStatusHandler handles POST /api/v1/specs/:id/status.
func (s *Server) setSpecStatusHandler(c *gin.Context) {
	var req SetSpecStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := spec.Status(req.Status)
	if err := spec.StatusValidator(status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + req.Status})
		return
	}

	sp, err := s.specs.SetSpecStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

// deleteSpecHandler handles DELETE /api/v1/specs/:id.
func (s *Server) deleteSpecHandler(c *gin.Context) {
	if err := s.specs.DeleteSpec(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listClarificationsHandler handles GET /api/v1/specs/:id/clarifications.
// Optional filter: status.
func (s *Server) listClarificationsHandler(c *gin.Context) {
	clarifications, err := s.clarifications.ListClarifications(
		c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clarifications": clarifications})
}

// answerClarificationHandler handles POST /api/v1/clarifications/:id/answer.
// Resolving the last pending question advances the draft spec to READY.
func (s *Server) answerClarificationHandler(c *gin.Context) {
	var req AnswerClarificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cl, err := s.clarifications.AnswerClarification(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// skipClarificationHandler handles POST /api/v1/clarifications/:id/skip.
func (s *Server) skipClarificationHandler(c *gin.Context) {
	cl, err := s.clarifications.SkipClarification(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}
