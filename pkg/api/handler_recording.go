package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dappsmith/conductor/pkg/generator"
	"github.com/dappsmith/conductor/pkg/models"
)

// createRecordingHandler handles POST /api/v1/recordings.
func (s *Server) createRecordingHandler(c *gin.Context) {
	var req models.CreateRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := s.recordings.CreateRecording(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// listRecordingsHandler handles GET /api/v1/recordings.
// Filters: project_id, type.
func (s *Server) listRecordingsHandler(c *gin.Context) {
	recs, err := s.recordings.ListRecordings(c.Request.Context(),
		c.Query("project_id"), c.Query("type"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recordings": recs})
}

// getRecordingHandler handles GET /api/v1/recordings/:id.
func (s *Server) getRecordingHandler(c *gin.Context) {
	rec, err := s.recordings.GetRecording(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// deleteRecordingHandler handles DELETE /api/v1/recordings/:id.
func (s *Server) deleteRecordingHandler(c *gin.Context) {
	if err := s.recordings.DeleteRecording(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// generateSpecHandler handles POST /api/v1/recordings/:id/generate.
// Runs the recording through the generator: analysis first, then code.
// Open questions become pending clarifications on the new spec, which
// stays DRAFT until they are all resolved; a question-free generation
// lands NEEDS_REVIEW.
func (s *Server) generateSpecHandler(c *gin.Context) {
	var req GenerateSpecRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	rec, err := s.recordings.GetRecording(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	analysis, err := s.generator.Analyze(ctx, generator.AnalyzeRequest{
		RecordingID:   rec.ID,
		RecordingType: rec.RecordingType.String(),
		DappURL:       rec.URL,
		Actions:       rec.Actions,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "generator analysis failed: " + err.Error()})
		return
	}

	out, err := s.generator.Generate(ctx, generator.GenerateRequest{
		RecordingID:   rec.ID,
		RecordingType: rec.RecordingType.String(),
		DappURL:       rec.URL,
		Actions:       rec.Actions,
		Answers:       req.Answers,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "generator failed: " + err.Error()})
		return
	}
	if verr := out.Validate(); verr != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": verr.Error()})
		return
	}

	status := "needs_review"
	if len(analysis.Questions) > 0 {
		status = "draft"
	}
	sp, err := s.specs.CreateSpec(ctx, models.CreateSpecRequest{
		RecordingID: rec.ID,
		Code:        out.Code,
		Status:      status,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	questions := make([]string, 0, len(analysis.Questions))
	for _, q := range analysis.Questions {
		if _, cerr := s.clarifications.CreateClarification(ctx, models.CreateClarificationRequest{
			SpecID:   sp.ID,
			Question: q,
		}); cerr != nil {
			mapServiceError(c, cerr)
			return
		}
		questions = append(questions, q)
	}

	c.JSON(http.StatusCreated, GeneratedSpecResponse{
		Spec:      sp,
		Summary:   analysis.Summary,
		Steps:     analysis.Steps,
		Questions: questions,
	})
}
