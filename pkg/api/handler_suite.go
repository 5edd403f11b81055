package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/suiterun"
	"github.com/dappsmith/conductor/pkg/models"
)

// createSuiteRunHandler handles POST /api/v1/suite-runs: persists the
// suite and enqueues the execute-suite job. The spec list rides in the
// payload so the worker can size the job timeout to the suite.
func (s *Server) createSuiteRunHandler(c *gin.Context) {
	var req models.CreateSuiteRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sr, err := s.suites.CreateSuiteRun(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if _, err := s.queue.Enqueue(c.Request.Context(), job.KindExecuteSuite,
		map[string]interface{}{
			"suite_run_id": sr.ID,
			"spec_ids":     sr.SpecIds,
		}, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue suite: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sr)
}

// listSuiteRunsHandler handles GET /api/v1/suite-runs.
// Filters: project_id, limit.
func (s *Server) listSuiteRunsHandler(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	suites, err := s.suites.ListSuiteRuns(c.Request.Context(), c.Query("project_id"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suite_runs": suites})
}

// getSuiteRunHandler handles GET /api/v1/suite-runs/:id with child runs
// in suite order.
func (s *Server) getSuiteRunHandler(c *gin.Context) {
	sr, err := s.suites.GetSuiteRun(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sr)
}

// cancelSuiteRunHandler handles POST /api/v1/suite-runs/:id/cancel.
// Cancellation travels through the suite's job: pending jobs finalize
// immediately; a running suite handler observes the flag between
// children.
func (s *Server) cancelSuiteRunHandler(c *gin.Context) {
	suiteID := c.Param("id")
	ctx := c.Request.Context()

	sr, err := s.suites.GetSuiteRun(ctx, suiteID, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if _, err := s.queue.CancelByRunID(ctx, suiteID); err != nil {
		mapServiceError(c, err)
		return
	}
	if s.pool != nil {
		s.pool.CancelRun(suiteID)
	}

	// Never claimed: finalize the suite record directly.
	if sr.Status == suiterun.StatusPending {
		if _, err := s.suites.CompleteSuiteRun(ctx, suiteID, suiterun.StatusCancelled, "cancelled"); err != nil {
			mapServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, CancelResponse{
		ID:      suiteID,
		Message: "suite cancellation requested",
	})
}
