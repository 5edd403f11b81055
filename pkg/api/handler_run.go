package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/queue"
)

// createRunHandler handles POST /api/v1/runs: persists the run and
// enqueues the job that will execute it. The run stays PENDING until a
// worker claims the job.
func (s *Server) createRunHandler(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SuiteRunID != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "suite child runs are created by the suite executor"})
		return
	}

	r, err := s.runs.CreateRun(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if _, err := s.queue.Enqueue(c.Request.Context(), queue.KindForMode(r.ExecutionMode),
		map[string]interface{}{"run_id": r.ID}, nil); err != nil {
		// The run row exists but nothing will execute it; surface that
		// instead of returning a run that silently never starts.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue run: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// listRunsHandler handles GET /api/v1/runs.
// Filters: spec_id, suite_run_id, status, mode, page, page_size.
func (s *Server) listRunsHandler(c *gin.Context) {
	filters := models.RunListFilters{
		SpecID:     c.Query("spec_id"),
		SuiteRunID: c.Query("suite_run_id"),
		Status:     c.Query("status"),
		Mode:       c.Query("mode"),
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			filters.Page = p
		}
	}
	if v := c.Query("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			filters.PageSize = ps
		}
	}

	runs, total, err := s.runs.ListRuns(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "total": total})
}

// getRunHandler handles GET /api/v1/runs/:id, artifacts included.
func (s *Server) getRunHandler(c *gin.Context) {
	r, err := s.runs.GetRun(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel. Cooperative:
// the DB flag is set for pollers on any pod, queued jobs are finalized,
// and the local pool context is cancelled when the run executes here.
// A cancel racing a natural terminal state loses quietly.
func (s *Server) cancelRunHandler(c *gin.Context) {
	runID := c.Param("id")
	ctx := c.Request.Context()

	r, err := s.runs.RequestCancel(ctx, runID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if _, err := s.queue.CancelByRunID(ctx, runID); err != nil {
		mapServiceError(c, err)
		return
	}
	if s.pool != nil {
		s.pool.CancelRun(runID)
	}

	// Never claimed: finalize straight to CANCELLED.
	if r.Status == run.StatusPending {
		if _, err := s.runs.CancelPending(ctx, runID); err != nil {
			mapServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, CancelResponse{
		ID:      runID,
		Message: "run cancellation requested",
	})
}

// healRunHandler handles POST /api/v1/runs/:id/heal: operator-initiated
// self-heal for a failed run. Eligibility (status, attempt budget) is
// enforced by the heal handler itself.
func (s *Server) healRunHandler(c *gin.Context) {
	runID := c.Param("id")
	ctx := c.Request.Context()

	r, err := s.runs.GetRun(ctx, runID, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if r.Status != run.StatusFailed {
		c.JSON(http.StatusConflict, gin.H{"error": "only failed runs can be healed"})
		return
	}

	if _, err := s.queue.Enqueue(ctx, job.KindSelfHeal,
		map[string]interface{}{"run_id": runID}, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue self-heal: " + err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"run_id": runID, "message": "self-heal queued"})
}

// deleteRunHandler handles DELETE /api/v1/runs/:id. Artifacts cascade
// in the database; their blobs are deleted first.
func (s *Server) deleteRunHandler(c *gin.Context) {
	if err := s.runs.DeleteRun(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// startStreamHandler handles POST /api/v1/runs/:id/stream/start. The
// viewer ports exist once the sandbox is up; until then 409 tells the
// client to retry.
func (s *Server) startStreamHandler(c *gin.Context) {
	r, err := s.runs.GetRun(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if r.StreamingMode != run.StreamingModeVnc {
		c.JSON(http.StatusConflict, gin.H{"error": "run was not created with streaming_mode VNC"})
		return
	}
	if r.Status != run.StatusRunning || len(r.StreamState) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "stream is not available yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": r.ID, "stream": r.StreamState})
}

// stopStreamHandler handles POST /api/v1/runs/:id/stream/stop. Clears
// the persisted viewer state; the sandbox keeps running.
func (s *Server) stopStreamHandler(c *gin.Context) {
	runID := c.Param("id")
	if err := s.runs.SaveStreamState(c.Request.Context(), runID, map[string]interface{}{}); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": runID, "message": "stream stopped"})
}
