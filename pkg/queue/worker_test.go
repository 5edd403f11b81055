package queue

import (
	"testing"
	"time"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
	"github.com/dappsmith/conductor/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		Concurrency:             2,
		MaxConcurrentRuns:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LockDuration:            300 * time.Second,
		LockRenewInterval:       60 * time.Second,
		ClaimRatePerMinute:      5,
		DefaultMaxAttempts:      3,
		RetryBackoffBase:        1 * time.Second,
		RunTimeout:              300 * time.Second,
		GracefulShutdownTimeout: 300 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		CancelPollInterval:      5 * time.Second,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentJobID)
	assert.Equal(t, 0, h.JobsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "job-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "job-abc", h.CurrentJobID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentJobID)
}

func TestClaimLimiter(t *testing.T) {
	l := newClaimLimiter(3)
	now := time.Now()

	assert.True(t, l.allow(now))
	assert.True(t, l.allow(now))
	assert.True(t, l.allow(now))
	assert.False(t, l.allow(now), "fourth claim within the window should be denied")
	assert.False(t, l.allow(now.Add(30*time.Second)), "window has not elapsed yet")

	// Once the window slides past the first claims, capacity frees up.
	later := now.Add(61 * time.Second)
	assert.True(t, l.allow(later))
}

func TestClaimLimiterUnlimited(t *testing.T) {
	l := newClaimLimiter(0)
	now := time.Now()
	for i := 0; i < 50; i++ {
		assert.True(t, l.allow(now), "zero limit means no rate limiting")
	}
}

func TestBackoffDelay(t *testing.T) {
	base := 1 * time.Second

	assert.Equal(t, 1*time.Second, backoffDelay(base, 1))
	assert.Equal(t, 2*time.Second, backoffDelay(base, 2))
	assert.Equal(t, 4*time.Second, backoffDelay(base, 3))
	assert.Equal(t, 8*time.Second, backoffDelay(base, 4))

	// Attempt below 1 clamps to the base delay.
	assert.Equal(t, 1*time.Second, backoffDelay(base, 0))
	assert.Equal(t, 1*time.Second, backoffDelay(base, -5))

	// Absurd attempt counts clamp instead of overflowing the shift.
	assert.Equal(t, base<<19, backoffDelay(base, 25))
}

func TestSuiteSpecCount(t *testing.T) {
	// Freshly built payload carries []string.
	n := suiteSpecCount(map[string]interface{}{"spec_ids": []string{"spec_a", "spec_b"}})
	assert.Equal(t, 2, n)

	// A payload reloaded from jsonb carries []interface{}.
	n = suiteSpecCount(map[string]interface{}{"spec_ids": []interface{}{"spec_a", "spec_b", "spec_c"}})
	assert.Equal(t, 3, n)

	assert.Equal(t, 0, suiteSpecCount(map[string]interface{}{}))
	assert.Equal(t, 0, suiteSpecCount(map[string]interface{}{"spec_ids": "not-a-list"}))
}

func TestJobTimeout(t *testing.T) {
	cfg := testQueueConfig()
	cfg.RunTimeout = 300 * time.Second
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	// Single-run kinds get the plain run timeout.
	j := &ent.Job{ID: "j1", Kind: job.KindExecute}
	assert.Equal(t, 300*time.Second, w.jobTimeout(j))

	j = &ent.Job{ID: "j2", Kind: job.KindExecuteHybrid}
	assert.Equal(t, 300*time.Second, w.jobTimeout(j))

	// Suite budget scales with the number of specs, plus slack.
	j = &ent.Job{
		ID:      "j3",
		Kind:    job.KindExecuteSuite,
		Payload: map[string]interface{}{"spec_ids": []string{"a", "b", "c"}},
	}
	assert.Equal(t, 4*300*time.Second, w.jobTimeout(j))

	// A suite with a missing spec list still gets at least double budget.
	j = &ent.Job{ID: "j4", Kind: job.KindExecuteSuite, Payload: map[string]interface{}{}}
	assert.Equal(t, 2*300*time.Second, w.jobTimeout(j))
}

func TestJobOwnerID(t *testing.T) {
	runID := "run_abc"
	j := &ent.Job{ID: "job-1", RunID: &runID}
	assert.Equal(t, "run_abc", jobOwnerID(j))

	empty := ""
	j = &ent.Job{ID: "job-2", RunID: &empty}
	assert.Equal(t, "job-2", jobOwnerID(j), "empty run id falls back to the job id")

	j = &ent.Job{ID: "job-3"}
	assert.Equal(t, "job-3", jobOwnerID(j))
}

func TestOwnerIDFromPayload(t *testing.T) {
	assert.Equal(t, "run_1",
		ownerIDFromPayload(map[string]interface{}{"run_id": "run_1"}))
	assert.Equal(t, "suite_1",
		ownerIDFromPayload(map[string]interface{}{"suite_run_id": "suite_1"}))

	// run_id wins when both are present (child runs of a suite).
	assert.Equal(t, "run_1",
		ownerIDFromPayload(map[string]interface{}{"run_id": "run_1", "suite_run_id": "suite_1"}))

	assert.Equal(t, "", ownerIDFromPayload(map[string]interface{}{}))
	assert.Equal(t, "", ownerIDFromPayload(map[string]interface{}{"run_id": 42}))
}
