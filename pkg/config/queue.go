package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are enqueued, claimed, leased, and retried.
type QueueConfig struct {
	// Concurrency is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	Concurrency int `yaml:"concurrency"`

	// MaxConcurrentRuns is the global limit of jobs being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LockDuration is the job claim lease. A job whose lock expires
	// without renewal is requeued by the orphan detector.
	LockDuration time.Duration `yaml:"lock_duration_ms"`

	// LockRenewInterval is how often a running handler renews its lease
	// and heartbeat.
	LockRenewInterval time.Duration `yaml:"lock_renew_ms"`

	// ClaimRatePerMinute bounds how many jobs one worker may claim per
	// minute.
	ClaimRatePerMinute int `yaml:"claim_rate_per_minute"`

	// DefaultMaxAttempts is the retry budget for jobs enqueued without
	// an explicit attempts option.
	DefaultMaxAttempts int `yaml:"default_max_attempts"`

	// RetryBackoffBase is the base of the exponential retry backoff:
	// delay = base * 2^(attempt-1).
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`

	// RunTimeout is the maximum time a single job handler may run.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown. Should match RunTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for expired locks.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// CancelPollInterval is how often a running handler polls the record
	// store for a cancellation request.
	CancelPollInterval time.Duration `yaml:"cancel_poll_interval"`

	// RemoveOnComplete / RemoveOnFail bound how many finished jobs per
	// kind the cleanup pass retains.
	RemoveOnComplete int `yaml:"remove_on_complete"`
	RemoveOnFail     int `yaml:"remove_on_fail"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Concurrency:             1,
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
		RemoveOnComplete:        100,
		RemoveOnFail:            100,
	}
}
