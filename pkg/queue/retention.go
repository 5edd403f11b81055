package queue

import (
	"context"
	"fmt"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/job"
)

var allKinds = []job.Kind{
	job.KindExecute,
	job.KindExecuteHybrid,
	job.KindExecuteAgent,
	job.KindExecuteSuite,
	job.KindSelfHeal,
}

// TrimFinished enforces the finished-job retention bounds from config:
// per kind, the newest RemoveOnComplete completed jobs survive, and the
// newest RemoveOnFail failed or cancelled jobs. A bound of zero keeps
// that class unbounded. Returns the number of jobs deleted.
func (q *Queue) TrimFinished(ctx context.Context) (int, error) {
	classes := []struct {
		statuses []job.Status
		keep     int
	}{
		{[]job.Status{job.StatusCompleted}, q.config.RemoveOnComplete},
		{[]job.Status{job.StatusFailed, job.StatusCancelled}, q.config.RemoveOnFail},
	}

	total := 0
	for _, kind := range allKinds {
		for _, class := range classes {
			if class.keep <= 0 {
				continue
			}
			ids, err := q.client.Job.Query().
				Where(job.KindEQ(kind), job.StatusIn(class.statuses...)).
				Order(ent.Desc(job.FieldCompletedAt)).
				Offset(class.keep).
				IDs(ctx)
			if err != nil {
				return total, fmt.Errorf("failed to find trimmable %s jobs: %w", kind, err)
			}
			if len(ids) == 0 {
				continue
			}
			n, err := q.client.Job.Delete().Where(job.IDIn(ids...)).Exec(ctx)
			if err != nil {
				return total, fmt.Errorf("failed to trim %s jobs: %w", kind, err)
			}
			total += n
		}
	}
	return total, nil
}
