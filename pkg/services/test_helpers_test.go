package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// seedProject creates a project row directly through ent.
func seedProject(ctx context.Context, t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	project, err := client.Project.Create().
		SetID("proj_" + uuid.New().String()[:8]).
		SetName("service test project").
		SetDappURL("https://dapp.example.com").
		SetWalletAddress("0xabc").
		SetWalletSeedCipher("sealed").
		Save(ctx)
	require.NoError(t, err)
	return project
}

// seedSpecIn adds a recording + spec under the given project.
func seedSpecIn(ctx context.Context, t *testing.T, client *ent.Client, projectID string, status spec.Status) *ent.Spec {
	t.Helper()
	suffix := uuid.New().String()[:8]

	rec, err := client.Recording.Create().
		SetID("rec_" + suffix).
		SetProjectID(projectID).
		SetName(fmt.Sprintf("flow %s", suffix)).
		SetRecordingType(recording.RecordingTypeFlow).
		SetActions([]map[string]interface{}{{"type": "click", "selector": "#swap"}}).
		Save(ctx)
	require.NoError(t, err)

	sp, err := client.Spec.Create().
		SetID("spec_" + suffix).
		SetRecordingID(rec.ID).
		SetCode("async function main() {}").
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return sp
}

// seedSpec builds the full project → recording → spec chain.
func seedSpec(ctx context.Context, t *testing.T, client *ent.Client, status spec.Status) *ent.Spec {
	t.Helper()
	project := seedProject(ctx, t, client)
	return seedSpecIn(ctx, t, client, project.ID, status)
}

// seedRun creates a run for a fresh ready spec in the given status.
func seedRun(ctx context.Context, t *testing.T, client *ent.Client, status run.Status) *ent.Run {
	t.Helper()
	sp := seedSpec(ctx, t, client, spec.StatusReady)

	r, err := client.Run.Create().
		SetID("run_" + uuid.New().String()[:8]).
		SetSpecID(sp.ID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return r
}

// seedSuiteRun creates a pending suite run over n ready specs that all
// live in one project.
func seedSuiteRun(ctx context.Context, t *testing.T, client *ent.Client, n int) *ent.SuiteRun {
	t.Helper()
	project := seedProject(ctx, t, client)

	specIDs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		specIDs = append(specIDs, seedSpecIn(ctx, t, client, project.ID, spec.StatusReady).ID)
	}

	sr, err := client.SuiteRun.Create().
		SetID("suite_" + uuid.New().String()[:8]).
		SetProjectID(project.ID).
		SetSpecIds(specIDs).
		SetStatus(suiterun.StatusPending).
		SetTotalTests(n).
		Save(ctx)
	require.NoError(t, err)
	return sr
}
