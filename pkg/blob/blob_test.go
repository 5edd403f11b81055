package blob

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKey(t *testing.T) {
	assert.Equal(t, "runs/run_abc/screenshot/step-3.png", RunKey("run_abc", "screenshot", "step-3.png"))
	assert.Equal(t, "runs/run_abc/", RunPrefix("run_abc"))
}

func TestMimeFor(t *testing.T) {
	assert.Equal(t, "image/png", MimeFor("step-1.png"))
	assert.Equal(t, "image/jpeg", MimeFor("frame.JPG"))
	assert.Equal(t, "video/webm", MimeFor("session.webm"))
	assert.Equal(t, "application/zip", MimeFor("trace.zip"))
	assert.Equal(t, "text/plain; charset=utf-8", MimeFor("run.log"))
	assert.Equal(t, "application/octet-stream", MimeFor("mystery.bin"))
}

func TestTypeFor(t *testing.T) {
	cases := []struct {
		name string
		typ  string
		ok   bool
	}{
		{"final.png", "screenshot", true},
		{"frame.JPEG", "screenshot", true},
		{"replay.mp4", "video", true},
		{"session.webm", "video", true},
		{"trace.zip", "trace", true},
		{"TRACE-run1.ZIP", "trace", true},
		{"bundle.zip", "", false},
		{"report.json", "log", true},
		{"run.log", "log", true},
		{"notes.txt", "log", true},
		{"spec.test.ts", "", false},
		{"mystery.bin", "", false},
	}
	for _, tc := range cases {
		typ, ok := TypeFor(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.typ, typ, tc.name)
	}
}

func TestFSStore_RoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key := RunKey("run_1", "log", "run.log")
	require.NoError(t, store.Put(ctx, key, strings.NewReader("hello logs"), "text/plain", 10))

	rc, err := store.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello logs", string(data))
}

func TestFSStore_GetMissing(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "runs/run_x/log/none.log")
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestFSStore_ListAndDeletePrefix(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, RunKey("run_1", "screenshot", "a.png"), strings.NewReader("a"), "", 1))
	require.NoError(t, store.Put(ctx, RunKey("run_1", "log", "run.log"), strings.NewReader("b"), "", 1))
	require.NoError(t, store.Put(ctx, RunKey("run_2", "log", "run.log"), strings.NewReader("c"), "", 1))

	objects, err := store.List(ctx, RunPrefix("run_1"))
	require.NoError(t, err)
	assert.Len(t, objects, 2)

	require.NoError(t, store.DeletePrefix(ctx, RunPrefix("run_1")))

	objects, err = store.List(ctx, RunPrefix("run_1"))
	require.NoError(t, err)
	assert.Empty(t, objects)

	// Unrelated runs are untouched
	objects, err = store.List(ctx, RunPrefix("run_2"))
	require.NoError(t, err)
	assert.Len(t, objects, 1)
}

func TestFSStore_RejectsTraversal(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	err = store.Put(context.Background(), "../escape.txt", strings.NewReader("x"), "", 1)
	require.Error(t, err)
}

func TestFSStore_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "runs/run_x/log/none.log"))
}
