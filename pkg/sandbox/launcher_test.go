package sandbox

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitDevtoolsEndpoint(t *testing.T) {
	dir := t.TempDir()
	p := &browserProcess{profileDir: dir, done: make(chan struct{})}

	go func() {
		time.Sleep(150 * time.Millisecond)
		content := "38265\n/devtools/browser/0ae2330c-1b2c-4bf7-a060-9a6a22c63f8c\n"
		_ = os.WriteFile(filepath.Join(dir, devtoolsPortFile), []byte(content), 0o644)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	wsURL, err := p.awaitDevtoolsEndpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:38265/devtools/browser/0ae2330c-1b2c-4bf7-a060-9a6a22c63f8c", wsURL)
}

func TestAwaitDevtoolsEndpointIncompleteFile(t *testing.T) {
	dir := t.TempDir()
	p := &browserProcess{profileDir: dir, done: make(chan struct{})}

	// Only the port line: the browser has not finished writing yet.
	require.NoError(t, os.WriteFile(filepath.Join(dir, devtoolsPortFile), []byte("38265\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	_, err := p.awaitDevtoolsEndpoint(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out waiting for devtools endpoint")
}

func TestAwaitDevtoolsEndpointBrowserExited(t *testing.T) {
	dir := t.TempDir()
	p := &browserProcess{profileDir: dir, done: make(chan struct{})}
	p.exitErr = errors.New("exit status 21")
	close(p.done)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := p.awaitDevtoolsEndpoint(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser exited before devtools endpoint came up")
	assert.Contains(t, err.Error(), "exit status 21")
}
