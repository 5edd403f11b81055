// Package blob provides a uniform artifact store over S3-compatible
// object storage, with a filesystem backend for local dev and tests.
// Keys follow runs/{runId}/{type}/{name}.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Store is the blob store surface the rest of the system programs
// against.
type Store interface {
	// Put writes an object. size may be -1 when unknown.
	Put(ctx context.Context, key string, r io.Reader, contentType string, size int64) error
	// Get opens an object for reading. Missing keys return an error
	// satisfying IsNotExist.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// List returns objects under a key prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	// Delete removes one object. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every object under a prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// ErrNotExist marks a Get against a missing key.
type ErrNotExist struct {
	Key string
}

func (e *ErrNotExist) Error() string {
	return fmt.Sprintf("blob %q does not exist", e.Key)
}

// IsNotExist reports whether err means the object was missing.
func IsNotExist(err error) bool {
	var enoent *ErrNotExist
	return errors.As(err, &enoent)
}

// RunKey builds the canonical key for a run artifact.
func RunKey(runID, artifactType, name string) string {
	return path.Join("runs", runID, artifactType, name)
}

// RunPrefix is the key prefix owning every blob of a run.
func RunPrefix(runID string) string {
	return path.Join("runs", runID) + "/"
}

// MimeFor maps an artifact file name to its content type. Unknown
// extensions fall back to application/octet-stream.
func MimeFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webm":
		return "video/webm"
	case ".mp4":
		return "video/mp4"
	case ".zip":
		return "application/zip"
	case ".json":
		return "application/json"
	case ".txt", ".log":
		return "text/plain; charset=utf-8"
	case ".html":
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// TypeFor maps an artifact file name to its artifact type. Used by the
// post-run artifact sweep to classify files the test program left in
// the staging directory. Only known extensions classify; zip archives
// count as traces only when the name says so, and everything else is
// not an artifact (ok false) so staged sources and stray files are
// never swept up.
func TypeFor(name string) (string, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return "screenshot", true
	case ".webm", ".mp4":
		return "video", true
	case ".zip":
		if strings.Contains(strings.ToLower(name), "trace") {
			return "trace", true
		}
		return "", false
	case ".json", ".txt", ".log":
		return "log", true
	default:
		return "", false
	}
}
