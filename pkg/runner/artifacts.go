package runner

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dappsmith/conductor/pkg/blob"
)

// Artifact is a file the test program left in the work directory,
// classified for upload.
type Artifact struct {
	Name      string
	Type      string
	Path      string
	MimeType  string
	SizeBytes int64
}

// SweepArtifacts walks dir and collects every classifiable file.
// Paths matching an ignore glob are skipped, unknown extensions are
// not artifacts, and duplicates by (name, type) keep the first
// occurrence in walk order.
func SweepArtifacts(dir string, ignoreGlobs []string) ([]Artifact, error) {
	type key struct{ name, typ string }
	seen := make(map[key]bool)
	var out []Artifact

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, glob := range ignoreGlobs {
			if ok, _ := doublestar.Match(glob, rel); ok {
				return nil
			}
		}

		typ, ok := blob.TypeFor(d.Name())
		if !ok {
			return nil
		}
		k := key{d.Name(), typ}
		if seen[k] {
			return nil
		}
		seen[k] = true

		info, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, Artifact{
			Name:      d.Name(),
			Type:      typ,
			Path:      path,
			MimeType:  blob.MimeFor(d.Name()),
			SizeBytes: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sweep artifacts in %s: %w", dir, err)
	}
	return out, nil
}
