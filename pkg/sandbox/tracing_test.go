package sandbox

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeJPEG(t *testing.T, w, h int, seed uint8) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = seed + uint8(i%200)
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}))
	return buf.Bytes()
}

func readZip(t *testing.T, archive []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	files := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = data
	}
	return files
}

func TestBuildTraceArchive(t *testing.T) {
	frameA := makeJPEG(t, 8, 6, 10)
	frameC := makeJPEG(t, 8, 6, 90)
	frames := []frameEntry{
		{data: frameA, timestampMs: 1000},
		{data: frameA, timestampMs: 1040}, // identical bytes, new index
		{data: frameC, timestampMs: 1080},
	}
	doms := []domEntry{
		{label: "after step 1", html: "<html><body>one</body></html>"},
		{label: "flow-complete", html: "<html><body>two</body></html>"},
	}

	archive, err := buildTraceArchive(frames, doms, 900, 2000, 80)
	require.NoError(t, err)

	files := readZip(t, archive)

	nameA := fmt.Sprintf("%x.jpg", sha1.Sum(frameA))
	nameC := fmt.Sprintf("%x.jpg", sha1.Sum(frameC))
	assert.Equal(t, frameA, files["frames/"+nameA])
	assert.Equal(t, frameC, files["frames/"+nameC])

	var manifest screencastManifest
	require.NoError(t, json.Unmarshal(files["screencast-manifest.json"], &manifest))
	assert.Equal(t, 3, manifest.FrameCount)
	require.Len(t, manifest.Frames, 3)
	assert.Equal(t, 0, manifest.Frames[0].Index)
	assert.Equal(t, nameA, manifest.Frames[0].Filename)
	assert.Equal(t, nameA, manifest.Frames[1].Filename, "identical frames share one file")
	assert.Equal(t, nameC, manifest.Frames[2].Filename)
	assert.Equal(t, int64(1040), manifest.Frames[1].TimestampMs)
	assert.Equal(t, int64(900), manifest.StartTimestampMs)
	assert.Equal(t, int64(2000), manifest.EndTimestampMs)
	assert.Equal(t, 8, manifest.Width)
	assert.Equal(t, 6, manifest.Height)
	assert.Equal(t, 80, manifest.Quality)

	// Dedupe keeps a single copy of repeated frames in the archive.
	frameFiles := 0
	for name := range files {
		if len(name) > 7 && name[:7] == "frames/" {
			frameFiles++
		}
	}
	assert.Equal(t, 2, frameFiles)

	assert.Equal(t, []byte("<html><body>one</body></html>"), files["dom/000-after-step-1.html"])
	assert.Equal(t, []byte("<html><body>two</body></html>"), files["dom/001-flow-complete.html"])
}

func TestBuildTraceArchiveEmpty(t *testing.T) {
	archive, err := buildTraceArchive(nil, nil, 500, 600, 80)
	require.NoError(t, err)

	files := readZip(t, archive)
	require.Len(t, files, 1, "only the manifest belongs in an empty trace")

	var manifest screencastManifest
	require.NoError(t, json.Unmarshal(files["screencast-manifest.json"], &manifest))
	assert.Equal(t, 0, manifest.FrameCount)
	assert.Empty(t, manifest.Frames)
	assert.Zero(t, manifest.Width)
	assert.Equal(t, int64(500), manifest.StartTimestampMs)
}

func TestBuildTraceArchiveUndecodableFrame(t *testing.T) {
	// Frames that are not valid JPEG still land in the archive; only
	// the manifest dimensions stay unset.
	junk := []byte("not a jpeg at all")
	archive, err := buildTraceArchive([]frameEntry{{data: junk, timestampMs: 10}}, nil, 0, 20, 80)
	require.NoError(t, err)

	files := readZip(t, archive)
	name := fmt.Sprintf("frames/%x.jpg", sha1.Sum(junk))
	assert.Equal(t, junk, files[name])

	var manifest screencastManifest
	require.NoError(t, json.Unmarshal(files["screencast-manifest.json"], &manifest))
	assert.Equal(t, 1, manifest.FrameCount)
	assert.Zero(t, manifest.Width)
	assert.Zero(t, manifest.Height)
}
