package downloadHelper

import (
	"archive/zip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/goleak"
	"gotest.tools/v3/assert"
)

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geode.zip" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("zip bytes"))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "geode_win.zip")

	err := Download(context.Background(), server.URL+"/geode.zip", dst, 10*time.Second)
	assert.NilError(t, err)

	content, err := os.ReadFile(dst)
	assert.NilError(t, err)
	assert.Equal(t, string(content), "zip bytes")
}

func TestDownloadBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not here"))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "geode_win.zip")

	err := Download(context.Background(), server.URL+"/missing.zip", dst, 10*time.Second)

	var statusErr *StatusError
	assert.Assert(t, errors.As(err, &statusErr))
	assert.Equal(t, statusErr.StatusCode, http.StatusNotFound)

	_, err = os.Stat(dst)
	assert.Assert(t, os.IsNotExist(err))
}

func TestDownloadTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/geode.zip"
	server.Close()

	dst := filepath.Join(t.TempDir(), "geode_win.zip")

	err := Download(context.Background(), url, dst, 10*time.Second)
	assert.ErrorContains(t, err, url)

	var statusErr *StatusError
	assert.Assert(t, !errors.As(err, &statusErr))

	_, err = os.Stat(dst)
	assert.Assert(t, os.IsNotExist(err))
}

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	assert.NilError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		assert.NilError(t, err)
		_, err = entry.Write([]byte(content))
		assert.NilError(t, err)
	}
	assert.NilError(t, w.Close())
}

// started by an init in go-getter's dependencies
const opencensusWorker = "go.opencensus.io/stats/view.(*worker).start"

func TestExtract(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction(opencensusWorker))

	dir := t.TempDir()
	archive := filepath.Join(dir, "geode_win.zip")
	writeZip(t, archive, map[string]string{
		"Geode.dll":             "loader",
		"xinput1_4.dll":         "proxy",
		"geode/resources/a.txt": "nested",
		"geode/unzipped/empty/": "",
	})

	dst := filepath.Join(dir, "Geometry Dash")
	assert.NilError(t, os.MkdirAll(dst, 0o755))
	assert.NilError(t, os.WriteFile(filepath.Join(dst, "GeometryDash.exe"), []byte("game"), 0o644))

	assert.NilError(t, Extract(archive, dst))

	for name, expected := range map[string]string{
		"Geode.dll":             "loader",
		"xinput1_4.dll":         "proxy",
		"geode/resources/a.txt": "nested",
		"GeometryDash.exe":      "game",
	} {
		content, err := os.ReadFile(filepath.Join(dst, name))
		assert.NilError(t, err)
		assert.Equal(t, string(content), expected)
	}

	info, err := os.Stat(filepath.Join(dst, "geode", "unzipped", "empty"))
	assert.NilError(t, err)
	assert.Assert(t, info.IsDir())
}

func TestExtractCorruptArchive(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction(opencensusWorker))

	dir := t.TempDir()
	archive := filepath.Join(dir, "geode_win.zip")
	assert.NilError(t, os.WriteFile(archive, []byte("not a zip"), 0o644))

	err := Extract(archive, filepath.Join(dir, "out"))
	assert.ErrorContains(t, err, archive)
}
