package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const manifestYAML = `
assets:
  - name: memtest
    url: https://example.org/pub/memtest.bin
    sha256: aaaa
    dest: config/includes.binary/boot
  - name: firmware
    url: https://example.org/pub/firmware.zip
    sha256: bbbb
    dest: config/includes.chroot/lib/firmware
    unzip: true
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(manifestYAML))

	assert.Nil(t, err)
	assert.Len(t, m.Assets, 2)
	assert.Equal(t, "memtest", m.Assets[0].Name)
	assert.True(t, m.Assets[1].Unzip)
}

func TestParseManifestRejectsUnknownKeys(t *testing.T) {
	_, err := ParseManifest([]byte("assets:\n  - name: x\n    uurl: typo\n"))

	assert.NotNil(t, err)
}

func TestParseManifestRejectsIncompleteAssets(t *testing.T) {
	tests := []string{
		"assets:\n  - name: x\n    sha256: aa\n    dest: d\n",
		"assets:\n  - name: x\n    url: https://example.org/f\n    dest: d\n",
		"assets:\n  - name: x\n    url: https://example.org/f\n    sha256: aa\n",
	}

	for _, doc := range tests {
		_, err := ParseManifest([]byte(doc))
		assert.NotNil(t, err)
	}
}

func TestFileName(t *testing.T) {
	a := &Asset{URL: "https://example.org/pub/memtest.bin?x=1"}

	name, err := a.FileName()

	assert.Nil(t, err)
	assert.Equal(t, "memtest.bin", name)
}

func TestFileNameWithoutPath(t *testing.T) {
	a := &Asset{URL: "https://example.org/"}

	_, err := a.FileName()

	assert.NotNil(t, err)
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestDownload(t *testing.T) {
	payload := []byte("asset payload")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	workDir := t.TempDir()
	asset := &Asset{
		Name:   "payload",
		URL:    srv.URL + "/payload.bin",
		Sha256: sha256Hex(payload),
		Dest:   "config/includes.binary",
	}

	d := NewDownloader(workDir, false)
	err := d.Download(asset)

	assert.Nil(t, err)

	target := filepath.Join(workDir, "config/includes.binary/payload.bin")
	data, err := os.ReadFile(target)
	assert.Nil(t, err)
	assert.Equal(t, payload, data)
}

func TestDownloadDigestMismatchRemovesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("unexpected content"))
	}))
	defer srv.Close()

	workDir := t.TempDir()
	asset := &Asset{
		Name:   "payload",
		URL:    srv.URL + "/payload.bin",
		Sha256: sha256Hex([]byte("expected content")),
		Dest:   ".",
	}

	d := NewDownloader(workDir, false)
	err := d.Download(asset)

	assert.NotNil(t, err)

	_, statErr := os.Stat(filepath.Join(workDir, "payload.bin"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownloadSkipsPresentFile(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	workDir := t.TempDir()
	asset := &Asset{
		Name:   "payload",
		URL:    srv.URL + "/payload.bin",
		Sha256: sha256Hex([]byte("payload")),
		Dest:   ".",
	}

	d := NewDownloader(workDir, false)
	assert.Nil(t, d.Download(asset))
	assert.Nil(t, d.Download(asset))
	assert.Equal(t, 1, requests)
}

func TestDownloadForceRefetches(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	workDir := t.TempDir()
	asset := &Asset{
		Name:   "payload",
		URL:    srv.URL + "/payload.bin",
		Sha256: sha256Hex([]byte("payload")),
		Dest:   ".",
	}

	d := NewDownloader(workDir, true)
	assert.Nil(t, d.Download(asset))
	assert.Nil(t, d.Download(asset))
	assert.Equal(t, 2, requests)
}
