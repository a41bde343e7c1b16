package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"

	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/util"
)

// Downloader fetches manifest assets into a working tree.
type Downloader struct {
	workDir string
	force   bool
}

// NewDownloader returns a Downloader rooted at workDir. force
// re-downloads files already present with a valid digest.
func NewDownloader(workDir string, force bool) *Downloader {
	return &Downloader{workDir: workDir, force: force}
}

// Sha256File returns the hex SHA-256 digest of the file at path.
func Sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// verify compares the file digest against the manifest digest.
func verify(path string, asset *Asset) error {
	sum, err := Sha256File(path)
	if err != nil {
		return err
	}
	if sum != asset.Sha256 {
		return errors.Errorf("digest mismatch for %s: got %s, manifest says %s", path, sum, asset.Sha256)
	}
	return nil
}

// DownloadAll fetches every asset of the manifest. The first failure
// aborts the rest.
func (d *Downloader) DownloadAll(m *Manifest) error {
	for i := range m.Assets {
		if err := d.Download(&m.Assets[i]); err != nil {
			return err
		}
	}
	return nil
}

// Download fetches one asset, verifies its digest and optionally
// extracts it. A digest mismatch removes the partial file.
func (d *Downloader) Download(asset *Asset) error {
	fileName, err := asset.FileName()
	if err != nil {
		return err
	}

	destDir := filepath.Join(d.workDir, asset.Dest)
	target := filepath.Join(destDir, fileName)

	if !d.force {
		if _, err := os.Stat(target); err == nil {
			if verify(target, asset) == nil {
				log.Info(asset.Name, "already present, skipping")
				return nil
			}
			// stale or truncated, fetch again
		}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	if err := fetch(asset.URL, target, asset.Name); err != nil {
		return err
	}

	if err := verify(target, asset); err != nil {
		os.Remove(target)
		return err
	}

	if asset.Unzip {
		if err := util.Unzip(target, destDir); err != nil {
			return err
		}
	}

	return nil
}

func fetch(url, target, label string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("GET %s: %s", url, resp.Status)
	}

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()

	bar := progressbar.DefaultBytes(resp.ContentLength, label)
	if _, err := io.Copy(io.MultiWriter(f, bar), resp.Body); err != nil {
		return err
	}

	return f.Close()
}

// PrintManifest renders the asset listing as a table.
func PrintManifest(m *Manifest) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Dest", "URL"})
	table.SetRowLine(true)

	for _, a := range m.Assets {
		table.Append([]string{a.Name, a.Dest, a.URL})
	}

	table.Render()
}
