// Package assets fetches the third party binaries an image needs but
// the archive does not ship, as listed in a YAML manifest.
package assets

import (
	"net/url"
	"os"
	"path"

	"github.com/go-errors/errors"
	"gopkg.in/yaml.v2"
)

// Asset is one downloadable third party file.
type Asset struct {
	// Name identifies the asset in logs and listings.
	Name string `yaml:"name"`

	// URL the asset is fetched from.
	URL string `yaml:"url"`

	// Sha256 is the expected hex digest of the downloaded file.
	Sha256 string `yaml:"sha256"`

	// Dest is the directory, relative to the working tree, the file
	// is placed in.
	Dest string `yaml:"dest"`

	// Unzip extracts the downloaded archive into Dest afterwards.
	Unzip bool `yaml:"unzip,omitempty"`
}

// Manifest lists every asset of the config tree.
type Manifest struct {
	Assets []Asset `yaml:"assets"`
}

// FileName derives the local file name from the asset URL.
func (a *Asset) FileName() (string, error) {
	u, err := url.Parse(a.URL)
	if err != nil {
		return "", err
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", errors.Errorf("cannot derive a file name from %q", a.URL)
	}
	return name, nil
}

// Validate checks the asset carries everything a download needs.
func (a *Asset) Validate() error {
	if a.URL == "" {
		return errors.Errorf("asset %q has no url", a.Name)
	}
	if a.Sha256 == "" {
		return errors.Errorf("asset %q has no sha256 digest", a.Name)
	}
	if a.Dest == "" {
		return errors.Errorf("asset %q has no dest directory", a.Name)
	}
	_, err := a.FileName()
	return err
}

// ParseManifest decodes a YAML asset manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.UnmarshalStrict(data, m); err != nil {
		return nil, err
	}

	for i := range m.Assets {
		if err := m.Assets[i].Validate(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}
