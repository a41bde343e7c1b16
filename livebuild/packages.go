package livebuild

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Package is one entry of the live-image package manifest.
type Package struct {
	Name    string
	Version string
}

// PackagesFile locates the .packages manifest live-build leaves next
// to the image artifacts.
func (b *Builder) PackagesFile() (string, error) {
	matches, err := filepath.Glob(filepath.Join(b.workDir, "live-image-*.packages"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	return matches[0], nil
}

// ReadPackages parses a live-build .packages manifest: one package per
// line, name and version separated by whitespace.
func ReadPackages(path string) ([]Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	packages := []Package{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		p := Package{Name: fields[0]}
		if len(fields) > 1 {
			p.Version = fields[1]
		}
		packages = append(packages, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
