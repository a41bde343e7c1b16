// Package release packages built images for distribution: versioned
// renaming, checksums, a detached signature and a source archive.
// Every step wraps one external command or one file operation; the
// first failure aborts the rest.
package release

import (
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
)

// Release runs the packaging sequence for one version.
type Release struct {
	config  *types.Config
	version string
	dir     string
}

// New prepares a Release for config. The version is taken from config
// or, when empty, from the current git tag.
func New(config *types.Config) (*Release, error) {
	version := config.Version
	if version == "" {
		v, err := GitVersion(config.WorkDir)
		if err != nil {
			return nil, err
		}
		version = v
	}

	return &Release{
		config:  config,
		version: version,
		dir:     filepath.Join(config.Release.Dir, version),
	}, nil
}

// Version returns the resolved release version.
func (r *Release) Version() string {
	return r.version
}

// Dir returns the directory artifacts are placed into.
func (r *Release) Dir() string {
	return r.dir
}

// Run packages artifacts: move and rename into the release directory,
// checksum, sign, export the verification key and archive the source
// tree. The signer is created first so a missing key aborts before any
// artifact is moved.
func (r *Release) Run(artifacts []string) error {
	signer, err := NewSigner(r.config.Release.SigningKey)
	if err != nil {
		return err
	}

	renamed, err := RenameAll(artifacts, r.config.Name, r.version)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return err
	}

	names := []string{}
	for src, name := range renamed {
		if err := moveFile(src, filepath.Join(r.dir, name)); err != nil {
			return err
		}
		names = append(names, name)
	}

	sums, err := WriteChecksums(r.dir, names)
	if err != nil {
		return err
	}

	if _, err := signer.DetachSign(sums); err != nil {
		return err
	}

	if _, err := signer.ExportPublicKey(r.dir); err != nil {
		return err
	}

	archive := filepath.Join(r.dir, r.config.Name+"-"+r.version+"-source.zip")
	if err := SourceArchive(r.config.WorkDir, r.version, archive); err != nil {
		return err
	}

	return nil
}

// Publish uploads the whole release directory when a mirror is
// configured.
func (r *Release) Publish() error {
	publisher := NewPublisher(r.config.Release.Publish)
	if !publisher.Enabled() {
		log.Info("no mirror configured, skipping publish")
		return nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return err
	}

	files := []string{}
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(r.dir, e.Name()))
		}
	}

	return publisher.Upload(r.version, files)
}

// PrintArtifacts renders a table of the release directory contents.
func (r *Release) PrintArtifacts() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Artifact", "Size"})
	table.SetRowLine(true)

	for _, e := range entries {
		fi, err := e.Info()
		if err != nil {
			return err
		}
		table.Append([]string{e.Name(), humanize.Bytes(uint64(fi.Size()))})
	}

	table.Render()
	return nil
}

// moveFile renames src to dst, falling back to copy+remove when the
// release directory sits on another filesystem.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := out.ReadFrom(in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
