// Package docgen assembles the documentation tree: markdown from the
// repository, a generated package list, then a sphinx-build run over
// the result. The documentation engine itself stays external.
package docgen

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/afero"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/livebuild"
	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
)

// Generator builds the sphinx source tree on an afero filesystem so
// tests can run against memory.
type Generator struct {
	fs     afero.Fs
	config types.DocConfig
}

// NewGenerator returns a Generator over fs.
func NewGenerator(fs afero.Fs, config types.DocConfig) *Generator {
	return &Generator{fs: fs, config: config}
}

// CopyMarkdown copies every .md file of the configured directories
// into the sphinx source tree, keeping the relative layout.
func (g *Generator) CopyMarkdown() error {
	for _, dir := range g.config.MarkdownDirs {
		err := afero.Walk(g.fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || !strings.HasSuffix(path, ".md") {
				return nil
			}

			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}

			return g.copyFile(path, filepath.Join(g.config.SourceDir, rel))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) copyFile(src, dst string) error {
	data, err := afero.ReadFile(g.fs, src)
	if err != nil {
		return err
	}

	if err := g.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return afero.WriteFile(g.fs, dst, data, 0644)
}

// WritePackageList renders the package list markdown into the sphinx
// source tree.
func (g *Generator) WritePackageList(packages []livebuild.Package) error {
	path := filepath.Join(g.config.SourceDir, "packages.md")

	if err := g.fs.MkdirAll(g.config.SourceDir, 0755); err != nil {
		return err
	}
	return afero.WriteFile(g.fs, path, []byte(RenderPackageList(packages)), 0644)
}

// RenderPackageList formats the installed package manifest as a
// markdown table.
func RenderPackageList(packages []livebuild.Package) string {
	var sb strings.Builder

	sb.WriteString("# Installed packages\n\n")
	sb.WriteString("| Package | Version |\n")
	sb.WriteString("| ------- | ------- |\n")
	for _, p := range packages {
		sb.WriteString("| " + p.Name + " | " + p.Version + " |\n")
	}

	return sb.String()
}

// Sphinx runs the HTML builder over the source tree.
func (g *Generator) Sphinx() error {
	args := []string{"-b", "html", g.config.SourceDir, g.config.OutputDir}
	log.Debug(constants.SphinxCommand + " " + strings.Join(args, " "))

	cmd := exec.Command(constants.SphinxCommand, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Errorf("%s: %v", constants.SphinxCommand, err)
	}
	return nil
}
