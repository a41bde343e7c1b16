package release

import (
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
)

// live-build artifacts all start with this prefix
const imagePrefix = "live-image-"

// ArtifactName maps a live-build artifact file name to the versioned
// release scheme <name>-<version>-<arch><suffix>, keeping whatever
// suffix the artifact carries (".hybrid.iso", ".packages", ...).
func ArtifactName(artifact, name, version string) (string, error) {
	base := filepath.Base(artifact)
	if !strings.HasPrefix(base, imagePrefix) {
		return "", errors.Errorf("%q is not a live-build artifact", base)
	}

	rest := strings.TrimPrefix(base, imagePrefix)
	dot := strings.Index(rest, ".")
	if dot < 1 {
		return "", errors.Errorf("cannot split architecture and suffix in %q", base)
	}

	arch := rest[:dot]
	suffix := rest[dot:]

	return name + "-" + version + "-" + arch + suffix, nil
}

// RenameAll maps every artifact path to its release name.
func RenameAll(artifacts []string, name, version string) (map[string]string, error) {
	renamed := map[string]string{}
	for _, a := range artifacts {
		n, err := ArtifactName(a, name, version)
		if err != nil {
			return nil, err
		}
		renamed[a] = n
	}
	return renamed, nil
}
