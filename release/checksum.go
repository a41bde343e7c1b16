package release

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/isoforge/isoforge/constants"
)

// Sha512File returns the hex SHA-512 digest of the file at path.
func Sha512File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha512.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteChecksums writes a SHA512SUMS file in dir covering files, in
// the same format sha512sum(1) emits so that `sha512sum -c` verifies
// it. File names are sorted for a reproducible manifest.
func WriteChecksums(dir string, files []string) (string, error) {
	names := append([]string{}, files...)
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sum, err := Sha512File(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "%s  %s\n", sum, name)
	}

	path := filepath.Join(dir, constants.ChecksumFile)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", err
	}

	return path, nil
}
