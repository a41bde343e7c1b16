package release

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/log"
)

// Signer detaches signatures and exports the verification key through
// the gpg binary, which owns the keyring.
type Signer struct {
	// Key is the gpg identity (key id, fingerprint or uid) used for
	// signing.
	Key string
}

// NewSigner returns a Signer for key.
func NewSigner(key string) (*Signer, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("no signing key configured, set --signing-key or ISOFORGE_SIGNING_KEY")
	}
	return &Signer{Key: key}, nil
}

func (s *Signer) gpg(args ...string) error {
	log.Debug(constants.GpgCommand + " " + strings.Join(args, " "))

	cmd := exec.Command(constants.GpgCommand, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Errorf("%s %s: %v\n%s", constants.GpgCommand, args[0], err, out)
	}
	return nil
}

// DetachSign writes an armored detached signature of path next to it.
func (s *Signer) DetachSign(path string) (string, error) {
	sig := path + ".gpg"

	err := s.gpg(
		"--batch", "--yes",
		"--local-user", s.Key,
		"--armor",
		"--output", sig,
		"--detach-sign", path,
	)
	if err != nil {
		return "", err
	}

	return sig, nil
}

// ExportPublicKey writes the armored public half of the signing key
// into dir so users can verify the checksum signature.
func (s *Signer) ExportPublicKey(dir string) (string, error) {
	path := filepath.Join(dir, constants.PublicKeyFile)

	err := s.gpg(
		"--batch", "--yes",
		"--armor",
		"--output", path,
		"--export", s.Key,
	)
	if err != nil {
		return "", err
	}

	// an unknown key identity makes gpg export nothing instead of
	// failing
	fi, statErr := os.Stat(path)
	if statErr != nil || fi.Size() == 0 {
		return "", errors.Errorf("gpg exported no key material for %q", s.Key)
	}

	return path, nil
}
