package release

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/isoforge/isoforge/constants"
)

// sha512 of the ASCII string "isoforge"
const isoforgeSha512 = "34c679fddfcb03acea6d7c13d7f8794cf21125f35a3c52fbfd33b5f1f999c0501140896c5f0a610f0145cbc4634d71d2af72673e297246d6e8629f8b4978cad8"

func TestSha512File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	if err := os.WriteFile(path, []byte("isoforge"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Sha512File(path)
	if err != nil {
		t.Fatal(err)
	}

	if got != isoforgeSha512 {
		t.Errorf("got %v, want %v", got, isoforgeSha512)
	}
}

func TestWriteChecksums(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.iso", "a.iso"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("isoforge"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	path, err := WriteChecksums(dir, []string{"b.iso", "a.iso"})
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(path) != constants.ChecksumFile {
		t.Errorf("got %v, want %v", filepath.Base(path), constants.ChecksumFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := isoforgeSha512 + "  a.iso\n" + isoforgeSha512 + "  b.iso\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", string(data), want)
	}
}

func TestWriteChecksumsMissingFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := WriteChecksums(dir, []string{"nope.iso"}); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestChecksumLineFormat(t *testing.T) {
	// sha512sum -c expects exactly two spaces between digest and name
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x.iso"), []byte("isoforge"), 0644); err != nil {
		t.Fatal(err)
	}

	path, err := WriteChecksums(dir, []string{"x.iso"})
	if err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	line := strings.TrimSuffix(string(data), "\n")

	if !strings.Contains(line, "  x.iso") {
		t.Errorf("line %q is not sha512sum compatible", line)
	}
}
