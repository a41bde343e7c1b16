package virt

import (
	"strings"
	"testing"

	"github.com/isoforge/isoforge/types"
)

func testConfig() types.TestConfig {
	return types.TestConfig{
		StorageDir:  "/var/lib/libvirt/images",
		Memory:      2048,
		OSVariant:   "debiantesting",
		BootTimeout: 120,
	}
}

func TestInstallArgsBios(t *testing.T) {
	d := NewDomain("/tmp/test.iso", FirmwareBIOS, testConfig())

	args := strings.Join(d.installArgs(), " ")

	wantParts := []string{
		"--name " + d.Name(),
		"--memory 2048",
		"--disk path=/var/lib/libvirt/images/" + d.Name() + ".qcow2,size=8,format=qcow2",
		"--cdrom /tmp/test.iso",
		"--os-variant debiantesting",
		"--noautoconsole",
		"--noreboot",
	}
	for _, part := range wantParts {
		if !strings.Contains(args, part) {
			t.Errorf("args %q missing %q", args, part)
		}
	}

	if strings.Contains(args, "--boot uefi") {
		t.Errorf("bios domain must not request uefi firmware: %q", args)
	}
}

func TestInstallArgsUefi(t *testing.T) {
	d := NewDomain("/tmp/test.iso", FirmwareUEFI, testConfig())

	args := strings.Join(d.installArgs(), " ")

	if !strings.Contains(args, "--boot uefi") {
		t.Errorf("uefi domain must request uefi firmware: %q", args)
	}
}

func TestDomainNamesAreUnique(t *testing.T) {
	a := NewDomain("/tmp/test.iso", FirmwareBIOS, testConfig())
	b := NewDomain("/tmp/test.iso", FirmwareBIOS, testConfig())

	if a.Name() == b.Name() {
		t.Errorf("domains share name %q", a.Name())
	}
}

func TestDomainNameCarriesFirmware(t *testing.T) {
	d := NewDomain("/tmp/test.iso", FirmwareUEFI, testConfig())

	if !strings.HasPrefix(d.Name(), "smoke-uefi-") {
		t.Errorf("got %v, want smoke-uefi- prefix", d.Name())
	}
}

func TestParseDomState(t *testing.T) {
	testData := "running\n\n"
	if got := parseDomState(testData); got != "running" {
		t.Errorf("got %v, want running", got)
	}
}
