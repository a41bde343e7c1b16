// Package virt boots images in short-lived libvirt virtual machines
// through virt-install and virsh. Both binaries are invoked as opaque
// tools; no libvirt client library is linked.
package virt

import (
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"github.com/google/uuid"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
)

// Firmware selects the boot path of a test VM.
type Firmware string

const (
	// FirmwareBIOS boots through legacy SeaBIOS.
	FirmwareBIOS Firmware = "bios"
	// FirmwareUEFI boots through OVMF.
	FirmwareUEFI Firmware = "uefi"
)

// Domain is one transient test VM.
type Domain struct {
	name       string
	iso        string
	memory     int
	osVariant  string
	storageDir string
	firmware   Firmware
}

// NewDomain prepares a domain booting iso with the given firmware.
// The name is salted so concurrent or leftover runs cannot collide.
func NewDomain(iso string, firmware Firmware, config types.TestConfig) *Domain {
	return &Domain{
		name:       "smoke-" + string(firmware) + "-" + uuid.New().String()[:8],
		iso:        iso,
		memory:     config.Memory,
		osVariant:  config.OSVariant,
		storageDir: config.StorageDir,
		firmware:   firmware,
	}
}

// Name returns the libvirt domain name.
func (d *Domain) Name() string {
	return d.name
}

// DiskPath is the transient scratch disk inside the storage pool dir.
func (d *Domain) DiskPath() string {
	return filepath.Join(d.storageDir, d.name+".qcow2")
}

func (d *Domain) installArgs() []string {
	args := []string{
		"--name", d.name,
		"--memory", strconv.Itoa(d.memory),
		"--disk", "path=" + d.DiskPath() + ",size=8,format=qcow2",
		"--cdrom", d.iso,
		"--os-variant", d.osVariant,
	}

	if d.firmware == FirmwareUEFI {
		args = append(args, "--boot", "uefi")
	}

	args = append(args, "--noautoconsole", "--noreboot")

	return args
}

// Create defines and starts the VM without attaching a console.
func (d *Domain) Create() error {
	args := d.installArgs()
	log.Debug(constants.VirtInstallCommand + " " + strings.Join(args, " "))

	out, err := exec.Command(constants.VirtInstallCommand, args...).CombinedOutput()
	if err != nil {
		return errors.Errorf("%s: %v\n%s", constants.VirtInstallCommand, err, out)
	}
	return nil
}

// State reports the current virsh domain state ("running", ...).
func (d *Domain) State() (string, error) {
	out, err := exec.Command(constants.VirshCommand, "domstate", d.name).Output()
	if err != nil {
		return "", err
	}
	return parseDomState(string(out)), nil
}

func parseDomState(out string) string {
	return strings.TrimSpace(out)
}

// WaitRunning polls the domain state until it reaches running or the
// timeout elapses.
func (d *Domain) WaitRunning(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		state, err := d.State()
		if err == nil && state == "running" {
			return nil
		}
		if err == nil && state == "crashed" {
			return errors.Errorf("domain %s crashed", d.name)
		}

		if time.Now().After(deadline) {
			if err != nil {
				return errors.Errorf("domain %s never came up: %v", d.name, err)
			}
			return errors.Errorf("domain %s stuck in state %q after %s", d.name, state, timeout)
		}

		time.Sleep(2 * time.Second)
	}
}

// Teardown destroys and undefines the domain and removes its scratch
// disk. Errors are logged, never returned: cleanup always runs to the
// end so a failed boot cannot leak a VM.
func (d *Domain) Teardown() {
	if out, err := exec.Command(constants.VirshCommand, "destroy", d.name).CombinedOutput(); err != nil {
		log.Warn("virsh destroy "+d.name+":", strings.TrimSpace(string(out)))
	}

	if out, err := exec.Command(constants.VirshCommand, "undefine", d.name, "--nvram").CombinedOutput(); err != nil {
		log.Warn("virsh undefine "+d.name+":", strings.TrimSpace(string(out)))
	}

	if err := removeDisk(d.DiskPath()); err != nil {
		log.Warn("removing " + d.DiskPath() + ": " + err.Error())
	}
}
