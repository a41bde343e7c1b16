// Package smoketest runs the operational checks against a built image:
// the media size gate and a boot of the ISO under both firmware paths.
package smoketest

import (
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-errors/errors"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
	"github.com/isoforge/isoforge/virt"
)

// CheckSize fails when the image at path does not fit under limit
// bytes.
func CheckSize(path string, limit int64) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}

	if fi.Size() >= limit {
		return errors.Errorf("image %s is %s, the cap is %s",
			path, humanize.IBytes(uint64(fi.Size())), humanize.IBytes(uint64(limit)))
	}

	log.Info("image", path, "is", humanize.IBytes(uint64(fi.Size())),
		"- under the", humanize.IBytes(uint64(limit)), "cap")
	return nil
}

// Runner boots an ISO in transient VMs.
type Runner struct {
	config types.TestConfig
	iso    string
	boot   func(virt.Firmware) error
}

// NewRunner returns a Runner booting iso with config.
func NewRunner(iso string, config types.TestConfig) *Runner {
	r := &Runner{config: config, iso: iso}
	r.boot = r.bootOnce
	return r
}

// BootAll boots the ISO once with BIOS firmware and once with UEFI.
// Both boots run even when the first fails; teardown of each VM is
// unconditional. The first boot failure is reported after cleanup.
func (r *Runner) BootAll() error {
	var firstErr error

	for _, firmware := range []virt.Firmware{virt.FirmwareBIOS, virt.FirmwareUEFI} {
		if err := r.boot(firmware); err != nil {
			log.Error(err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (r *Runner) bootOnce(firmware virt.Firmware) error {
	domain := virt.NewDomain(r.iso, firmware, r.config)
	defer domain.Teardown()

	log.Info("booting", r.iso, "with", string(firmware), "firmware as", domain.Name())

	if err := domain.Create(); err != nil {
		return err
	}

	timeout := time.Duration(r.config.BootTimeout) * time.Second
	if err := domain.WaitRunning(timeout); err != nil {
		return err
	}

	log.Info(domain.Name(), "reached running state")
	return nil
}

// Run executes the full smoke test stage for an image.
func (r *Runner) Run() error {
	if err := CheckSize(r.iso, constants.MaxImageBytes); err != nil {
		return err
	}
	return r.BootAll()
}
