package constants

const (
	// WarningColor used in warning texts
	WarningColor = "\033[1;33m%s\033[0m"
	// ErrorColor used in error texts
	ErrorColor = "\033[1;31m%s\033[0m"
)

const (
	// LbCommand is the live-build entry point binary
	LbCommand = "lb"
	// GpgCommand signs checksums and exports verification keys
	GpgCommand = "gpg"
	// GitCommand produces the source archive and the version tag
	GitCommand = "git"
	// VirtInstallCommand creates the smoke test virtual machines
	VirtInstallCommand = "virt-install"
	// VirshCommand inspects and tears down the smoke test virtual machines
	VirshCommand = "virsh"
	// SphinxCommand builds the HTML documentation
	SphinxCommand = "sphinx-build"
	// AptGetCommand installs the build dependencies
	AptGetCommand = "apt-get"
)

// MaxImageBytes is the size cap an image must stay under to fit the
// distribution media (2 GiB).
const MaxImageBytes int64 = 2 * 1024 * 1024 * 1024

// MinBuildBytes is the free disk space a live-build run needs for the
// chroot, the caches and the image itself.
const MinBuildBytes uint64 = 10 * 1024 * 1024 * 1024

// Version is the isoforge release version.
const Version = "0.4.2"

// ChecksumFile is the name of the release checksum manifest.
const ChecksumFile = "SHA512SUMS"

// SignatureFile is the detached armored signature of ChecksumFile.
const SignatureFile = "SHA512SUMS.gpg"

// PublicKeyFile is the exported armored verification key shipped with
// every release.
const PublicKeyFile = "verify.key"
