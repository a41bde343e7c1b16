package types

// Config describes the whole image pipeline: what to build, how to
// package a release, how to smoke test it and how to generate docs.
type Config struct {
	// Name of the distribution, used as prefix for artifact names.
	Name string `json:",omitempty"`

	// Version is the release version, normally taken from the current
	// git tag when empty.
	Version string `json:",omitempty"`

	// WorkDir is the live-build working tree. Defaults to the current
	// directory.
	WorkDir string `json:",omitempty"`

	// AssetManifest is the path of the YAML manifest listing third
	// party assets to download before a build.
	AssetManifest string `json:",omitempty"`

	// Force re-downloads assets even when present with a valid digest.
	Force bool `json:",omitempty"`

	// Build configures the live-build invocation.
	Build BuildConfig `json:",omitempty"`

	// Release configures artifact naming, signing and publishing.
	Release ReleaseConfig `json:",omitempty"`

	// Test configures the VM smoke tests.
	Test TestConfig `json:",omitempty"`

	// Doc configures documentation generation.
	Doc DocConfig `json:",omitempty"`

	// Tracker configures the issue tracker used for changelogs.
	Tracker TrackerConfig `json:",omitempty"`

	// RunConfig
	RunConfig RunConfig `json:",omitempty"`
}

// BuildConfig holds the options handed to `lb config`.
type BuildConfig struct {
	// Distribution is the Debian release to base the image on.
	Distribution string `json:",omitempty"`

	// Architecture of the produced image.
	Architecture string `json:",omitempty"`

	// BinaryImage is the live-build binary image type.
	BinaryImage string `json:",omitempty"`

	// Mirror used for bootstrap and binary stages.
	Mirror string `json:",omitempty"`

	// Bootappend is appended to the kernel command line of the live
	// system.
	Bootappend string `json:",omitempty"`

	// InstallRecommends controls apt recommends inside the chroot.
	InstallRecommends bool `json:",omitempty"`

	// ExtraOptions are passed to `lb config` verbatim, after the
	// options above.
	ExtraOptions []string `json:",omitempty"`
}

// ReleaseConfig holds release packaging settings.
type ReleaseConfig struct {
	// SigningKey is the GPG key identity used to detach-sign the
	// checksum file.
	SigningKey string `json:",omitempty"`

	// Dir is the directory release artifacts are moved into.
	Dir string `json:",omitempty"`

	// Publish configures the optional artifact mirror upload.
	Publish PublishConfig `json:",omitempty"`
}

// PublishConfig describes the S3-compatible mirror releases are
// uploaded to. Credentials come from the environment.
type PublishConfig struct {
	// Endpoint of the object storage service.
	Endpoint string `json:",omitempty"`

	// Bucket receiving the artifacts.
	Bucket string `json:",omitempty"`

	// Insecure disables TLS towards the endpoint.
	Insecure bool `json:",omitempty"`
}

// TestConfig holds the VM smoke test settings.
type TestConfig struct {
	// StorageDir is the libvirt image storage path holding the
	// transient VM disks.
	StorageDir string `json:",omitempty"`

	// Memory for the test VM, in MiB.
	Memory int `json:",omitempty"`

	// OSVariant passed to virt-install.
	OSVariant string `json:",omitempty"`

	// BootTimeout is the number of seconds to wait for a VM to reach
	// the running state.
	BootTimeout int `json:",omitempty"`
}

// DocConfig holds documentation generation settings.
type DocConfig struct {
	// SourceDir is the sphinx source tree.
	SourceDir string `json:",omitempty"`

	// OutputDir receives the generated HTML.
	OutputDir string `json:",omitempty"`

	// MarkdownDirs are copied into SourceDir before building.
	MarkdownDirs []string `json:",omitempty"`
}

// TrackerConfig holds issue tracker settings for changelog generation.
type TrackerConfig struct {
	// Command is the tracker CLI binary.
	Command string `json:",omitempty"`

	// Project is the tracker project path.
	Project string `json:",omitempty"`
}

// RunConfig holds flags transversal to every command.
type RunConfig struct {
	// Verbose enables info logs.
	Verbose bool `json:",omitempty"`

	// ShowWarnings
	ShowWarnings bool `json:",omitempty"`

	// ShowErrors
	ShowErrors bool `json:",omitempty"`

	// ShowDebug
	ShowDebug bool `json:",omitempty"`

	// JSON
	JSON bool `json:",omitempty"`
}

// NewConfig returns a config with defaults for a Debian stable amd64
// hybrid ISO.
func NewConfig() *Config {
	return &Config{
		Name:    "isoforge",
		WorkDir: ".",
		Build: BuildConfig{
			Distribution: "bookworm",
			Architecture: "amd64",
			BinaryImage:  "iso-hybrid",
			Mirror:       "https://deb.debian.org/debian/",
		},
		Release: ReleaseConfig{
			Dir: "releases",
		},
		Test: TestConfig{
			StorageDir:  "/var/lib/libvirt/images",
			Memory:      2048,
			OSVariant:   "debiantesting",
			BootTimeout: 120,
		},
		Doc: DocConfig{
			SourceDir: "docs",
			OutputDir: "docs/_build/html",
		},
		Tracker: TrackerConfig{
			Command: "glab",
		},
	}
}
