package release

import (
	"os"
	"path/filepath"

	"github.com/minio/minio-go"

	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
)

// Publisher uploads release artifacts to an S3-compatible mirror.
type Publisher struct {
	config types.PublishConfig
}

// NewPublisher returns a Publisher for the given mirror settings.
func NewPublisher(config types.PublishConfig) *Publisher {
	return &Publisher{config: config}
}

// Enabled reports whether a mirror is configured at all.
func (p *Publisher) Enabled() bool {
	return p.config.Endpoint != "" && p.config.Bucket != ""
}

// Upload copies every file into the mirror bucket under
// <version>/<filename>.
func (p *Publisher) Upload(version string, files []string) error {
	accessKey := os.Getenv("ISOFORGE_MIRROR_ACCESS")
	secKey := os.Getenv("ISOFORGE_MIRROR_SECRET")

	if accessKey == "" || secKey == "" {
		log.Fatal("can not find ISOFORGE_MIRROR_ACCESS || ISOFORGE_MIRROR_SECRET env vars")
	}

	client, err := minio.New(p.config.Endpoint, accessKey, secKey, !p.config.Insecure)
	if err != nil {
		return err
	}

	for _, file := range files {
		object := version + "/" + filepath.Base(file)

		n, err := client.FPutObject(p.config.Bucket, object, file, minio.PutObjectOptions{
			ContentType: "application/octet-stream",
		})
		if err != nil {
			return err
		}

		log.Info("uploaded", object, "-", n, "bytes")
	}

	return nil
}
