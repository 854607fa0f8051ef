// Package storage provides the object-storage backends that perform
// server-side copies.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	ProviderS3       = "s3"
	ProviderLegacyS3 = "s3v1"
	ProviderMinio    = "minio"
)

// ErrMissingETag is returned when the backend reports success without an ETag.
var ErrMissingETag = errors.New("copy response did not contain an ETag")

// Client copies an object between buckets and returns the ETag of the copy.
// Implementations are safe for concurrent use.
type Client interface {
	Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) (string, error)
}

// Config contains the information required to talk to an object store.
type Config struct {
	Provider  string
	Endpoint  string
	Region    string
	PathStyle bool
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// New creates a storage client based on the given configuration.
func New(ctx context.Context, cfg Config) (Client, error) {
	logger.Infof("Creating %s storage client for endpoint %q in region %s", cfg.Provider, cfg.Endpoint, cfg.Region)

	switch cfg.Provider {
	case ProviderS3, "":
		return NewS3Client(ctx, cfg)
	case ProviderLegacyS3:
		return NewLegacyS3Client(cfg)
	case ProviderMinio:
		return NewMinioClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}

// copySource builds the x-amz-copy-source value, which must be URL-encoded.
func copySource(bucket, key string) string {
	u := url.URL{Path: bucket + "/" + key}
	return u.EscapedPath()
}

// trimETag strips the quotes S3 puts around ETag values.
func trimETag(etag string) string {
	return strings.Trim(etag, `"`)
}
