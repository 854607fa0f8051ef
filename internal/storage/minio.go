package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient copies objects with the MinIO client.
type MinioClient struct {
	client *minio.Client
}

func NewMinioClient(cfg Config) (*MinioClient, error) {
	host, secure, err := minioEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}

	cl, err := minio.New(host, opts)
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	return &MinioClient{client: cl}, nil
}

func (m *MinioClient) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) (string, error) {
	dst := minio.CopyDestOptions{Bucket: dstBucket, Object: dstKey}
	src := minio.CopySrcOptions{Bucket: srcBucket, Object: srcKey}

	logger.Debugf("Copying %s/%s to %s/%s", srcBucket, srcKey, dstBucket, dstKey)

	info, err := m.client.CopyObject(ctx, dst, src)
	if err != nil {
		return "", err
	}

	if info.ETag == "" {
		return "", ErrMissingETag
	}

	return trimETag(info.ETag), nil
}

// minioEndpoint converts an endpoint URL to the host:port form minio.New
// expects. A scheme, when present, decides whether TLS is used.
func minioEndpoint(endpoint string, useSSL bool) (string, bool, error) {
	if endpoint == "" {
		return "", false, fmt.Errorf("minio provider requires an endpoint")
	}

	if !strings.Contains(endpoint, "://") {
		return endpoint, useSSL, nil
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("parse minio endpoint %s: %w", endpoint, err)
	}

	return u.Host, u.Scheme == "https", nil
}
