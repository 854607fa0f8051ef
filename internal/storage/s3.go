package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// CopyObjectAPI is the part of the S3 API used by S3Client.
type CopyObjectAPI interface {
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// S3Client copies objects with the AWS SDK for Go v2.
type S3Client struct {
	api CopyObjectAPI
}

func NewS3Client(ctx context.Context, cfg Config) (*S3Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.AccessKey != "" {
		provider := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		opts = append(opts, config.WithCredentialsProvider(provider))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	return NewS3ClientFromAPI(client), nil
}

func NewS3ClientFromAPI(api CopyObjectAPI) *S3Client {
	return &S3Client{api: api}
}

func (c *S3Client) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) (string, error) {
	input := &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(copySource(srcBucket, srcKey)),
	}

	logger.Debugf("Copying %s to %s/%s", aws.ToString(input.CopySource), dstBucket, dstKey)

	output, err := c.api.CopyObject(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			logger.Errorf("S3 rejected copy of %s with %s: %s", aws.ToString(input.CopySource), apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return "", err
	}

	if output.CopyObjectResult == nil || output.CopyObjectResult.ETag == nil {
		return "", ErrMissingETag
	}

	return trimETag(aws.ToString(output.CopyObjectResult.ETag)), nil
}
