package storage

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// LegacyS3Client copies objects with the AWS SDK for Go v1. It is kept for
// local S3 emulators that only speak the older request style.
type LegacyS3Client struct {
	api s3iface.S3API
}

func NewLegacyS3Client(cfg Config) (*LegacyS3Client, error) {
	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(cfg.PathStyle),
	}

	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}

	return NewLegacyS3ClientFromAPI(s3.New(sess)), nil
}

func NewLegacyS3ClientFromAPI(api s3iface.S3API) *LegacyS3Client {
	return &LegacyS3Client{api: api}
}

func (c *LegacyS3Client) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) (string, error) {
	input := &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(copySource(srcBucket, srcKey)),
	}

	logger.Debugf("Copying %s to %s/%s", aws.StringValue(input.CopySource), dstBucket, dstKey)

	output, err := c.api.CopyObjectWithContext(ctx, input)
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok {
			logger.Errorf("S3 rejected copy of %s with %s: %s", aws.StringValue(input.CopySource), awsErr.Code(), awsErr.Message())
		}
		return "", err
	}

	if output.CopyObjectResult == nil || output.CopyObjectResult.ETag == nil {
		return "", ErrMissingETag
	}

	return trimETag(aws.StringValue(output.CopyObjectResult.ETag)), nil
}
