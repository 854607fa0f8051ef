package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ATenderholt/rainbow-copy/internal/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCopyAPI struct {
	CopyObjectFunc func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

func (m mockCopyAPI) CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	return m.CopyObjectFunc(ctx, params, optFns...)
}

func TestS3ClientCopy(t *testing.T) {
	api := mockCopyAPI{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			assert.Equal(t, "sink", aws.ToString(params.Bucket))
			assert.Equal(t, "dir/file1.txt", aws.ToString(params.Key))
			assert.Equal(t, "intake/dir/file1.txt", aws.ToString(params.CopySource))
			return &s3.CopyObjectOutput{
				CopyObjectResult: &types.CopyObjectResult{ETag: aws.String(`"d41d8cd98f00b204e9800998ecf8427e"`)},
			}, nil
		},
	}

	client := storage.NewS3ClientFromAPI(api)
	etag, err := client.Copy(context.Background(), "intake", "dir/file1.txt", "sink", "dir/file1.txt")

	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", etag)
}

func TestS3ClientCopyError(t *testing.T) {
	denied := errors.New("AccessDenied: access denied")
	api := mockCopyAPI{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			return nil, denied
		},
	}

	client := storage.NewS3ClientFromAPI(api)
	etag, err := client.Copy(context.Background(), "intake", "file1.txt", "sink", "file1.txt")

	assert.Empty(t, etag)
	assert.ErrorIs(t, err, denied)
}

func TestS3ClientCopyAPIError(t *testing.T) {
	api := mockCopyAPI{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "The specified key does not exist."}
		},
	}

	client := storage.NewS3ClientFromAPI(api)
	_, err := client.Copy(context.Background(), "intake", "missing.txt", "sink", "missing.txt")

	var apiErr smithy.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "NoSuchKey", apiErr.ErrorCode())
}

func TestS3ClientCopyMissingETag(t *testing.T) {
	api := mockCopyAPI{
		CopyObjectFunc: func(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
			return &s3.CopyObjectOutput{}, nil
		},
	}

	client := storage.NewS3ClientFromAPI(api)
	_, err := client.Copy(context.Background(), "intake", "file1.txt", "sink", "file1.txt")

	assert.ErrorIs(t, err, storage.ErrMissingETag)
}
