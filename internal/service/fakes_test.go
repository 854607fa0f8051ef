package service_test

import (
	"context"
	"sync"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/aws/aws-lambda-go/events"
)

type copyCall struct {
	SrcBucket, SrcKey, DstBucket, DstKey string
}

// fakeStorage records copy calls and answers with a fixed ETag or error.
type fakeStorage struct {
	mu    sync.Mutex
	calls []copyCall
	etag  string
	err   error
	block bool
}

func (f *fakeStorage) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, copyCall{srcBucket, srcKey, dstBucket, dstKey})
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}

	return f.etag, f.err
}

func (f *fakeStorage) Calls() []copyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]copyCall(nil), f.calls...)
}

type fakePublisher struct {
	events []domain.CopyCompleted
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, event domain.CopyCompleted) error {
	p.events = append(p.events, event)
	return p.err
}

func record(bucket, key string) events.S3EventRecord {
	return events.S3EventRecord{
		EventSource: "aws:s3",
		EventName:   "ObjectCreated:Put",
		AWSRegion:   "us-east-1",
		S3: events.S3Entity{
			Bucket: events.S3Bucket{Name: bucket},
			Object: events.S3Object{Key: key, Size: 1024},
		},
	}
}

func notification(records ...events.S3EventRecord) *events.S3Event {
	return &events.S3Event{Records: records}
}
