package service_test

import (
	"testing"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/ATenderholt/rainbow-copy/internal/service"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/stretchr/testify/assert"
)

func TestResolveDefaultSinkBucket(t *testing.T) {
	r := domain.Record{Bucket: "intake", Key: "file1.txt"}

	location := service.Resolve(r, settings.Values{})

	assert.Equal(t, domain.Location{
		SourceBucket: "intake",
		SourceKey:    "file1.txt",
		SinkBucket:   "alert-sink-bucket",
		SinkKey:      "file1.txt",
	}, location)
}

func TestResolveSinkBucketOverride(t *testing.T) {
	r := domain.Record{Bucket: "intake", Key: "file1.txt"}

	location := service.Resolve(r, settings.Values{"SINK_BUCKET": "custom-sink"})

	assert.Equal(t, "custom-sink", location.SinkBucket)
	assert.Equal(t, "file1.txt", location.SinkKey)
}

func TestResolveEmptyOverrideUsesDefault(t *testing.T) {
	r := domain.Record{Bucket: "intake", Key: "file1.txt"}

	location := service.Resolve(r, settings.Values{"SINK_BUCKET": ""})

	assert.Equal(t, service.DefaultSinkBucket, location.SinkBucket)
}

func TestResolveFromEnvironment(t *testing.T) {
	t.Setenv("SINK_BUCKET", "env-sink")
	r := domain.Record{Bucket: "intake", Key: "file1.txt"}

	location := service.Resolve(r, settings.Environment{})

	assert.Equal(t, "env-sink", location.SinkBucket)
}

func TestResolveSinkKeyOverride(t *testing.T) {
	r := domain.Record{Bucket: "intake", Key: "file1.txt"}

	location := service.Resolve(r, settings.Values{}, service.WithSinkKey("archive/file1.txt"))

	assert.Equal(t, "file1.txt", location.SourceKey)
	assert.Equal(t, "archive/file1.txt", location.SinkKey)
}

func TestResolveIsDeterministic(t *testing.T) {
	r := domain.Record{Bucket: "intake", Key: "dir/file1.txt"}
	lookup := settings.Values{"SINK_BUCKET": "custom-sink"}

	first := service.Resolve(r, lookup)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, service.Resolve(r, lookup))
	}
}
