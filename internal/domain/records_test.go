package domain_test

import (
	"testing"
	"time"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewLocationDefaultsSinkKey(t *testing.T) {
	location := domain.NewLocation("intake", "dir/file1.txt", "sink", "")

	assert.Equal(t, domain.Location{
		SourceBucket: "intake",
		SourceKey:    "dir/file1.txt",
		SinkBucket:   "sink",
		SinkKey:      "dir/file1.txt",
	}, location)
	assert.Equal(t, "intake/dir/file1.txt", location.Source())
	assert.Equal(t, "sink/dir/file1.txt", location.Sink())
}

func TestNewLocationSinkKeyOverride(t *testing.T) {
	location := domain.NewLocation("intake", "file1.txt", "sink", "archive/file1.txt")

	assert.Equal(t, "file1.txt", location.SourceKey)
	assert.Equal(t, "archive/file1.txt", location.SinkKey)
}

func TestNewCopyCompleted(t *testing.T) {
	at := time.Date(2022, 4, 14, 11, 39, 29, 0, time.FixedZone("NZST", 12*3600))
	location := domain.NewLocation("intake", "file1.txt", "sink", "")

	event := domain.NewCopyCompleted("some-id", location, "d41d8cd98f00b204e9800998ecf8427e", at)

	assert.Equal(t, domain.CopyCompletedEvent, event.Event)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", event.ETag)
	assert.Equal(t, "sink", event.SinkBucket)
	assert.Equal(t, time.UTC, event.CompletedAt.Location())
	assert.True(t, at.Equal(event.CompletedAt))
}
