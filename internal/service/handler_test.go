package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ATenderholt/rainbow-copy/internal/service"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDefaultSink(t *testing.T) {
	backend := &fakeStorage{etag: "d41d8cd98f00b204e9800998ecf8427e"}
	publisher := &fakePublisher{}
	h := service.NewCopyHandler(backend, settings.Values{}, publisher, service.Options{CopyTimeout: time.Second})

	out, err := h.Handle(context.Background(), notification(record("intake", "file1.txt")))
	require.NoError(t, err)

	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", out)
	assert.Equal(t, []copyCall{{"intake", "file1.txt", "alert-sink-bucket", "file1.txt"}}, backend.Calls())

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "alert-sink-bucket", publisher.events[0].SinkBucket)
	assert.Equal(t, out, publisher.events[0].ETag)
	assert.NotEmpty(t, publisher.events[0].ID)
}

func TestHandleCustomSink(t *testing.T) {
	backend := &fakeStorage{etag: "etag"}
	h := service.NewCopyHandler(backend, settings.Values{"SINK_BUCKET": "custom-sink"}, nil, service.Options{})

	_, err := h.Handle(context.Background(), notification(record("intake", "file1.txt")))
	require.NoError(t, err)

	assert.Equal(t, []copyCall{{"intake", "file1.txt", "custom-sink", "file1.txt"}}, backend.Calls())
}

func TestHandleEmptyNotification(t *testing.T) {
	backend := &fakeStorage{etag: "etag"}
	publisher := &fakePublisher{}
	h := service.NewCopyHandler(backend, settings.Values{}, publisher, service.Options{})

	out, err := h.Handle(context.Background(), notification())

	assert.Empty(t, out)
	var emptyErr service.EmptyNotificationError
	assert.True(t, errors.As(err, &emptyErr))
	assert.Empty(t, backend.Calls(), "no backend call for an empty notification")
	assert.Empty(t, publisher.events)
}

func TestHandleAbsentNotification(t *testing.T) {
	backend := &fakeStorage{etag: "etag"}
	h := service.NewCopyHandler(backend, settings.Values{}, nil, service.Options{})

	_, err := h.Handle(context.Background(), nil)

	var emptyErr service.EmptyNotificationError
	assert.True(t, errors.As(err, &emptyErr))
	assert.Empty(t, backend.Calls())
}

func TestHandleAccessDenied(t *testing.T) {
	denied := errors.New("access denied")
	backend := &fakeStorage{err: denied}
	publisher := &fakePublisher{}
	h := service.NewCopyHandler(backend, settings.Values{}, publisher, service.Options{})

	out, err := h.Handle(context.Background(), notification(record("intake", "file1.txt")))

	assert.Empty(t, out)
	var copyErr service.CopyError
	require.True(t, errors.As(err, &copyErr))
	assert.ErrorIs(t, err, denied)
	assert.Empty(t, publisher.events)
}

func TestHandlePublishFailureKeepsResult(t *testing.T) {
	backend := &fakeStorage{etag: "d41d8cd98f00b204e9800998ecf8427e"}
	publisher := &fakePublisher{err: errors.New("broker down")}
	h := service.NewCopyHandler(backend, settings.Values{}, publisher, service.Options{})

	out, err := h.Handle(context.Background(), notification(record("intake", "file1.txt")))

	assert.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", out)
}

func TestHandleConcurrentInvocations(t *testing.T) {
	backend := &fakeStorage{etag: "etag"}
	h := service.NewCopyHandler(backend, settings.Values{}, nil, service.Options{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := h.Handle(context.Background(), notification(record("intake", "file1.txt")))
			assert.NoError(t, err)
			assert.Equal(t, "etag", out)
		}()
	}
	wg.Wait()

	assert.Len(t, backend.Calls(), 20)
}
