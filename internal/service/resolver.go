package service

import (
	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
)

// DefaultSinkBucket is used when SINK_BUCKET is unset or empty.
const DefaultSinkBucket = "alert-sink-bucket"

type resolveOptions struct {
	sinkKey string
}

type ResolveOption func(*resolveOptions)

// WithSinkKey copies the object to key instead of its source key.
func WithSinkKey(key string) ResolveOption {
	return func(o *resolveOptions) {
		o.sinkKey = key
	}
}

// Resolve computes where record should be copied to.
func Resolve(record domain.Record, lookup settings.Lookup, opts ...ResolveOption) domain.Location {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	sinkBucket := DefaultSinkBucket
	if value, ok := lookup.Lookup(settings.SinkBucketKey); ok && value != "" {
		sinkBucket = value
	}

	return domain.NewLocation(record.Bucket, record.Key, sinkBucket, o.sinkKey)
}
