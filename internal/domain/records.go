package domain

// Record is the part of an S3 "object created" notification record the copy
// pipeline needs. Key holds the URL-decoded object key.
type Record struct {
	Bucket    string
	Key       string
	EventName string
	Region    string
	Size      int64
	ETag      string
}

// ConfirmationToken is the opaque value (normally the ETag) the storage
// backend returns for a successful copy.
type ConfirmationToken string

func (t ConfirmationToken) String() string {
	return string(t)
}

// Location is the fully resolved source and sink of a copy. It has no
// mutators; build a new one with NewLocation instead.
type Location struct {
	SourceBucket string
	SourceKey    string
	SinkBucket   string
	SinkKey      string
}

// NewLocation builds a Location. An empty sinkKey means the object keeps its
// source key.
func NewLocation(sourceBucket, sourceKey, sinkBucket, sinkKey string) Location {
	if sinkKey == "" {
		sinkKey = sourceKey
	}

	return Location{
		SourceBucket: sourceBucket,
		SourceKey:    sourceKey,
		SinkBucket:   sinkBucket,
		SinkKey:      sinkKey,
	}
}

func (l Location) Source() string {
	return l.SourceBucket + "/" + l.SourceKey
}

func (l Location) Sink() string {
	return l.SinkBucket + "/" + l.SinkKey
}
