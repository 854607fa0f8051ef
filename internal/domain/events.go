package domain

import "time"

const (
	ObjectCreatedEvent = "ObjectCreated"
	ObjectRemovedEvent = "ObjectRemoved"

	CopyCompletedEvent = "rainbow-copy:CopyCompleted"
)

// CopyCompleted is published after an object has been copied to its sink.
type CopyCompleted struct {
	ID           string    `json:"id"`
	Event        string    `json:"event"`
	SourceBucket string    `json:"sourceBucket"`
	SourceKey    string    `json:"sourceKey"`
	SinkBucket   string    `json:"sinkBucket"`
	SinkKey      string    `json:"sinkKey"`
	ETag         string    `json:"eTag"`
	CompletedAt  time.Time `json:"completedAt"`
}

func NewCopyCompleted(id string, location Location, token ConfirmationToken, at time.Time) CopyCompleted {
	return CopyCompleted{
		ID:           id,
		Event:        CopyCompletedEvent,
		SourceBucket: location.SourceBucket,
		SourceKey:    location.SourceKey,
		SinkBucket:   location.SinkBucket,
		SinkKey:      location.SinkKey,
		ETag:         token.String(),
		CompletedAt:  at.UTC(),
	}
}
