package service

import (
	"fmt"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
)

// EmptyNotificationError is returned when a notification carries no record
// that could be copied.
type EmptyNotificationError struct {
	absent bool
}

func (e EmptyNotificationError) Error() string {
	if e.absent {
		return "No Records can be obtained from S3 Event: event is absent"
	}

	return "No Records can be obtained from S3 Event: event has no records"
}

// CopyError is returned when the storage backend fails to copy an object.
// The backend's error is available through errors.Unwrap.
type CopyError struct {
	Location domain.Location
	base     error
}

func (e CopyError) Error() string {
	return fmt.Sprintf("Unable to copy %s to %s: %v", e.Location.Source(), e.Location.Sink(), e.base)
}

func (e CopyError) Unwrap() error {
	return e.base
}
