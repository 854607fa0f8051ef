package service

import (
	"context"
	"time"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/ATenderholt/rainbow-copy/internal/storage"
)

// Copy copies the object described by location. A positive timeout bounds
// the backend call; when it expires the returned CopyError wraps
// context.DeadlineExceeded.
func Copy(ctx context.Context, location domain.Location, client storage.Client, timeout time.Duration) (domain.ConfirmationToken, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.Infof("Copying %s to %s", location.Source(), location.Sink())

	etag, err := client.Copy(ctx, location.SourceBucket, location.SourceKey, location.SinkBucket, location.SinkKey)
	if err != nil {
		err := CopyError{
			Location: location,
			base:     err,
		}
		logger.Error(err)
		return "", err
	}

	return domain.ConfirmationToken(etag), nil
}
