package service

import (
	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/aws/aws-lambda-go/events"
)

// Parse returns the first record of the notification. Any further records
// are ignored; the handler copies one object per invocation.
func Parse(event *events.S3Event) (domain.Record, error) {
	if event == nil {
		err := EmptyNotificationError{absent: true}
		logger.Error(err)
		return domain.Record{}, err
	}

	if len(event.Records) == 0 {
		err := EmptyNotificationError{}
		logger.Error(err)
		return domain.Record{}, err
	}

	if ignored := len(event.Records) - 1; ignored > 0 {
		logger.Warnf("Notification has %d records, ignoring the last %d", len(event.Records), ignored)
		for _, r := range event.Records[1:] {
			logger.Debugf("Ignoring record %s for %s/%s", r.EventName, r.S3.Bucket.Name, objectKey(r.S3.Object))
		}
	}

	first := event.Records[0]
	return domain.Record{
		Bucket:    first.S3.Bucket.Name,
		Key:       objectKey(first.S3.Object),
		EventName: first.EventName,
		Region:    first.AWSRegion,
		Size:      first.S3.Object.Size,
		ETag:      first.S3.Object.ETag,
	}, nil
}

// FirstKey returns the decoded object key of the first record, if there is one.
func FirstKey(event *events.S3Event) (string, bool) {
	if event == nil || len(event.Records) == 0 {
		return "", false
	}

	return objectKey(event.Records[0].S3.Object), true
}

// objectKey prefers the decoded key; notifications URL-encode object keys.
func objectKey(object events.S3Object) string {
	if object.URLDecodedKey != "" {
		return object.URLDecodedKey
	}

	return object.Key
}
