package service

import (
	"context"
	"time"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/ATenderholt/rainbow-copy/internal/notify"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/ATenderholt/rainbow-copy/internal/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Options struct {
	// CopyTimeout bounds a single backend copy. Zero disables the bound.
	CopyTimeout time.Duration
}

// CopyHandler copies the object named by an S3 notification to the sink
// bucket. It holds no per-invocation state and may be shared by concurrent
// invocations.
type CopyHandler struct {
	client    storage.Client
	lookup    settings.Lookup
	publisher notify.Publisher
	opts      Options
}

func NewCopyHandler(client storage.Client, lookup settings.Lookup, publisher notify.Publisher, opts Options) *CopyHandler {
	if publisher == nil {
		publisher = notify.Noop{}
	}

	return &CopyHandler{
		client:    client,
		lookup:    lookup,
		publisher: publisher,
		opts:      opts,
	}
}

// Handle returns the ETag of the copied object. It fails with
// EmptyNotificationError or CopyError.
func (h *CopyHandler) Handle(ctx context.Context, event *events.S3Event) (string, error) {
	ctx, span := tracer.Start(ctx, "CopyHandler.Handle")
	defer span.End()

	record, err := h.parse(ctx, event)
	if err != nil {
		fail(span, err)
		return "", err
	}

	location := h.resolve(ctx, record)
	span.SetAttributes(
		attribute.String("copy.source", location.Source()),
		attribute.String("copy.sink", location.Sink()),
	)

	token, err := h.copy(ctx, location)
	if err != nil {
		fail(span, err)
		return "", err
	}

	h.publish(ctx, location, token)

	logger.Infof("Copied %s to %s with ETag %s (request %s)", location.Source(), location.Sink(), token, requestID(ctx))
	return Report(token), nil
}

func (h *CopyHandler) parse(ctx context.Context, event *events.S3Event) (domain.Record, error) {
	_, span := tracer.Start(ctx, "parse")
	defer span.End()

	record, err := Parse(event)
	if err != nil {
		fail(span, err)
	}

	return record, err
}

func (h *CopyHandler) resolve(ctx context.Context, record domain.Record) domain.Location {
	_, span := tracer.Start(ctx, "resolve")
	defer span.End()

	return Resolve(record, h.lookup)
}

func (h *CopyHandler) copy(ctx context.Context, location domain.Location) (domain.ConfirmationToken, error) {
	ctx, span := tracer.Start(ctx, "copy")
	defer span.End()

	token, err := Copy(ctx, location, h.client, h.opts.CopyTimeout)
	if err != nil {
		fail(span, err)
	}

	return token, err
}

// publish never fails the invocation; the copy has already happened.
func (h *CopyHandler) publish(ctx context.Context, location domain.Location, token domain.ConfirmationToken) {
	event := domain.NewCopyCompleted(uuid.NewString(), location, token, time.Now())
	if err := h.publisher.Publish(ctx, event); err != nil {
		logger.Warnf("Unable to publish copy event %s for %s: %v", event.ID, location.Sink(), err)
	}
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}

	return "-"
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
