// Package notify publishes CopyCompleted events to downstream consumers.
package notify

import (
	"context"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"go.uber.org/multierr"
)

type Publisher interface {
	Publish(ctx context.Context, event domain.CopyCompleted) error
}

// Config selects the downstream consumers. Empty fields disable a consumer.
type Config struct {
	Function       string
	LambdaEndpoint string
	KafkaBrokers   []string
	KafkaTopic     string
}

// New builds a Publisher for every configured consumer. The returned cleanup
// function flushes and closes them.
func New(ctx context.Context, cfg Config) (Publisher, func(), error) {
	var fanout Fanout

	if cfg.Function != "" {
		p, err := NewLambdaPublisher(ctx, cfg.Function, cfg.LambdaEndpoint)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("Publishing copy events to function %s", cfg.Function)
		fanout = append(fanout, p)
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic != "" {
		logger.Infof("Publishing copy events to kafka topic %s", cfg.KafkaTopic)
		fanout = append(fanout, NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic))
	}

	cleanup := func() {
		if err := fanout.Close(); err != nil {
			logger.Errorf("Unable to close publishers: %v", err)
		}
	}

	if len(fanout) == 0 {
		return Noop{}, cleanup, nil
	}

	return fanout, cleanup, nil
}

// Fanout publishes to every Publisher and merges their errors.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event domain.CopyCompleted) error {
	var err error
	for _, p := range f {
		err = multierr.Append(err, p.Publish(ctx, event))
	}

	return err
}

func (f Fanout) Close() error {
	var err error
	for _, p := range f {
		if closer, ok := p.(interface{ Close() error }); ok {
			err = multierr.Append(err, closer.Close())
		}
	}

	return err
}

type Noop struct{}

func (Noop) Publish(context.Context, domain.CopyCompleted) error {
	return nil
}
