package http

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/ATenderholt/rainbow-copy/internal/service"
	"github.com/aws/aws-lambda-go/events"
	"github.com/reactivex/rxgo/v2"
)

const queueSize = 100

var ErrDispatcherStopped = errors.New("dispatcher is not running")

// Dispatcher runs asynchronous ("Event") invocations one at a time, in the
// order they were submitted. Events whose key does not pass the filter are
// dropped.
type Dispatcher struct {
	handler CopyHandler
	filter  domain.Filter
	metrics *Metrics

	mu      sync.RWMutex
	running bool
	ch      chan rxgo.Item
	done    rxgo.Disposed
}

func NewDispatcher(handler CopyHandler, filter domain.Filter, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		handler: handler,
		filter:  filter,
		metrics: metrics,
	}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ch = make(chan rxgo.Item, queueSize)
	d.done = rxgo.FromChannel(d.ch).
		Filter(d.accept).
		ForEach(d.invoke, d.fail, func() {
			logger.Info("Dispatcher stopped")
		})
	d.running = true
}

func (d *Dispatcher) Submit(ctx context.Context, event *events.S3Event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.running {
		return ErrDispatcherStopped
	}

	select {
	case d.ch <- rxgo.Item{V: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop waits for queued invocations to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	close(d.ch)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) accept(i interface{}) bool {
	key, ok := service.FirstKey(i.(*events.S3Event))
	if !ok {
		// let the handler report the empty notification
		return true
	}

	if !d.filter.Match(key) {
		logger.Infof("Dropping event for %s, key does not match filter", key)
		d.metrics.Count(OutcomeFiltered)
		return false
	}

	return true
}

func (d *Dispatcher) invoke(i interface{}) {
	start := time.Now()
	token, err := d.handler.Handle(context.Background(), i.(*events.S3Event))
	d.metrics.Observe(outcome(err), time.Since(start))

	if err != nil {
		logger.Errorf("Asynchronous invocation failed: %v", err)
		return
	}

	logger.Debugf("Asynchronous invocation returned %s", token)
}

func (d *Dispatcher) fail(err error) {
	logger.Errorf("Dispatcher received error: %v", err)
}
