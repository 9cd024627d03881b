package runtime

import (
	"alumni-chat/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Snapshot is one full materialization of a subscribed query, or the error
// that ended the subscription.
type Snapshot[T any] struct {
	Value T
	Err   error
}

// Subscription is a lazy, restartable sequence of snapshots. The first
// snapshot reflects the store at subscription time; later ones follow each
// committed change. After an error snapshot the channel is closed and the
// caller resubscribes.
type Subscription[T any] struct {
	snapshots chan Snapshot[T]
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

func (s *Subscription[T]) Snapshots() <-chan Snapshot[T] {
	return s.snapshots
}

// Close stops delivery and waits until the listener is released. Safe to call twice.
func (s *Subscription[T]) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Watch re-runs load every time the topic is notified and pushes the result.
func Watch[T any](ctx context.Context, log *slog.Logger, feed *Feed, topic string,
	load func(ctx context.Context) (T, error)) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	changes, unlisten := feed.Listen(topic)
	sub := &Subscription[T]{
		snapshots: make(chan Snapshot[T], 1),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		defer close(sub.snapshots)
		defer unlisten()

		emit := func() bool {
			value, err := load(ctx)
			if ctx.Err() != nil {
				return false
			}
			snap := Snapshot[T]{Value: value}
			if err != nil {
				log.Warn("Subscription stopped", "topic", topic, "error", err)
				snap = Snapshot[T]{Err: fmt.Errorf("%w: %v", errors.ErrSubscriptionFailure, err)}
			}
			select {
			case sub.snapshots <- snap:
			case <-ctx.Done():
				return false
			}
			return err == nil
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				log.Debug("Subscription closed", "topic", topic)
				return
			case <-changes:
				if !emit() {
					return
				}
			}
		}
	}()
	return sub
}
