package workers

import (
	"alumni-chat/contract"
	"alumni-chat/domain/event"
	"context"
	"log/slog"
	"sync"
	"time"
)

// EventFanout delivers every domain event to each permanent sink.
//
// Delivery is best effort: no retries, no durability, and a sink that
// exceeds sinkTimeout is abandoned for that event. It serves side effects
// (notifications, search indexing), never the conversation state itself.
type EventFanout struct {
	log         *slog.Logger
	sinks       []contract.EventSink
	events      <-chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, sinks []contract.EventSink,
	events <-chan event.DomainEvent, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, sinks: sinks, events: events, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout consumes the event on every sink in parallel and waits for all of
// them, each bounded by sinkTimeout.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	var wg sync.WaitGroup
	for _, sink := range w.sinks {
		wg.Add(1)
		go func(sink contract.EventSink) {
			defer wg.Done()
			sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() { done <- sink.Consume(sinkCtx, evt) }()

			select {
			case err := <-done:
				if err != nil {
					w.log.Warn("Sink failed to consume event", "conversation_id", evt.ConversationID(), "error", err)
				}
			case <-sinkCtx.Done():
				w.log.Warn("Sink timed out", "conversation_id", evt.ConversationID(), "timeout", w.sinkTimeout)
			}
		}(sink)
	}
	wg.Wait()
}
