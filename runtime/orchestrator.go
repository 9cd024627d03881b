// Package runtime wires the moving parts: change feed, open-view registry,
// supervised workers and the event pipeline. It holds no business rules.
package runtime

import (
	"alumni-chat/contract"
	"alumni-chat/domain/event"
	"alumni-chat/runtime/workers"
	"context"
	"log/slog"
	"sync"
	"time"
)

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     contract.ISupervisor
	permanentSinks []contract.EventSink
	workers        []contract.Worker
	domainEvents   chan event.DomainEvent
	sinkTimeout    time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	bufferSize int, sinkTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		log:          log,
		supervisor:   supervisor,
		domainEvents: make(chan event.DomainEvent, bufferSize),
		sinkTimeout:  sinkTimeout,
	}
}

// Add registers sinks receiving every domain event. Call before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// AddWorkers registers extra background workers. Call before Start.
func (o *Orchestrator) AddWorkers(w ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.workers = append(o.workers, w...)
}

// Publish never blocks the caller: when the pipeline is saturated the event
// is dropped and logged.
func (o *Orchestrator) Publish(evt event.DomainEvent) {
	select {
	case o.domainEvents <- evt:
	default:
		o.log.Warn("Domain event channel full, dropping event", "conversation_id", evt.ConversationID())
	}
}

// Start registers the fanout and the extra workers with the supervisor and
// blocks until the supervisor stops.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	sinks := append([]contract.EventSink(nil), o.permanentSinks...)
	fanout := workers.NewEventFanout(o.log, sinks, o.domainEvents, o.sinkTimeout)
	o.supervisor.Add(fanout)
	o.supervisor.Add(o.workers...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator", "sinks", len(sinks), "workers", len(o.workers)+1)
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

// Channels exposes the internal buffers for capacity monitoring.
func (o *Orchestrator) Channels() []workers.NamedChannel {
	return []workers.NamedChannel{{Name: "domain_events", Channel: o.domainEvents}}
}
