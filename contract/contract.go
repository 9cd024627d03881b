//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"alumni-chat/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker is a long-running loop. It does not protect itself: panics and
// errors are handled by the supervisor that runs it.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName returns the type name of the worker, for logs.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives domain events from the fanout. A sink must return
// promptly once ctx is done.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// EventPublisher hands domain events over to the fanout without blocking.
type EventPublisher interface {
	Publish(e event.DomainEvent)
}
