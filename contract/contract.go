//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"troc-service/domain/event"
)

// Worker doesn't protect itself.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// for logging and supervision purposes, avoiding manual naming in the
// Worker interface.
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

// EventSink consumes domain events emitted by the engine.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// EventPublisher is the engine-facing side of the event bus. Publish must
// never block the caller.
type EventPublisher interface {
	Publish(e event.DomainEvent)
}

// Sender delivers a reply to a participant over the outbound transport.
// Failures are logged by the caller, never surfaced back into the core.
type Sender interface {
	Send(ctx context.Context, identity, text string) error
}
