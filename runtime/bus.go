package runtime

import (
	"log/slog"
	"troc-service/domain/event"
	"troc-service/observability"
)

// Bus is the non-blocking event pipe between the engine and the sinks. The
// engine must never wait on persistence or indexing, so an overflowing
// buffer drops the event and counts the loss.
type Bus struct {
	ch      chan event.DomainEvent
	log     *slog.Logger
	monitor *observability.Monitor
}

func NewBus(size int, log *slog.Logger, monitor *observability.Monitor) *Bus {
	return &Bus{ch: make(chan event.DomainEvent, size), log: log, monitor: monitor}
}

func (b *Bus) Publish(e event.DomainEvent) {
	select {
	case b.ch <- e:
	default:
		b.log.Warn("Event buffer full, dropping", "participant", e.ParticipantID())
		if b.monitor != nil {
			b.monitor.IncrDroppedEvents()
		}
	}
}

// Events exposes the consuming side for the fanout worker.
func (b *Bus) Events() <-chan event.DomainEvent {
	return b.ch
}
