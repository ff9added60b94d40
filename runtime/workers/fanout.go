package workers

import (
	"context"
	"log/slog"
	"troc-service/contract"
	"troc-service/domain/event"
)

// EventFanout broadcasts domain events to the registered sinks.
//
// Best-effort fan-out with no delivery, ordering, durability or retry
// guarantees; it is intended for persistence snapshots, indexing and logs,
// not for core domain logic.
type EventFanout struct {
	events <-chan event.DomainEvent
	sinks  []contract.EventSink
	log    *slog.Logger
}

func NewEventFanout(events <-chan event.DomainEvent, log *slog.Logger) *EventFanout {
	return &EventFanout{events: events, log: log}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.fanout(ctx, evt)
		}
	}
}

// fanout delivers one event to each sink. A failing sink is logged and
// skipped; the others still receive the event.
func (w *EventFanout) fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.log.Error("Sink rejected event", "participant", evt.ParticipantID(), "err", err)
		}
	}
}
