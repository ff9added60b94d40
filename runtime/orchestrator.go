// Package runtime hosts the supervised workers around the conversation
// engine: per-identity mailboxes, the event bus and its sink fanout. It
// orchestrates without containing domain rules.
package runtime

import (
	"context"
	"hash/fnv"
	"log/slog"
	"troc-service/contract"
	"troc-service/moderation"
	"troc-service/observability"
	"troc-service/runtime/workers"
)

// Orchestrator routes inbound messages onto N session workers. Identities
// are hashed onto mailboxes so all messages of one participant are
// processed in arrival order by a single goroutine.
type Orchestrator struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	handler    workers.Handler
	sender     contract.Sender
	moderator  *moderation.Moderator
	monitor    *observability.Monitor
	bus        *Bus
	sinks      []contract.EventSink
	mailboxes  []chan workers.InboundMessage
	bufferSize int
}

func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	handler workers.Handler,
	sender contract.Sender,
	moderator *moderation.Moderator,
	monitor *observability.Monitor,
	bus *Bus,
	workerCount, bufferSize int,
) *Orchestrator {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		handler:    handler,
		sender:     sender,
		moderator:  moderator,
		monitor:    monitor,
		bus:        bus,
		mailboxes:  make([]chan workers.InboundMessage, workerCount),
		bufferSize: bufferSize,
	}
}

// RegisterSinks wires consumers of the event bus. Must be called before
// Start.
func (o *Orchestrator) RegisterSinks(sinks ...contract.EventSink) {
	o.sinks = append(o.sinks, sinks...)
}

// Start creates the mailboxes and hands every worker to the supervisor.
// The supervisor runs in its own goroutine; Stop (or parent context
// cancellation) shuts everything down.
func (o *Orchestrator) Start(ctx context.Context) error {
	for i := range o.mailboxes {
		o.mailboxes[i] = make(chan workers.InboundMessage, o.bufferSize)
		o.supervisor.Add(workers.NewSessionWorker(
			o.mailboxes[i], o.handler, o.sender, o.moderator, o.monitor, o.log,
		))
	}
	fanout := workers.NewEventFanout(o.bus.Events(), o.log).Add(o.sinks...)
	o.supervisor.Add(fanout)

	go o.supervisor.Run(ctx)
	o.log.Info("Orchestrator started", "session_workers", len(o.mailboxes))
	return nil
}

// Dispatch enqueues one inbound message. Blocks only when the identity's
// mailbox is full, which applies backpressure at the transport boundary
// instead of dropping user input.
func (o *Orchestrator) Dispatch(msg workers.InboundMessage) {
	o.mailboxes[o.mailboxFor(msg.Identity)] <- msg
}

func (o *Orchestrator) mailboxFor(identity string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identity))
	return int(h.Sum32() % uint32(len(o.mailboxes)))
}

func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}
