package workers

import (
	"context"
	"log/slog"
	"troc-service/contract"
	"troc-service/moderation"
	"troc-service/observability"

	"github.com/abadojack/whatlanggo"
)

// Handler is the core conversation contract: one reply per inbound text.
type Handler interface {
	Handle(identity, text string) string
}

// InboundMessage is one provider message routed to a session worker.
type InboundMessage struct {
	Identity string
	Text     string
}

// SessionWorker drains one mailbox. All messages of a given identity hash
// to the same mailbox, so each identity's state machine only ever advances
// sequentially, which is what the engine's invariants assume.
type SessionWorker struct {
	inbox     <-chan InboundMessage
	handler   Handler
	sender    contract.Sender
	moderator *moderation.Moderator
	monitor   *observability.Monitor
	log       *slog.Logger
}

func NewSessionWorker(
	inbox <-chan InboundMessage,
	handler Handler,
	sender contract.Sender,
	moderator *moderation.Moderator,
	monitor *observability.Monitor,
	log *slog.Logger,
) *SessionWorker {
	return &SessionWorker{
		inbox:     inbox,
		handler:   handler,
		sender:    sender,
		moderator: moderator,
		monitor:   monitor,
		log:       log,
	}
}

func (w *SessionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping session worker")
			return ctx.Err()
		case msg, ok := <-w.inbox:
			if !ok {
				w.log.Debug("Mailbox closed")
				return nil
			}
			w.process(ctx, msg)
		}
	}
}

func (w *SessionWorker) process(ctx context.Context, msg InboundMessage) {
	if w.monitor != nil {
		w.monitor.IncrMessagesIn()
	}

	info := whatlanggo.Detect(msg.Text)
	w.log.Debug("Inbound message",
		"identity", msg.Identity,
		"lang", info.Lang.Iso6391(),
		"length", len(msg.Text))

	text := msg.Text
	if w.moderator != nil {
		sanitized, found := w.moderator.Censor(text)
		if len(found) > 0 {
			w.log.Warn("Censored inbound text", "identity", msg.Identity, "words", found)
			text = sanitized
		}
	}

	reply := w.handler.Handle(msg.Identity, text)

	if w.sender == nil {
		return
	}
	if err := w.sender.Send(ctx, msg.Identity, reply); err != nil {
		// Outbound failures stay at the transport boundary.
		w.log.Error("Failed to deliver reply", "identity", msg.Identity, "err", err)
		if w.monitor != nil {
			w.monitor.IncrSendFailures()
		}
		return
	}
	if w.monitor != nil {
		w.monitor.IncrRepliesSent()
	}
}
