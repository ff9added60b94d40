package runtime

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
	"troc-service/mocks"
	"troc-service/observability"
	"troc-service/runtime/workers"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// orderedHandler records the texts seen per identity.
type orderedHandler struct {
	mu   sync.Mutex
	seen map[string][]string
}

func (h *orderedHandler) Handle(identity, text string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen[identity] = append(h.seen[identity], text)
	return "ok"
}

func (h *orderedHandler) texts(identity string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.seen[identity]))
	copy(out, h.seen[identity])
	return out
}

func TestOrchestrator_PerIdentityOrdering(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := &orderedHandler{seen: make(map[string][]string)}
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	log := slog.Default()
	monitor := observability.NewMonitor(log)
	bus := NewBus(16, log, monitor)
	sup := workers.NewSupervisor(log, 10*time.Millisecond)
	orchestrator := NewOrchestrator(log, sup, handler, sender, nil, monitor, bus, 4, 16)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req.NoError(orchestrator.Start(ctx))
	defer orchestrator.Stop()

	inputs := []string{"REGISTER", "John Doe", "+123", "j@x.com", "SKIP", "SKIP"}
	for _, text := range inputs {
		orchestrator.Dispatch(workers.InboundMessage{Identity: "alice", Text: text})
	}

	req.Eventually(func() bool {
		return len(handler.texts("alice")) == len(inputs)
	}, 2*time.Second, 10*time.Millisecond)
	req.Equal(inputs, handler.texts("alice"))
}

func TestOrchestrator_FanoutReceivesBusEvents(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := &orderedHandler{seen: make(map[string][]string)}
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	log := slog.Default()
	monitor := observability.NewMonitor(log)
	bus := NewBus(16, log, monitor)

	sink := mocks.NewMockEventSink(ctrl)
	consumed := make(chan struct{}, 1)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, any) error {
			consumed <- struct{}{}
			return nil
		})

	sup := workers.NewSupervisor(log, 10*time.Millisecond)
	orchestrator := NewOrchestrator(log, sup, handler, sender, nil, monitor, bus, 2, 16)
	orchestrator.RegisterSinks(sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req.NoError(orchestrator.Start(ctx))
	defer orchestrator.Stop()

	bus.Publish(testEvent{})

	select {
	case <-consumed:
	case <-time.After(2 * time.Second):
		req.FailNow("sink never received the published event")
	}
}

type testEvent struct{}

func (testEvent) ParticipantID() string { return "alice" }
