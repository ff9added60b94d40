package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"
	"troc-service/mocks"
	"troc-service/moderation"
	"troc-service/observability"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type echoHandler struct {
	seen chan string
}

func (h *echoHandler) Handle(_, text string) string {
	h.seen <- text
	return "reply: " + text
}

func TestSessionWorker_HandlesAndReplies(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inbox := make(chan InboundMessage, 1)
	handler := &echoHandler{seen: make(chan string, 1)}
	sender := mocks.NewMockSender(ctrl)
	monitor := observability.NewMonitor(slog.Default())

	sent := make(chan string, 1)
	sender.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, text string) error {
			sent <- text
			return nil
		})

	worker := NewSessionWorker(inbox, handler, sender, nil, monitor, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	inbox <- InboundMessage{Identity: "alice", Text: "HELP"}

	select {
	case text := <-sent:
		req.Equal("reply: HELP", text)
	case <-time.After(time.Second):
		req.FailNow("no reply delivered")
	}
	req.Eventually(func() bool {
		stats := monitor.Snapshot()
		return stats.MessagesIn == 1 && stats.RepliesSent == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSessionWorker_CensorsBeforeHandling(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moderator, err := moderation.New([]string{"idiot"}, '*')
	req.NoError(err)

	inbox := make(chan InboundMessage, 1)
	handler := &echoHandler{seen: make(chan string, 1)}
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	worker := NewSessionWorker(inbox, handler, sender, moderator, nil, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	inbox <- InboundMessage{Identity: "alice", Text: "espèce d'idiot"}

	select {
	case text := <-handler.seen:
		req.Equal("espèce d'*****", text)
	case <-time.After(time.Second):
		req.FailNow("handler never called")
	}
}

func TestSessionWorker_SendFailureCounted(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inbox := make(chan InboundMessage, 1)
	handler := &echoHandler{seen: make(chan string, 1)}
	sender := mocks.NewMockSender(ctrl)
	monitor := observability.NewMonitor(slog.Default())
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

	worker := NewSessionWorker(inbox, handler, sender, nil, monitor, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	inbox <- InboundMessage{Identity: "alice", Text: "HELP"}

	req.Eventually(func() bool {
		stats := monitor.Snapshot()
		return stats.SendFailures == 1 && stats.RepliesSent == 0
	}, time.Second, 10*time.Millisecond)
}
