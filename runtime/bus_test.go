package runtime

import (
	"log/slog"
	"testing"
	"time"
	"troc-service/domain/event"
	"troc-service/observability"

	"github.com/stretchr/testify/require"
)

func TestBus_PublishNeverBlocks(t *testing.T) {
	req := require.New(t)
	monitor := observability.NewMonitor(slog.Default())
	bus := NewBus(1, slog.Default(), monitor)

	evt := event.NeedPublished{Identity: "alice", Label: "x", At: time.Now().UTC()}
	bus.Publish(evt)
	// Buffer is full now; the second publish must return immediately.
	done := make(chan struct{})
	go func() {
		bus.Publish(evt)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.FailNow("Publish blocked on a full buffer")
	}

	req.Equal(uint64(1), monitor.Snapshot().DroppedEvents)
	req.Equal(evt, <-bus.Events())
}
