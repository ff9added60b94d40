package test

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
	"troc-service/engine"
	"troc-service/mocks"
	"troc-service/observability"
	"troc-service/repositories"
	"troc-service/runtime"
	"troc-service/runtime/workers"
	"troc-service/sink"
	"troc-service/store"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// replyRecorder captures outbound replies per identity.
type replyRecorder struct {
	mu      sync.Mutex
	replies map[string][]string
}

func (r *replyRecorder) record(identity, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies[identity] = append(r.replies[identity], text)
}

func (r *replyRecorder) count(identity string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.replies[identity])
}

func (r *replyRecorder) last(identity string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.replies[identity]
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1]
}

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	defer db.Close()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer writer.Close()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	marketplace := repositories.NewMarketplaceRepository(db, log)
	directory := repositories.NewOffersDirectory(writer, log)
	participants := store.NewMemoryStore()
	monitor := observability.NewMonitor(log)
	bus := runtime.NewBus(64, log, monitor)
	eng := engine.New(participants, log, bus)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	recorder := &replyRecorder{replies: make(map[string][]string)}
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, identity, text string) error {
			recorder.record(identity, text)
			return nil
		}).
		AnyTimes()

	supervisor := workers.NewSupervisor(log, 200*time.Millisecond)
	orchestrator := runtime.NewOrchestrator(log, supervisor, eng, sender, nil, monitor, bus, 4, 64)
	orchestrator.RegisterSinks(
		sink.NewPersistenceSink(marketplace, log),
		sink.NewDirectorySink(directory, log),
	)
	req.NoError(orchestrator.Start(ctx))
	defer orchestrator.Stop()

	alice := "33611111111"
	bob := "33622222222"

	// 1. Alice registers and publishes an offer.
	for _, text := range []string{
		"REGISTER", "Alice Martin", "+33611111111", "alice@example.com", "SKIP", "SKIP",
		"OFFER design logo 3",
	} {
		orchestrator.Dispatch(workers.InboundMessage{Identity: alice, Text: text})
	}
	req.Eventually(func() bool { return recorder.count(alice) == 7 }, 5*time.Second, 20*time.Millisecond)
	req.Contains(recorder.last(alice), "design logo")

	// 2. Bob searches without registering.
	orchestrator.Dispatch(workers.InboundMessage{Identity: bob, Text: "SEARCH design"})
	req.Eventually(func() bool { return recorder.count(bob) == 1 }, 5*time.Second, 20*time.Millisecond)
	req.True(strings.Contains(recorder.last(bob), "Alice Martin - design logo (3h)"), recorder.last(bob))

	// 3. Bob is still gated on identity commands.
	orchestrator.Dispatch(workers.InboundMessage{Identity: bob, Text: "PROFILE"})
	req.Eventually(func() bool { return recorder.count(bob) == 2 }, 5*time.Second, 20*time.Millisecond)
	req.Contains(recorder.last(bob), "inscrire")

	// 4. The persistence sink mirrored everything: a fresh store hydrates
	//    to the same marketplace.
	req.Eventually(func() bool {
		rehydrated := store.NewMemoryStore()
		if err := marketplace.Hydrate(rehydrated); err != nil {
			return false
		}
		p := rehydrated.GetOrCreate(alice)
		return p.Name == "Alice Martin" && len(rehydrated.AllOffers()) == 1
	}, 5*time.Second, 50*time.Millisecond)

	// 5. The directory sink indexed the offer for analyzed search.
	req.Eventually(func() bool {
		hits, err := directory.Search(ctx, "logo", 10)
		return err == nil && len(hits) == 1 && hits[0].Identity == alice
	}, 5*time.Second, 50*time.Millisecond)

	// 6. Counters saw the traffic.
	stats := monitor.Snapshot()
	req.Equal(uint64(9), stats.MessagesIn)
	req.Equal(uint64(9), stats.RepliesSent)
	req.Zero(stats.SendFailures)
}
