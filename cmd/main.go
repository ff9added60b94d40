package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"troc-service/engine"
	troch "troc-service/infrastructure/http"
	"troc-service/infrastructure/whatsapp"
	"troc-service/moderation"
	"troc-service/observability"
	"troc-service/repositories"
	"troc-service/runtime"
	"troc-service/runtime/workers"
	"troc-service/sink"
	"troc-service/store"

	env "github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes
// error reporting so deferred cleanups execute before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("offers directory opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing offers directory...")
		_ = writer.Close()
	}()

	// 3. Marketplace state, hydrated from disk
	marketplace := repositories.NewMarketplaceRepository(db, log)
	participants := store.NewMemoryStore()
	if err = marketplace.Hydrate(participants); err != nil {
		return fmt.Errorf("hydration failed: %w", err)
	}

	// 4. Moderation
	words, err := loadCensoredWords(config.CensoredWordsPath)
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	replacement, err := config.CharacterRune()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	moderator, err := moderation.New(words, replacement)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}

	// 5. Engine, events & supervision
	monitor := observability.NewMonitor(log)
	bus := runtime.NewBus(config.EventBufferSize, log, monitor)
	eng := engine.New(participants, log, bus)
	directory := repositories.NewOffersDirectory(writer, log)
	sender := whatsapp.NewSender(config.GraphAPIBaseURL, config.WhatsAppAccessToken, config.WhatsAppPhoneNumberID, log)

	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(
		log, sup, eng, sender, moderator, monitor, bus,
		config.SessionWorkers, config.BufferSize,
	)
	orchestrator.RegisterSinks(
		sink.NewPersistenceSink(marketplace, log),
		sink.NewDirectorySink(directory, log),
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	// 7. HTTP surface (webhook + API + health)
	webhook := troch.NewWebhookHandler(config.VerifyToken, orchestrator, log)
	offers := troch.NewOffersAPI(eng, participants, bus, log)
	server := troch.NewServer(troch.Addr(config.Host, config.Port), webhook, offers, monitor, log)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", server.Addr, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

// loadCensoredWords reads one word per line, skipping blanks. An empty
// path disables moderation.
func loadCensoredWords(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	return words, scanner.Err()
}
