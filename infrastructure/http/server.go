package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"troc-service/observability"
)

// NewServer assembles the webhook, the offers API and the health endpoint
// into one http.Server. Route wiring lives here so cmd/main stays linear.
func NewServer(
	addr string,
	webhook *WebhookHandler,
	offers *OffersAPI,
	monitor *observability.Monitor,
	log *slog.Logger,
) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /webhook", webhook.Verify)
	mux.HandleFunc("POST /webhook", webhook.Receive)
	mux.HandleFunc("/api/offers", offers.Handle)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Status string              `json:"status"`
			Stats  observability.Stats `json:"stats"`
		}{Status: "ok", Stats: monitor.Snapshot()})
	})

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
}

// Addr formats host and port the way the server expects it.
func Addr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
