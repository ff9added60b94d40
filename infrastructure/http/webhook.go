// Package http binds the conversation runtime to the WhatsApp Business
// webhook and to a small JSON API. It is plumbing only: every reply
// decision lives in the engine.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"troc-service/runtime/workers"
)

// Dispatcher is the runtime-facing side of the webhook: enqueue and return.
type Dispatcher interface {
	Dispatch(msg workers.InboundMessage)
}

type WebhookHandler struct {
	verifyToken string
	dispatcher  Dispatcher
	log         *slog.Logger
}

func NewWebhookHandler(verifyToken string, dispatcher Dispatcher, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{verifyToken: verifyToken, dispatcher: dispatcher, log: log}
}

// Verify answers the provider's subscription challenge: echo hub.challenge
// when the shared token matches, 403 otherwise.
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode != "" && token == h.verifyToken {
		h.log.Info("Webhook verified")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge))
		return
	}
	h.log.Warn("Webhook verification failed", "mode", mode)
	w.WriteHeader(http.StatusForbidden)
}

// WhatsApp Business payload, trimmed to the fields the bot consumes.
type webhookPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// Receive extracts (identity, text) from the provider payload and enqueues
// it. The HTTP response never waits for the engine: the reply travels back
// through the outbound sender.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.log.Warn("Undecodable webhook payload", "err", err)
		http.Error(w, "Error", http.StatusBadRequest)
		return
	}
	if payload.Object != "whatsapp_business_account" {
		http.NotFound(w, r)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				identity := strings.TrimSpace(msg.From)
				if identity == "" {
					continue
				}
				h.dispatcher.Dispatch(workers.InboundMessage{
					Identity: identity,
					Text:     msg.Text.Body,
				})
			}
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
