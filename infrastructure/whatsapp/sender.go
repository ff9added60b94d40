package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Sender delivers replies through the WhatsApp Cloud API.
// When credentials are missing it degrades to a no-op so the bot
// can run locally without a Meta application.
type Sender struct {
	client        *http.Client
	log           *slog.Logger
	baseURL       string
	accessToken   string
	phoneNumberID string
}

func NewSender(baseURL, accessToken, phoneNumberID string, log *slog.Logger) *Sender {
	return &Sender{
		client:        &http.Client{Timeout: 10 * time.Second},
		log:           log,
		baseURL:       baseURL,
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
	}
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

func (s *Sender) Send(ctx context.Context, identity, text string) error {
	if s.accessToken == "" || s.phoneNumberID == "" {
		s.log.Warn("whatsapp credentials missing, reply not sent", "identity", identity)
		return nil
	}

	msg := textMessage{MessagingProduct: "whatsapp", To: identity, Type: "text"}
	msg.Text.Body = text

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.baseURL, s.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("whatsapp api status %d: %s", resp.StatusCode, detail)
	}

	s.log.Debug("reply delivered", "identity", identity)
	return nil
}
