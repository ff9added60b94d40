package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"troc-service/runtime/workers"

	"github.com/stretchr/testify/require"
)

type captureDispatcher struct {
	messages []workers.InboundMessage
}

func (d *captureDispatcher) Dispatch(msg workers.InboundMessage) {
	d.messages = append(d.messages, msg)
}

func TestWebhook_Verify(t *testing.T) {
	req := require.New(t)
	handler := NewWebhookHandler("secret-token", &captureDispatcher{}, slog.Default())

	query := url.Values{}
	query.Set("hub.mode", "subscribe")
	query.Set("hub.verify_token", "secret-token")
	query.Set("hub.challenge", "challenge-42")

	rec := httptest.NewRecorder()
	handler.Verify(rec, httptest.NewRequest(http.MethodGet, "/webhook?"+query.Encode(), nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("challenge-42", rec.Body.String())

	query.Set("hub.verify_token", "wrong")
	rec = httptest.NewRecorder()
	handler.Verify(rec, httptest.NewRequest(http.MethodGet, "/webhook?"+query.Encode(), nil))
	req.Equal(http.StatusForbidden, rec.Code)

	// Missing hub.mode entirely is also refused.
	rec = httptest.NewRecorder()
	handler.Verify(rec, httptest.NewRequest(http.MethodGet, "/webhook", nil))
	req.Equal(http.StatusForbidden, rec.Code)
}

func TestWebhook_Receive_DispatchesMessages(t *testing.T) {
	req := require.New(t)
	dispatcher := &captureDispatcher{}
	handler := NewWebhookHandler("secret-token", dispatcher, slog.Default())

	body := `{
	  "object": "whatsapp_business_account",
	  "entry": [{
	    "changes": [{
	      "value": {
	        "messages": [
	          {"from": "33612345678", "text": {"body": "HELP"}},
	          {"from": "33687654321", "text": {"body": "SEARCH design"}}
	        ]
	      }
	    }]
	  }]
	}`

	rec := httptest.NewRecorder()
	handler.Receive(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body)))

	req.Equal(http.StatusOK, rec.Code)
	req.Equal("OK", rec.Body.String())
	req.Len(dispatcher.messages, 2)
	req.Equal(workers.InboundMessage{Identity: "33612345678", Text: "HELP"}, dispatcher.messages[0])
	req.Equal(workers.InboundMessage{Identity: "33687654321", Text: "SEARCH design"}, dispatcher.messages[1])
}

func TestWebhook_Receive_RejectsForeignObjects(t *testing.T) {
	req := require.New(t)
	dispatcher := &captureDispatcher{}
	handler := NewWebhookHandler("secret-token", dispatcher, slog.Default())

	rec := httptest.NewRecorder()
	handler.Receive(rec, httptest.NewRequest(http.MethodPost, "/webhook",
		strings.NewReader(`{"object": "instagram", "entry": []}`)))
	req.Equal(http.StatusNotFound, rec.Code)
	req.Empty(dispatcher.messages)

	rec = httptest.NewRecorder()
	handler.Receive(rec, httptest.NewRequest(http.MethodPost, "/webhook",
		strings.NewReader(`not json`)))
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestWebhook_Receive_SkipsBlankSenders(t *testing.T) {
	req := require.New(t)
	dispatcher := &captureDispatcher{}
	handler := NewWebhookHandler("secret-token", dispatcher, slog.Default())

	body := `{
	  "object": "whatsapp_business_account",
	  "entry": [{
	    "changes": [{
	      "value": {"messages": [{"from": "  ", "text": {"body": "HELP"}}]}
	    }]
	  }]
	}`
	rec := httptest.NewRecorder()
	handler.Receive(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body)))
	req.Equal(http.StatusOK, rec.Code)
	req.Empty(dispatcher.messages)
}
