package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BotBaseURL == "" {
		s.T().Skip("BOT_BASE_URL not set, skipping e2e suite")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
}

// Step prints a colorized header so scenario phases stand out in logs
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Get performs a GET against the bot and returns status and body
func (s *BaseHTTPSuite) Get(path string) (int, []byte) {
	resp, err := s.client.Get(s.Config.BotBaseURL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, body
}

// PostJSON marshals payload and POSTs it, returning status and body
func (s *BaseHTTPSuite) PostJSON(path string, payload any) (int, []byte) {
	data, err := json.Marshal(payload)
	s.Require().NoError(err)
	resp, err := s.client.Post(s.Config.BotBaseURL+path, "application/json", bytes.NewReader(data))
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, body
}

// SendText delivers one inbound text to the webhook, shaped like a
// WhatsApp Cloud API notification
func (s *BaseHTTPSuite) SendText(from, text string) {
	payload := map[string]any{
		"object": "whatsapp_business_account",
		"entry": []map[string]any{{
			"changes": []map[string]any{{
				"value": map[string]any{
					"messages": []map[string]any{{
						"from": from,
						"text": map[string]any{"body": text},
					}},
				},
			}},
		}},
	}
	status, _ := s.PostJSON("/webhook", payload)
	s.Require().Equal(http.StatusOK, status)
}
