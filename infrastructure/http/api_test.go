package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"troc-service/engine"
	"troc-service/store"

	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) (*OffersAPI, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	eng := engine.New(s, slog.Default(), nil)
	return NewOffersAPI(eng, s, nil, slog.Default()), s
}

func TestOffersAPI_CreateThenSearch(t *testing.T) {
	req := require.New(t)
	api, s := newAPI(t)

	rec := httptest.NewRecorder()
	api.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/offers",
		strings.NewReader(`{"identity": "alice", "service": "design logo", "hours": 3}`)))
	req.Equal(http.StatusCreated, rec.Code)

	var created offerResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	req.NotEmpty(created.ID)
	req.Equal("alice", created.Identity)
	req.Equal("design logo", created.Service)
	req.Equal(uint(3), created.Hours)

	// Both containers got the offer.
	req.Len(s.GetOrCreate("alice").Services, 1)
	req.Len(s.AllOffers(), 1)

	rec = httptest.NewRecorder()
	api.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/offers?q=logo", nil))
	req.Equal(http.StatusOK, rec.Code)

	var results []searchResponse
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &results))
	req.Len(results, 1)
	req.Equal("design logo", results[0].Service)
	// No registered name for alice, the catalog fallback applies.
	req.Equal("Utilisateur", results[0].Name)
}

func TestOffersAPI_Create_Validation(t *testing.T) {
	req := require.New(t)
	api, s := newAPI(t)

	for _, body := range []string{
		`{"service": "design", "hours": 3}`,
		`{"identity": "alice", "hours": 3}`,
		`{"identity": "alice", "service": "design"}`,
		`{"identity": "alice", "service": "design", "hours": 0}`,
		`{"identity": "alice", "service": "design", "hours": -2}`,
		`{"identity": "alice", "service": "   ", "hours": 3}`,
		`not json`,
	} {
		rec := httptest.NewRecorder()
		api.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/offers", strings.NewReader(body)))
		req.Equal(http.StatusBadRequest, rec.Code, "body=%s", body)
	}
	req.Empty(s.AllOffers())
}

func TestOffersAPI_Search_EmptyQuery(t *testing.T) {
	req := require.New(t)
	api, _ := newAPI(t)

	rec := httptest.NewRecorder()
	api.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/offers", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`[]`, rec.Body.String())
}

func TestOffersAPI_MethodNotAllowed(t *testing.T) {
	req := require.New(t)
	api, _ := newAPI(t)

	rec := httptest.NewRecorder()
	api.Handle(rec, httptest.NewRequest(http.MethodDelete, "/api/offers", nil))
	req.Equal(http.StatusMethodNotAllowed, rec.Code)
}
