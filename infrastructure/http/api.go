package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
	"troc-service/contract"
	"troc-service/domain"
	"troc-service/domain/event"
	"troc-service/engine"
	"troc-service/store"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// OffersAPI is the JSON counterpart of the chat OFFER/SEARCH commands, for
// callers that prefer HTTP over the messaging channel.
type OffersAPI struct {
	engine    *engine.Engine
	store     store.Store
	publisher contract.EventPublisher
	log       *slog.Logger
}

func NewOffersAPI(eng *engine.Engine, s store.Store, publisher contract.EventPublisher, log *slog.Logger) *OffersAPI {
	return &OffersAPI{engine: eng, store: s, publisher: publisher, log: log}
}

type createOfferRequest struct {
	Identity string `json:"identity" validate:"required"`
	Service  string `json:"service" validate:"required"`
	Hours    int    `json:"hours" validate:"required,gt=0"`
}

type offerResponse struct {
	ID       string `json:"id"`
	Identity string `json:"identity"`
	Service  string `json:"service"`
	Hours    uint   `json:"hours"`
}

type searchResponse struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Hours   uint   `json:"hours"`
}

func (a *OffersAPI) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.search(w, r)
	case http.MethodPost:
		a.create(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// search shares the chat SEARCH semantics: substring match, insertion
// order. An empty q lists nothing instead of everything.
func (a *OffersAPI) search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeJSON(w, http.StatusOK, []searchResponse{})
		return
	}
	results := a.engine.Search(term)
	out := make([]searchResponse, 0, len(results))
	for _, res := range results {
		out = append(out, searchResponse{Name: res.Name, Service: res.Service, Hours: res.Hours})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *OffersAPI) create(w http.ResponseWriter, r *http.Request) {
	var req createOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	offer, err := domain.NewServiceOffer(req.Service, req.Hours)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.store.GetOrCreate(req.Identity)
	a.store.AppendOffer(req.Identity, offer)
	if a.publisher != nil {
		a.publisher.Publish(event.OfferPublished{
			ID:       offer.ID,
			Identity: req.Identity,
			Service:  offer.Service,
			Hours:    offer.Hours,
			At:       time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusCreated, offerResponse{
		ID:       offer.ID.String(),
		Identity: req.Identity,
		Service:  offer.Service,
		Hours:    offer.Hours,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
