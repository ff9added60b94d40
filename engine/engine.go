// Package engine implements the per-participant conversation engine: the
// command router, the registration state machine and the search handler.
// The engine performs no I/O; it reads and mutates the injected store and
// returns a reply string for every input.
package engine

import (
	"log/slog"
	"strings"
	"time"
	"troc-service/contract"
	"troc-service/domain"
	"troc-service/domain/event"
	"troc-service/store"

	"github.com/samber/lo"
)

type Engine struct {
	store  store.Store
	log    *slog.Logger
	events contract.EventPublisher
}

// New builds an engine over the given store. publisher may be nil when no
// sinks are wired (tests, REPL).
func New(s store.Store, log *slog.Logger, publisher contract.EventPublisher) *Engine {
	return &Engine{store: s, log: log, events: publisher}
}

// Handle processes one inbound message and returns the reply. It never
// panics outward: any internal failure resolves to a user-facing string.
// Global commands take precedence over an active flow, so a participant can
// always escape a stuck registration.
func (e *Engine) Handle(identity, raw string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Handler panicked", "identity", identity, "cause", r)
			reply = replyInternalError
		}
	}()

	p := e.store.GetOrCreate(identity)
	cmd := domain.ParseCommand(raw)

	switch cmd.Kind {
	case domain.CmdHelp:
		return replyHelp
	case domain.CmdRegister:
		e.store.SetState(identity, domain.StateAwaitingName)
		return replyRegisterIntro
	case domain.CmdProfile:
		if !p.Registered() {
			return replyMustRegister
		}
		return renderProfile(p)
	case domain.CmdMyOffers:
		if !p.Registered() {
			return replyMustRegister
		}
		if len(p.Services) == 0 {
			return replyNoOffers
		}
		return renderMyOffers(p.Services)
	case domain.CmdMyAgreements:
		if !p.Registered() {
			return replyMustRegister
		}
		agreements := e.store.Agreements(identity)
		if len(agreements) == 0 {
			return replyNoAgreements
		}
		return renderMyAgreements(agreements)
	case domain.CmdOffer:
		return e.handleOffer(p, cmd.Payload)
	case domain.CmdSearch:
		return e.handleSearch(cmd.Payload)
	case domain.CmdNeed:
		return e.handleNeed(p, cmd.Payload)
	}

	if state := e.store.State(identity); state != domain.StateNone {
		return e.advanceFlow(identity, state, raw)
	}
	return replyWelcome
}

func (e *Engine) handleOffer(p domain.Participant, payload string) string {
	if !p.Registered() {
		return replyMustRegister
	}
	offer, ok := domain.ParseOfferArgs(payload)
	if !ok {
		return replyOfferFormat
	}
	e.store.AppendOffer(p.Identity, offer)
	e.publish(event.OfferPublished{
		ID:       offer.ID,
		Identity: p.Identity,
		Service:  offer.Service,
		Hours:    offer.Hours,
		At:       time.Now().UTC(),
	})
	return replyOfferStored(offer)
}

func (e *Engine) handleNeed(p domain.Participant, label string) string {
	if !p.Registered() {
		return replyMustRegister
	}
	if label == "" {
		return replyNeedMissing
	}
	e.store.AppendNeed(p.Identity, label)
	e.publish(event.NeedPublished{Identity: p.Identity, Label: label, At: time.Now().UTC()})
	return replyNeedStored(label)
}

func (e *Engine) handleSearch(term string) string {
	if term == "" {
		return replySearchMissing
	}
	results := e.Search(term)
	if len(results) == 0 {
		return replyNoResults(term)
	}
	return renderSearchResults(term, results)
}

// Search matches term against the global offer index: case-insensitive
// substring on the service label, results in insertion order, no ranking.
// Exported for the JSON offers API, which shares these semantics.
func (e *Engine) Search(term string) []SearchResult {
	needle := strings.ToLower(term)
	matches := lo.Filter(e.store.AllOffers(), func(o store.IndexedOffer, _ int) bool {
		return strings.Contains(strings.ToLower(o.Offer.Service), needle)
	})
	return lo.Map(matches, func(o store.IndexedOffer, _ int) SearchResult {
		return toSearchResult(e.store.GetOrCreate(o.Identity).Name, o)
	})
}

// advanceFlow consumes one non-command input for the active registration
// step. Inputs are stored verbatim; the services and needs steps tolerate
// anything (implicit skip) so the flow can never dead-end.
func (e *Engine) advanceFlow(identity string, state domain.ConversationState, raw string) string {
	switch state {
	case domain.StateAwaitingName:
		e.store.Update(identity, func(p *domain.Participant) { p.Name = raw })
		e.store.SetState(identity, domain.StateAwaitingPhone)
		return replyAskPhone(raw)

	case domain.StateAwaitingPhone:
		e.store.Update(identity, func(p *domain.Participant) { p.Phone = raw })
		e.store.SetState(identity, domain.StateAwaitingEmail)
		return replyAskEmail

	case domain.StateAwaitingEmail:
		e.store.Update(identity, func(p *domain.Participant) { p.Email = raw })
		e.store.SetState(identity, domain.StateAwaitingServices)
		return replyAskServices

	case domain.StateAwaitingServices:
		if !domain.IsSkip(raw) {
			trimmed := strings.TrimSpace(raw)
			if strings.HasPrefix(strings.ToUpper(trimmed), "OFFER ") {
				if offer, ok := domain.ParseOfferArgs(trimmed); ok {
					e.store.AppendOffer(identity, offer)
					e.publish(event.OfferPublished{
						ID:       offer.ID,
						Identity: identity,
						Service:  offer.Service,
						Hours:    offer.Hours,
						At:       time.Now().UTC(),
					})
				}
			}
		}
		e.store.SetState(identity, domain.StateAwaitingNeeds)
		return replyAskNeeds

	case domain.StateAwaitingNeeds:
		if domain.IsSkip(raw) {
			// Explicit SKIP stores an empty needs list, which on a
			// re-registration wipes the previous one.
			e.store.Update(identity, func(p *domain.Participant) { p.Needs = nil })
		} else {
			trimmed := strings.TrimSpace(raw)
			if strings.HasPrefix(strings.ToUpper(trimmed), "NEED ") {
				if label := strings.TrimSpace(trimmed[5:]); label != "" {
					e.store.AppendNeed(identity, label)
					e.publish(event.NeedPublished{Identity: identity, Label: label, At: time.Now().UTC()})
				}
			}
		}
		e.store.ClearState(identity)
		p := e.store.GetOrCreate(identity)
		e.publish(event.ParticipantRegistered{
			Identity: identity,
			Name:     p.Name,
			Phone:    p.Phone,
			Email:    p.Email,
			At:       time.Now().UTC(),
		})
		return replyRegistrationDone

	default:
		// Corrupted state value: clear and fall back, never fail.
		e.log.Warn("Unknown conversation state, clearing", "identity", identity, "state", string(state))
		e.store.ClearState(identity)
		return replyWelcome
	}
}

// Reset wipes one identity and notifies sinks. Test/debug utility.
func (e *Engine) Reset(identity string) {
	e.store.Reset(identity)
	e.publish(event.ProfileReset{Identity: identity, At: time.Now().UTC()})
}

func (e *Engine) publish(evt event.DomainEvent) {
	if e.events == nil {
		return
	}
	e.events.Publish(evt)
}
