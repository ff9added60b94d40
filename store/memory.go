package store

import (
	"sync"
	"troc-service/domain"

	"github.com/samber/lo"
)

// MemoryStore is the authoritative in-session implementation of Store.
// All maps are keyed by participant identity and guarded by one mutex; the
// engine performs no I/O, so critical sections stay short.
type MemoryStore struct {
	mu           sync.RWMutex
	participants map[string]*domain.Participant
	states       map[string]domain.ConversationState
	offers       []IndexedOffer
	agreements   map[string][]domain.Agreement
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		participants: make(map[string]*domain.Participant),
		states:       make(map[string]domain.ConversationState),
		agreements:   make(map[string][]domain.Agreement),
	}
}

func (s *MemoryStore) GetOrCreate(identity string) domain.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.getOrCreateLocked(identity))
}

func (s *MemoryStore) getOrCreateLocked(identity string) *domain.Participant {
	if p, ok := s.participants[identity]; ok {
		return p
	}
	p := &domain.Participant{Identity: identity}
	s.participants[identity] = p
	return p
}

func (s *MemoryStore) Update(identity string, fn func(*domain.Participant)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.getOrCreateLocked(identity))
}

func (s *MemoryStore) AppendOffer(identity string, offer domain.ServiceOffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreateLocked(identity)
	p.Services = append(p.Services, offer)
	s.offers = append(s.offers, IndexedOffer{Identity: identity, Offer: offer})
}

func (s *MemoryStore) AppendNeed(identity string, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreateLocked(identity)
	p.Needs = append(p.Needs, label)
}

func (s *MemoryStore) AppendAgreement(identity string, agreement domain.Agreement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agreements[identity] = append(s.agreements[identity], agreement)
}

func (s *MemoryStore) Agreements(identity string) []domain.Agreement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Agreement, len(s.agreements[identity]))
	copy(out, s.agreements[identity])
	return out
}

func (s *MemoryStore) AllOffers() []IndexedOffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]IndexedOffer, len(s.offers))
	copy(out, s.offers)
	return out
}

func (s *MemoryStore) State(identity string) domain.ConversationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[identity]
}

func (s *MemoryStore) SetState(identity string, state domain.ConversationState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[identity] = state
}

func (s *MemoryStore) ClearState(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, identity)
}

func (s *MemoryStore) Reset(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.participants, identity)
	delete(s.states, identity)
	delete(s.agreements, identity)
	s.offers = lo.Filter(s.offers, func(o IndexedOffer, _ int) bool {
		return o.Identity != identity
	})
}

// snapshot copies the participant so callers never hold a reference into
// the store's mutable state.
func snapshot(p *domain.Participant) domain.Participant {
	out := *p
	out.Services = make([]domain.ServiceOffer, len(p.Services))
	copy(out.Services, p.Services)
	out.Needs = make([]string, len(p.Needs))
	copy(out.Needs, p.Needs)
	return out
}
