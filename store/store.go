//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
package store

import "troc-service/domain"

// IndexedOffer is one entry of the global offer index: the offer together
// with the identity of the participant who published it.
type IndexedOffer struct {
	Identity string
	Offer    domain.ServiceOffer
}

// Store is the marketplace state port injected into the conversation
// engine. It holds participants, the global offer index, agreements and the
// per-participant conversation state. Implementations must keep a
// participant's own offer list and the global index in sync: every offer is
// appended once, in both places, atomically from the caller's point of view.
type Store interface {
	// GetOrCreate returns the participant for identity, creating an empty
	// one on first contact. Idempotent: a second call returns the same
	// entry. The returned value is a snapshot copy.
	GetOrCreate(identity string) domain.Participant

	// Update applies fn to the stored participant under the store lock.
	// The participant is created first if absent.
	Update(identity string, fn func(*domain.Participant))

	// AppendOffer appends a validated offer to the participant's list and
	// to the global index in one step.
	AppendOffer(identity string, offer domain.ServiceOffer)

	AppendNeed(identity string, label string)
	AppendAgreement(identity string, agreement domain.Agreement)
	Agreements(identity string) []domain.Agreement

	// AllOffers returns the global offer index in insertion order.
	AllOffers() []IndexedOffer

	// State returns the stored conversation state; StateNone when absent.
	State(identity string) domain.ConversationState
	SetState(identity string, state domain.ConversationState)
	ClearState(identity string)

	// Reset removes the participant, its conversation state, its offers
	// and its agreements. Test/debug utility, not production traffic.
	Reset(identity string)
}
