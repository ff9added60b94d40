// Package domain contains core concepts of the Troc-Service marketplace.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"
	"troc-service/errors"

	"github.com/google/uuid"
)

// Participant is a marketplace member, keyed by a stable identity string
// (the WhatsApp sender number). A participant is created empty on first
// contact and is considered registered once a name has been stored.
type Participant struct {
	Identity string
	Name     string
	Phone    string
	Email    string
	Services []ServiceOffer
	Needs    []string
}

// Registered reports whether the registration flow has stored a name.
// An empty name is the sole completeness gate for identity-scoped commands.
func (p Participant) Registered() bool {
	return p.Name != ""
}

// ServiceOffer is a (service, hours) pair a participant is willing to
// provide. Immutable once created; validation happens at construction,
// never at use.
type ServiceOffer struct {
	ID      uuid.UUID
	Service string
	Hours   uint
}

// NewServiceOffer validates and builds an offer. Malformed input must
// never produce a stored ServiceOffer.
func NewServiceOffer(service string, hours int) (ServiceOffer, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return ServiceOffer{}, errors.ErrEmptyServiceLabel
	}
	if hours <= 0 {
		return ServiceOffer{}, errors.ErrInvalidHours
	}
	return ServiceOffer{ID: uuid.New(), Service: service, Hours: uint(hours)}, nil
}

// Agreement records a service exchange between a participant and a partner.
// No chat command creates agreements; they are a store-only read path.
type Agreement struct {
	ID          uuid.UUID
	Description string
	Partner     string
}
