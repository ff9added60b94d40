package event

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is emitted by the conversation engine after a successful
// mutation of the marketplace. Delivery to sinks is best effort; the
// in-memory store stays authoritative.
type DomainEvent interface {
	ParticipantID() string
}

type ParticipantRegistered struct {
	Identity string
	Name     string
	Phone    string
	Email    string
	At       time.Time
}

func (e ParticipantRegistered) ParticipantID() string { return e.Identity }

type OfferPublished struct {
	ID       uuid.UUID
	Identity string
	Service  string
	Hours    uint
	At       time.Time
}

func (e OfferPublished) ParticipantID() string { return e.Identity }

type NeedPublished struct {
	Identity string
	Label    string
	At       time.Time
}

func (e NeedPublished) ParticipantID() string { return e.Identity }

// ProfileReset is emitted by the reset utility so persistence can follow.
type ProfileReset struct {
	Identity string
	At       time.Time
}

func (e ProfileReset) ParticipantID() string { return e.Identity }
