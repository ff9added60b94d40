// Package sink contains the event consumers fed by the runtime fanout.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"troc-service/domain"
	"troc-service/domain/event"
	"troc-service/repositories"
)

// PersistenceSink mirrors marketplace mutations into BadgerDB so a restart
// can hydrate the in-memory store. Best effort: a failed write is reported
// to the fanout and logged there, never retried.
type PersistenceSink struct {
	repository repositories.IMarketplaceRepository
	log        *slog.Logger
}

func NewPersistenceSink(repository repositories.IMarketplaceRepository, log *slog.Logger) PersistenceSink {
	return PersistenceSink{repository: repository, log: log}
}

func (s PersistenceSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.ParticipantRegistered:
		return s.repository.SaveProfile(domain.Participant{
			Identity: evt.Identity,
			Name:     evt.Name,
			Phone:    evt.Phone,
			Email:    evt.Email,
		})
	case event.OfferPublished:
		return s.repository.StoreOffer(evt.Identity, domain.ServiceOffer{
			ID: evt.ID, Service: evt.Service, Hours: evt.Hours,
		}, evt.At)
	case event.NeedPublished:
		return s.repository.StoreNeed(evt.Identity, evt.Label, evt.At)
	case event.ProfileReset:
		return s.repository.DeleteParticipant(evt.Identity)
	default:
		s.log.Debug(fmt.Sprintf("Not persisted event : %v", evt))
		return nil
	}
}
