package sink

import (
	"context"
	"log/slog"
	"troc-service/domain"
	"troc-service/domain/event"
	"troc-service/repositories"
)

// DirectorySink feeds published offers into the bluge full-text index.
type DirectorySink struct {
	directory *repositories.OffersDirectory
	log       *slog.Logger
}

func NewDirectorySink(directory *repositories.OffersDirectory, log *slog.Logger) DirectorySink {
	return DirectorySink{directory: directory, log: log}
}

func (s DirectorySink) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.OfferPublished)
	if !ok {
		return nil
	}
	return s.directory.Index(evt.Identity, domain.ServiceOffer{
		ID: evt.ID, Service: evt.Service, Hours: evt.Hours,
	})
}
