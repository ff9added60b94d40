package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"troc-service/domain"

	"github.com/blugelabs/bluge"
)

// OffersDirectory maintains a full-text index over every published offer.
// It backs the operator search tooling; the chat SEARCH command keeps its
// own substring semantics over the in-memory index and never reads bluge.
type OffersDirectory struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewOffersDirectory(writer *bluge.Writer, log *slog.Logger) *OffersDirectory {
	return &OffersDirectory{writer: writer, log: log}
}

// Index upserts one offer document, keyed by the offer UUID.
func (d *OffersDirectory) Index(identity string, offer domain.ServiceOffer) error {
	doc := bluge.NewDocument(offer.ID.String()).
		AddField(bluge.NewTextField("service", offer.Service).StoreValue()).
		AddField(bluge.NewKeywordField("identity", identity).StoreValue()).
		AddField(bluge.NewNumericField("hours", float64(offer.Hours)).StoreValue())
	return d.writer.Update(doc.ID(), doc)
}

// DirectoryHit is one analyzed-search result.
type DirectoryHit struct {
	OfferID  string
	Identity string
	Service  string
	Hours    uint
}

// Search runs an analyzed match query on the service field, best score
// first. Unlike the chat SEARCH command this tokenizes the term, so
// "design logo" also matches documents containing only "logo".
func (d *OffersDirectory) Search(ctx context.Context, term string, limit int) ([]DirectoryHit, error) {
	reader, err := d.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			d.log.Warn("Failed to close index reader", "err", err)
		}
	}()

	query := bluge.NewMatchQuery(term).SetField("service")
	request := bluge.NewTopNSearch(limit, query)

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("directory search: %w", err)
	}

	var hits []DirectoryHit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("iterate matches: %w", err)
		}
		if match == nil {
			break
		}
		var hit DirectoryHit
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.OfferID = string(value)
			case "identity":
				hit.Identity = string(value)
			case "service":
				hit.Service = string(value)
			case "hours":
				if n, err := bluge.DecodeNumericFloat64(value); err == nil {
					hit.Hours = uint(n)
				}
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("visit stored fields: %w", err)
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
