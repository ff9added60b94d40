//go:generate go run go.uber.org/mock/mockgen -source=marketplace.go -destination=../mocks/mock_marketplace_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"troc-service/domain"
	"troc-service/store"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// IMarketplaceRepository is the write-behind persistence port. The
// in-memory store stays authoritative; this repository only mirrors
// mutations so a restart can hydrate the session.
type IMarketplaceRepository interface {
	SaveProfile(p domain.Participant) error
	StoreOffer(identity string, offer domain.ServiceOffer, at time.Time) error
	StoreNeed(identity string, label string, at time.Time) error
	StoreAgreement(identity string, agreement domain.Agreement) error
	DeleteParticipant(identity string) error
	Hydrate(s store.Store) error
}

type MarketplaceRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMarketplaceRepository(db *badger.DB, log *slog.Logger) *MarketplaceRepository {
	return &MarketplaceRepository{db: db, log: log}
}

// Key layout:
//
//	participant:{identity}                      profile fields
//	offer:{timestamp_padded}:{uuid}             global, chronological
//	need:{identity}:{timestamp_padded}:{uuid}   per participant
//	agreement:{identity}:{uuid}
//
// The 19-digit zero padding keeps offers lexicographically sorted by time,
// so hydration rebuilds the global index in its original insertion order.
// The UUID is a collision disconnector for same-nanosecond writes.

type profileRecord struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type offerRecord struct {
	ID       string `json:"id"`
	Identity string `json:"identity"`
	Service  string `json:"service"`
	Hours    uint   `json:"hours"`
}

type needRecord struct {
	Identity string `json:"identity"`
	Label    string `json:"label"`
}

type agreementRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Partner     string `json:"partner"`
}

func (r *MarketplaceRepository) SaveProfile(p domain.Participant) error {
	data, err := json.Marshal(profileRecord{
		Identity: p.Identity, Name: p.Name, Phone: p.Phone, Email: p.Email,
	})
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("participant:"+p.Identity), data)
	})
}

func (r *MarketplaceRepository) StoreOffer(identity string, offer domain.ServiceOffer, at time.Time) error {
	key := fmt.Sprintf("offer:%019d:%s", at.UnixNano(), offer.ID)
	data, err := json.Marshal(offerRecord{
		ID: offer.ID.String(), Identity: identity, Service: offer.Service, Hours: offer.Hours,
	})
	if err != nil {
		return fmt.Errorf("marshal offer: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (r *MarketplaceRepository) StoreNeed(identity string, label string, at time.Time) error {
	key := fmt.Sprintf("need:%s:%019d:%s", identity, at.UnixNano(), uuid.New())
	data, err := json.Marshal(needRecord{Identity: identity, Label: label})
	if err != nil {
		return fmt.Errorf("marshal need: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (r *MarketplaceRepository) StoreAgreement(identity string, agreement domain.Agreement) error {
	key := fmt.Sprintf("agreement:%s:%s", identity, agreement.ID)
	data, err := json.Marshal(agreementRecord{
		ID: agreement.ID.String(), Description: agreement.Description, Partner: agreement.Partner,
	})
	if err != nil {
		return fmt.Errorf("marshal agreement: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// DeleteParticipant removes every key belonging to identity, offers
// included. Mirrors the store's reset utility.
func (r *MarketplaceRepository) DeleteParticipant(identity string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var doomed [][]byte

		collect := func(prefix []byte, keep func(val []byte) bool) error {
			options := badger.DefaultIteratorOptions
			it := txn.NewIterator(options)
			defer it.Close()
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				if keep != nil {
					matched := false
					err := item.Value(func(val []byte) error {
						matched = keep(val)
						return nil
					})
					if err != nil {
						return err
					}
					if !matched {
						continue
					}
				}
				doomed = append(doomed, item.KeyCopy(nil))
			}
			return nil
		}

		for _, prefix := range []string{
			"participant:" + identity,
			"need:" + identity + ":",
			"agreement:" + identity + ":",
		} {
			if err := collect([]byte(prefix), nil); err != nil {
				return err
			}
		}
		// Offers are keyed globally; filter on the stored identity.
		err := collect([]byte("offer:"), func(val []byte) bool {
			var rec offerRecord
			if err := json.Unmarshal(val, &rec); err != nil {
				return false
			}
			return rec.Identity == identity
		})
		if err != nil {
			return err
		}

		for _, key := range doomed {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Hydrate replays the persisted state into a fresh store at boot. Offers
// come back in key order, so AppendOffer rebuilds both the participants'
// lists and the global index with the original ordering.
func (r *MarketplaceRepository) Hydrate(s store.Store) error {
	return r.db.View(func(txn *badger.Txn) error {
		if err := r.hydrateProfiles(txn, s); err != nil {
			return err
		}
		if err := r.hydrateOffers(txn, s); err != nil {
			return err
		}
		if err := r.hydrateNeeds(txn, s); err != nil {
			return err
		}
		return r.hydrateAgreements(txn, s)
	})
}

func (r *MarketplaceRepository) hydrateProfiles(txn *badger.Txn, s store.Store) error {
	return scan(txn, "participant:", func(_ string, val []byte) error {
		var rec profileRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return err
		}
		s.Update(rec.Identity, func(p *domain.Participant) {
			p.Name = rec.Name
			p.Phone = rec.Phone
			p.Email = rec.Email
		})
		return nil
	})
}

func (r *MarketplaceRepository) hydrateOffers(txn *badger.Txn, s store.Store) error {
	return scan(txn, "offer:", func(_ string, val []byte) error {
		var rec offerRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return err
		}
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return fmt.Errorf("offer id %q: %w", rec.ID, err)
		}
		s.AppendOffer(rec.Identity, domain.ServiceOffer{ID: id, Service: rec.Service, Hours: rec.Hours})
		return nil
	})
}

func (r *MarketplaceRepository) hydrateNeeds(txn *badger.Txn, s store.Store) error {
	return scan(txn, "need:", func(_ string, val []byte) error {
		var rec needRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return err
		}
		s.AppendNeed(rec.Identity, rec.Label)
		return nil
	})
}

func (r *MarketplaceRepository) hydrateAgreements(txn *badger.Txn, s store.Store) error {
	return scan(txn, "agreement:", func(key string, val []byte) error {
		var rec agreementRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return err
		}
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return fmt.Errorf("agreement id %q: %w", rec.ID, err)
		}
		identity := strings.TrimPrefix(key, "agreement:")
		if i := strings.LastIndexByte(identity, ':'); i >= 0 {
			identity = identity[:i]
		}
		s.AppendAgreement(identity, domain.Agreement{
			ID: id, Description: rec.Description, Partner: rec.Partner,
		})
		return nil
	})
}

func scan(txn *badger.Txn, prefix string, fn func(key string, val []byte) error) error {
	p := []byte(prefix)
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		item := it.Item()
		err := item.Value(func(val []byte) error {
			return fn(string(item.Key()), val)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
