package repositories

import (
	"context"
	"log/slog"
	"testing"
	"troc-service/domain"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"
)

func openTestDirectory(t *testing.T) *OffersDirectory {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewOffersDirectory(writer, slog.Default())
}

func TestOffersDirectory_IndexAndSearch(t *testing.T) {
	req := require.New(t)
	directory := openTestDirectory(t)

	logo, err := domain.NewServiceOffer("design logo", 3)
	req.NoError(err)
	web, err := domain.NewServiceOffer("développement web", 5)
	req.NoError(err)
	req.NoError(directory.Index("alice", logo))
	req.NoError(directory.Index("bob", web))

	hits, err := directory.Search(context.Background(), "logo", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(logo.ID.String(), hits[0].OfferID)
	req.Equal("alice", hits[0].Identity)
	req.Equal("design logo", hits[0].Service)
	req.Equal(uint(3), hits[0].Hours)
}

func TestOffersDirectory_AnalyzedMatch(t *testing.T) {
	req := require.New(t)
	directory := openTestDirectory(t)

	logo, err := domain.NewServiceOffer("design logo", 3)
	req.NoError(err)
	req.NoError(directory.Index("alice", logo))

	// Tokenized query: one matching term is enough.
	hits, err := directory.Search(context.Background(), "design flyers", 10)
	req.NoError(err)
	req.Len(hits, 1)

	hits, err = directory.Search(context.Background(), "plomberie", 10)
	req.NoError(err)
	req.Empty(hits)
}

func TestOffersDirectory_IndexIsUpsert(t *testing.T) {
	req := require.New(t)
	directory := openTestDirectory(t)

	offer, err := domain.NewServiceOffer("design logo", 3)
	req.NoError(err)
	req.NoError(directory.Index("alice", offer))
	req.NoError(directory.Index("alice", offer))

	hits, err := directory.Search(context.Background(), "logo", 10)
	req.NoError(err)
	req.Len(hits, 1)
}
