package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/keys"
	"github.com/Lugdu84/ebay-clone-nft/domain/listing"
	"github.com/Lugdu84/ebay-clone-nft/service/cache"
	"github.com/Lugdu84/ebay-clone-nft/service/cache/provider/primitive"
)

func newTestRepo(name string) listing.DraftRepo {
	return NewDraftRepo(cache.New(cache.ServiceConfig{
		Pfx:   keys.PfxListingDraft,
		Cache: primitive.NewPrimitive(name, 1),
	}))
}

func TestDraftRoundTrip(t *testing.T) {
	c := bCtx.Background()
	repo := newTestRepo("draftRoundTrip")

	kind := listing.KindAuction
	draft := &listing.Draft{
		Id:    "d1",
		Owner: domain.Address("0xabc"),
		State: listing.DraftStateAssetSelected,
		Kind:  &kind,
		Price: "1.5",
	}
	require.NoError(t, repo.Create(c, draft))

	got, err := repo.FindOne(c, "d1")
	require.NoError(t, err)
	assert.Equal(t, draft.Owner, got.Owner)
	assert.Equal(t, draft.State, got.State)
	require.NotNil(t, got.Kind)
	assert.Equal(t, kind, *got.Kind)
	assert.Equal(t, "1.5", got.Price)
}

func TestDraftUpdateOverwrites(t *testing.T) {
	c := bCtx.Background()
	repo := newTestRepo("draftUpdate")

	draft := &listing.Draft{Id: "d1", State: listing.DraftStateSelectingAsset}
	require.NoError(t, repo.Create(c, draft))

	draft.State = listing.DraftStateAssetSelected
	require.NoError(t, repo.Update(c, draft))

	got, err := repo.FindOne(c, "d1")
	require.NoError(t, err)
	assert.Equal(t, listing.DraftStateAssetSelected, got.State)
}

func TestDraftNotFound(t *testing.T) {
	c := bCtx.Background()
	repo := newTestRepo("draftMissing")

	_, err := repo.FindOne(c, "no-such-draft")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftDelete(t *testing.T) {
	c := bCtx.Background()
	repo := newTestRepo("draftDelete")

	require.NoError(t, repo.Create(c, &listing.Draft{Id: "d1"}))
	require.NoError(t, repo.Delete(c, "d1"))

	_, err := repo.FindOne(c, "d1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
