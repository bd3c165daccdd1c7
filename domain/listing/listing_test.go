package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
)

func TestKindIsValid(t *testing.T) {
	assert.True(t, KindDirect.IsValid())
	assert.True(t, KindAuction.IsValid())
	assert.False(t, Kind("dutch").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestFingerprintTracksListingChanges(t *testing.T) {
	l := &Listing{
		Id:                    domain.ListingId("1"),
		BuyoutPrice:           CurrencyValue{Value: "1000000000000000000"},
		EndTimeInEpochSeconds: 1700000000,
	}
	before := l.Fingerprint()
	assert.Equal(t, before, l.Fingerprint())

	l.BuyoutPrice.Value = "2000000000000000000"
	assert.NotEqual(t, before, l.Fingerprint())
}

func TestDraftSubmittable(t *testing.T) {
	kind := KindDirect
	a := &asset.Asset{TokenId: domain.TokenId("1")}

	draft := &Draft{State: DraftStateSelectingAsset}
	assert.False(t, draft.Submittable())

	draft.Select(a)
	assert.False(t, draft.Submittable(), "kind and price still missing")

	draft.Kind = &kind
	assert.False(t, draft.Submittable(), "price still missing")

	draft.Price = "1.5"
	assert.True(t, draft.Submittable())

	draft.State = DraftStateSubmitting
	assert.False(t, draft.Submittable())
}

func TestDraftSelectReplaces(t *testing.T) {
	first := &asset.Asset{TokenId: domain.TokenId("1")}
	second := &asset.Asset{TokenId: domain.TokenId("2")}

	draft := &Draft{State: DraftStateSelectingAsset}
	draft.Select(first)
	assert.Equal(t, DraftStateAssetSelected, draft.State)

	draft.Select(second)
	assert.Equal(t, second, draft.Asset)
}

func TestCurrencyValueIsZero(t *testing.T) {
	assert.True(t, CurrencyValue{}.IsZero())
	assert.True(t, CurrencyValue{Value: "0"}.IsZero())
	assert.False(t, CurrencyValue{Value: "1"}.IsZero())
}
