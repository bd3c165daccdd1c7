package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	activityMocks "github.com/Lugdu84/ebay-clone-nft/domain/activity/mocks"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
	"github.com/Lugdu84/ebay-clone-nft/domain/listing"
	"github.com/Lugdu84/ebay-clone-nft/domain/market"
	marketMocks "github.com/Lugdu84/ebay-clone-nft/domain/market/mocks"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
	"github.com/Lugdu84/ebay-clone-nft/service/cache"
	"github.com/Lugdu84/ebay-clone-nft/service/cache/provider/primitive"
	ensMocks "github.com/Lugdu84/ebay-clone-nft/service/ens/mocks"
	lockMocks "github.com/Lugdu84/ebay-clone-nft/service/lock/mocks"
	"github.com/Lugdu84/ebay-clone-nft/service/notifier"
	notifierMocks "github.com/Lugdu84/ebay-clone-nft/service/notifier/mocks"
	"github.com/Lugdu84/ebay-clone-nft/stores/listing/repository"
)

const testChainId = domain.ChainId(5)

type listingUseCaseSuite struct {
	suite.Suite

	ctx         bCtx.Ctx
	marketplace *marketMocks.Marketplace
	collection  *marketMocks.Collection
	notifier    *notifierMocks.Service
	activity    *activityMocks.UseCase
	lock        *lockMocks.Service
	ens         *ensMocks.ENS

	owner   domain.Address
	session wallet.Session
	asset   *asset.Asset

	uc listing.UseCase
}

func TestListingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(listingUseCaseSuite))
}

func (s *listingUseCaseSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.marketplace = &marketMocks.Marketplace{}
	s.collection = &marketMocks.Collection{}
	s.notifier = &notifierMocks.Service{}
	s.activity = &activityMocks.UseCase{}
	s.lock = &lockMocks.Service{}
	s.ens = &ensMocks.ENS{}

	s.owner = domain.Address("0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d")
	s.session = wallet.Session{Address: s.owner, ChainId: testChainId}
	s.asset = &asset.Asset{
		Contract: domain.Address("0xaaaa000000000000000000000000000000000001"),
		TokenId:  domain.TokenId("3"),
		Name:     "item",
		Owner:    s.owner,
	}

	s.uc = NewListingUseCase(&ListingUseCaseCfg{
		ChainId:     testChainId,
		Marketplace: s.marketplace,
		Collection:  s.collection,
		DraftRepo:   repository.NewDraftRepo(cache.New(cache.ServiceConfig{
			Pfx:   "draft",
			Cache: primitive.NewPrimitive("draft", 1),
		})),
		MinNextBid: cache.New(cache.ServiceConfig{
			Pfx:   "minNextBid",
			Cache: primitive.NewPrimitive("minNextBid", 1),
		}),
		Ens:      s.ens,
		Notifier: s.notifier,
		Activity: s.activity,
		Lock:     s.lock,
	})
}

func (s *listingUseCaseSuite) expectLock() {
	s.lock.On("Acquire", mock.Anything, s.owner).Return(func() {}, nil)
}

func (s *listingUseCaseSuite) preparedDraft(kind listing.Kind, price string) *listing.Draft {
	s.collection.On("OwnedAssets", mock.Anything, s.owner).Return([]*asset.Asset{s.asset}, nil)

	draft, err := s.uc.CreateDraft(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Equal(listing.DraftStateSelectingAsset, draft.State)

	draft, err = s.uc.SelectAsset(s.ctx, draft.Id, s.owner, s.asset.ToId())
	s.Require().NoError(err)
	s.Equal(listing.DraftStateAssetSelected, draft.State)

	draft, err = s.uc.UpdateDraft(s.ctx, draft.Id, s.owner, listing.DraftPatch{
		Kind:  &kind,
		Price: &price,
	})
	s.Require().NoError(err)
	return draft
}

func (s *listingUseCaseSuite) TestSubmitDraftDirect() {
	s.expectLock()
	draft := s.preparedDraft(listing.KindDirect, "1.5")

	s.marketplace.On("CreateDirectListing", mock.Anything, mock.MatchedBy(func(p market.CreateDirectListingParams) bool {
		return p.AssetContract == s.asset.Contract &&
			p.TokenId == s.asset.TokenId &&
			p.BuyoutPricePerToken == "1500000000000000000" &&
			p.Quantity == 1 &&
			p.ListingDurationInSeconds == 7*24*60*60
	})).Return(domain.ListingId("7"), nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything, "NFT listed successfully")
	s.activity.On("Record", mock.Anything, mock.Anything)

	res, err := s.uc.SubmitDraft(s.ctx, s.session, draft.Id)
	s.Require().NoError(err)
	s.Equal(domain.ListingId("7"), res.ListingId)
	s.Equal("/", res.Redirect)

	// the draft is dropped once listed
	_, err = s.uc.GetDraft(s.ctx, draft.Id, s.owner)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingUseCaseSuite) TestSubmitDraftAuction() {
	s.expectLock()
	draft := s.preparedDraft(listing.KindAuction, "2")

	s.marketplace.On("CreateAuctionListing", mock.Anything, mock.MatchedBy(func(p market.CreateAuctionListingParams) bool {
		return p.BuyoutPricePerToken == "2000000000000000000" &&
			p.ReservePricePerToken == "0"
	})).Return(domain.ListingId("8"), nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything, "NFT listed successfully")
	s.activity.On("Record", mock.Anything, mock.Anything)

	res, err := s.uc.SubmitDraft(s.ctx, s.session, draft.Id)
	s.Require().NoError(err)
	s.Equal(domain.ListingId("8"), res.ListingId)
}

func (s *listingUseCaseSuite) TestSubmitDraftNetworkMismatch() {
	draft := s.preparedDraft(listing.KindDirect, "1")
	s.notifier.On("Notify", mock.Anything, notifier.SeverityInfo, mock.Anything)

	mismatched := wallet.Session{Address: s.owner, ChainId: domain.ChainId(1)}
	_, err := s.uc.SubmitDraft(s.ctx, mismatched, draft.Id)
	s.ErrorIs(err, domain.ErrNetworkMismatch)
	s.marketplace.AssertNotCalled(s.T(), "CreateDirectListing", mock.Anything, mock.Anything)
	s.notifier.AssertNumberOfCalls(s.T(), "Notify", 1)
}

func (s *listingUseCaseSuite) TestSubmitDraftWithoutPrice() {
	s.expectLock()
	s.collection.On("OwnedAssets", mock.Anything, s.owner).Return([]*asset.Asset{s.asset}, nil)

	draft, err := s.uc.CreateDraft(s.ctx, s.owner)
	s.Require().NoError(err)
	_, err = s.uc.SelectAsset(s.ctx, draft.Id, s.owner, s.asset.ToId())
	s.Require().NoError(err)

	_, err = s.uc.SubmitDraft(s.ctx, s.session, draft.Id)
	s.ErrorIs(err, domain.ErrInvalidDraftState)
}

func (s *listingUseCaseSuite) TestSubmitDraftFailureRollsBack() {
	s.expectLock()
	draft := s.preparedDraft(listing.KindDirect, "1")

	s.marketplace.On("CreateDirectListing", mock.Anything, mock.Anything).
		Return(domain.ListingId(""), errors.New("boom"))
	s.notifier.On("Notify", mock.Anything, mock.Anything, "Error listing NFT")

	_, err := s.uc.SubmitDraft(s.ctx, s.session, draft.Id)
	s.Error(err)

	// the wizard returns to the filled form
	draft, err = s.uc.GetDraft(s.ctx, draft.Id, s.owner)
	s.Require().NoError(err)
	s.Equal(listing.DraftStateAssetSelected, draft.State)
	s.Equal("1", draft.Price)
}

func (s *listingUseCaseSuite) TestSelectAssetReplacesSelection() {
	other := &asset.Asset{
		Contract: s.asset.Contract,
		TokenId:  domain.TokenId("4"),
		Owner:    s.owner,
	}
	s.collection.On("OwnedAssets", mock.Anything, s.owner).Return([]*asset.Asset{s.asset, other}, nil)

	draft, err := s.uc.CreateDraft(s.ctx, s.owner)
	s.Require().NoError(err)
	draft, err = s.uc.SelectAsset(s.ctx, draft.Id, s.owner, s.asset.ToId())
	s.Require().NoError(err)
	s.Equal(s.asset.TokenId, draft.Asset.TokenId)

	draft, err = s.uc.SelectAsset(s.ctx, draft.Id, s.owner, other.ToId())
	s.Require().NoError(err)
	s.Equal(other.TokenId, draft.Asset.TokenId)
}

func (s *listingUseCaseSuite) TestGetDraftOtherOwner() {
	draft, err := s.uc.CreateDraft(s.ctx, s.owner)
	s.Require().NoError(err)

	_, err = s.uc.GetDraft(s.ctx, draft.Id, domain.Address("0xbbbb000000000000000000000000000000000002"))
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingUseCaseSuite) directListing(buyoutWei string) *listing.Listing {
	return &listing.Listing{
		Id:            domain.ListingId("1"),
		Kind:          listing.KindDirect,
		Asset:         *s.asset,
		SellerAddress: domain.Address("0xcccc000000000000000000000000000000000003"),
		BuyoutPrice: listing.CurrencyValue{
			Value:        buyoutWei,
			DisplayValue: "1",
			Symbol:       "ETH",
		},
		Quantity: 1,
	}
}

func (s *listingUseCaseSuite) auctionListing() *listing.Listing {
	l := s.directListing("2000000000000000000")
	l.Kind = listing.KindAuction
	l.EndTimeInEpochSeconds = 1700000000
	return l
}

func (s *listingUseCaseSuite) TestBidOnAuction() {
	s.expectLock()
	l := s.auctionListing()
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("MakeBid", mock.Anything, l.Id, "500000000000000000", s.owner).Return(nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything, "Bid made successfully")
	s.activity.On("Record", mock.Anything, mock.Anything)

	res, err := s.uc.PlaceBidOrOffer(s.ctx, s.session, l.Id, "0.5")
	s.Require().NoError(err)
	s.False(res.Bought)
	s.Equal("/", res.Redirect)
}

func (s *listingUseCaseSuite) TestOfferEqualToBuyoutBuys() {
	s.expectLock()
	l := s.directListing("1000000000000000000")
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("BuyNow", mock.Anything, l.Id, 1, listing.KindDirect, s.owner).Return(nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything, "NFT bought successfully")
	s.activity.On("Record", mock.Anything, mock.Anything)

	// trailing zeros must not defeat the comparison
	res, err := s.uc.PlaceBidOrOffer(s.ctx, s.session, l.Id, "1.00")
	s.Require().NoError(err)
	s.True(res.Bought)
	s.marketplace.AssertNotCalled(s.T(), "MakeOffer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestOfferBelowBuyout() {
	s.expectLock()
	l := s.directListing("1000000000000000000")
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("MakeOffer", mock.Anything, l.Id, 1, "500000000000000000", s.owner).Return(nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything, "Offer made successfully")
	s.activity.On("Record", mock.Anything, mock.Anything)

	res, err := s.uc.PlaceBidOrOffer(s.ctx, s.session, l.Id, "0.5")
	s.Require().NoError(err)
	s.False(res.Bought)
	s.marketplace.AssertNotCalled(s.T(), "BuyNow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestRejectsInvalidAmounts() {
	for _, amount := range []string{"", "abc", "0", "-1", "1,5"} {
		_, err := s.uc.PlaceBidOrOffer(s.ctx, s.session, domain.ListingId("1"), amount)
		s.ErrorIs(err, domain.ErrInvalidAmount, amount)
	}
}

func (s *listingUseCaseSuite) TestPlaceBidNetworkMismatch() {
	s.notifier.On("Notify", mock.Anything, notifier.SeverityInfo, mock.Anything)

	mismatched := wallet.Session{Address: s.owner, ChainId: domain.ChainId(1)}
	_, err := s.uc.PlaceBidOrOffer(s.ctx, mismatched, domain.ListingId("1"), "1")
	s.ErrorIs(err, domain.ErrNetworkMismatch)
	s.notifier.AssertNumberOfCalls(s.T(), "Notify", 1)
}

func (s *listingUseCaseSuite) TestAcceptOfferOnlySeller() {
	s.expectLock()
	l := s.directListing("1000000000000000000")
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)

	err := s.uc.AcceptOffer(s.ctx, s.session, l.Id, domain.Address("0xdddd000000000000000000000000000000000004"))
	s.ErrorIs(err, domain.ErrNotSeller)
	s.marketplace.AssertNotCalled(s.T(), "AcceptOffer", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestAcceptOfferAsSeller() {
	s.expectLock()
	l := s.directListing("1000000000000000000")
	l.SellerAddress = s.owner
	offeror := domain.Address("0xdddd000000000000000000000000000000000004")
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("AcceptOffer", mock.Anything, l.Id, offeror).Return(nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything, "Offer accepted successfully")
	s.activity.On("Record", mock.Anything, mock.Anything)

	s.NoError(s.uc.AcceptOffer(s.ctx, s.session, l.Id, offeror))
}

func (s *listingUseCaseSuite) TestBuyNow() {
	s.expectLock()
	l := s.directListing("1000000000000000000")
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("BuyNow", mock.Anything, l.Id, 1, listing.KindDirect, s.owner).Return(nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything, "NFT bought successfully")
	s.activity.On("Record", mock.Anything, mock.Anything)

	s.NoError(s.uc.BuyNow(s.ctx, s.session, l.Id))
}

func (s *listingUseCaseSuite) TestDetailPlaceholderDirect() {
	l := s.directListing("1000000000000000000")
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("Offers", mock.Anything, l.Id).Return(nil, nil)
	s.ens.On("ReverseResolve", mock.Anything, l.SellerAddress).Return("", errors.New("no resolver"))

	view, err := s.uc.GetDetail(s.ctx, l.Id, s.owner)
	s.Require().NoError(err)
	s.Equal("Enter an offer in ETH", view.Placeholder)
}

func (s *listingUseCaseSuite) TestDetailPlaceholderAuction() {
	l := s.auctionListing()
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("GetMinimumNextBid", mock.Anything, l.Id).
		Return(&listing.CurrencyValue{Value: "550000000000000000", DisplayValue: "0.55", Symbol: "ETH"}, nil)
	s.ens.On("ReverseResolve", mock.Anything, l.SellerAddress).Return("", errors.New("no resolver"))

	view, err := s.uc.GetDetail(s.ctx, l.Id, s.owner)
	s.Require().NoError(err)
	s.Equal("0.55 ETH or more", view.Placeholder)
}

func (s *listingUseCaseSuite) TestDetailPlaceholderAuctionUnknownMinimum() {
	l := s.auctionListing()
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("GetMinimumNextBid", mock.Anything, l.Id).
		Return(nil, errors.New("rpc down"))
	s.ens.On("ReverseResolve", mock.Anything, l.SellerAddress).Return("", errors.New("no resolver"))

	view, err := s.uc.GetDetail(s.ctx, l.Id, s.owner)
	s.Require().NoError(err)
	s.Nil(view.MinimumNextBid)
	s.Equal("Enter bid amount", view.Placeholder)
}

func (s *listingUseCaseSuite) TestDetailOffersVisibility() {
	l := s.directListing("1000000000000000000")
	offers := []*listing.Offer{{
		ListingId: l.Id,
		Offeror:   domain.Address("0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d"),
	}}
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("Offers", mock.Anything, l.Id).Return(offers, nil)
	s.ens.On("ReverseResolve", mock.Anything, l.SellerAddress).Return("seller.eth", nil)

	// a random viewer cannot accept
	view, err := s.uc.GetDetail(s.ctx, l.Id, s.owner)
	s.Require().NoError(err)
	s.Require().Len(view.Offers, 1)
	s.False(view.Offers[0].CanAccept)
	s.Equal("0x939...52a1d", view.Offers[0].OfferorShort)
	s.Equal("seller.eth", view.SellerEnsName)

	// the seller can
	view, err = s.uc.GetDetail(s.ctx, l.Id, l.SellerAddress)
	s.Require().NoError(err)
	s.True(view.Offers[0].CanAccept)
}

func (s *listingUseCaseSuite) TestMinimumNextBidCachedPerFingerprint() {
	l := s.auctionListing()
	s.marketplace.On("GetListing", mock.Anything, l.Id).Return(l, nil)
	s.marketplace.On("GetMinimumNextBid", mock.Anything, l.Id).
		Return(&listing.CurrencyValue{Value: "1", DisplayValue: "0.000000000000000001", Symbol: "ETH"}, nil)
	s.ens.On("ReverseResolve", mock.Anything, mock.Anything).Return("", errors.New("no resolver"))

	_, err := s.uc.GetDetail(s.ctx, l.Id, s.owner)
	s.Require().NoError(err)
	_, err = s.uc.GetDetail(s.ctx, l.Id, s.owner)
	s.Require().NoError(err)
	s.marketplace.AssertNumberOfCalls(s.T(), "GetMinimumNextBid", 1)

	// a changed listing invalidates the snapshot
	l.BuyoutPrice.Value = "3000000000000000000"
	_, err = s.uc.GetDetail(s.ctx, l.Id, s.owner)
	s.Require().NoError(err)
	s.marketplace.AssertNumberOfCalls(s.T(), "GetMinimumNextBid", 2)
}

func (s *listingUseCaseSuite) TestActiveListingsEnrichesAuctions() {
	direct := s.directListing("1000000000000000000")
	auction := s.auctionListing()
	auction.Id = domain.ListingId("2")
	s.marketplace.On("ActiveListings", mock.Anything).Return([]*listing.Listing{direct, auction}, nil)
	s.marketplace.On("GetMinimumNextBid", mock.Anything, auction.Id).
		Return(&listing.CurrencyValue{Value: "550000000000000000", DisplayValue: "0.55", Symbol: "ETH"}, nil)

	entries, err := s.uc.ActiveListings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Nil(entries[0].MinimumNextBid)
	s.Require().NotNil(entries[1].MinimumNextBid)
	s.Equal("0.55", entries[1].MinimumNextBid.DisplayValue)
}
