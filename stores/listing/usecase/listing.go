package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/base/price"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/activity"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
	"github.com/Lugdu84/ebay-clone-nft/domain/listing"
	"github.com/Lugdu84/ebay-clone-nft/domain/market"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
	"github.com/Lugdu84/ebay-clone-nft/service/cache"
	"github.com/Lugdu84/ebay-clone-nft/service/ens"
	"github.com/Lugdu84/ebay-clone-nft/service/lock"
	"github.com/Lugdu84/ebay-clone-nft/service/notifier"
)

const (
	// listings run for a fixed one week window
	listingDurationInSeconds = 7 * 24 * 60 * 60
	// every listing sells a single token at no reserve
	listingQuantity = 1
	zeroReserve     = "0"

	enrichTimeout = 3 * time.Second
)

type ListingUseCaseCfg struct {
	ChainId     domain.ChainId
	Marketplace market.Marketplace
	Collection  market.Collection
	DraftRepo   listing.DraftRepo
	MinNextBid  cache.Service
	Ens         ens.ENS
	Notifier    notifier.Service
	Activity    activity.UseCase
	Lock        lock.Service
}

type listingUseCase struct {
	chainId     domain.ChainId
	marketplace market.Marketplace
	collection  market.Collection
	draftRepo   listing.DraftRepo
	minNextBid  cache.Service
	ens         ens.ENS
	notifier    notifier.Service
	activity    activity.UseCase
	lock        lock.Service
	workerPool  *goroutines.Pool
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.UseCase {
	return &listingUseCase{
		chainId:     cfg.ChainId,
		marketplace: cfg.Marketplace,
		collection:  cfg.Collection,
		draftRepo:   cfg.DraftRepo,
		minNextBid:  cfg.MinNextBid,
		ens:         cfg.Ens,
		notifier:    cfg.Notifier,
		activity:    cfg.Activity,
		lock:        cfg.Lock,
		workerPool:  goroutines.NewPool(16, goroutines.WithTaskQueueLength(256)),
	}
}

func (u *listingUseCase) ActiveListings(c bCtx.Ctx) ([]*listing.IndexEntry, error) {
	ls, err := u.marketplace.ActiveListings(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.ActiveListings failed")
		return nil, err
	}

	entries := make([]*listing.IndexEntry, len(ls))
	wg := sync.WaitGroup{}
	for i, l := range ls {
		i, l := i, l
		entries[i] = &listing.IndexEntry{Listing: l}
		if l.Kind != listing.KindAuction {
			continue
		}
		wg.Add(1)
		err := u.workerPool.ScheduleWithTimeout(enrichTimeout, func() {
			defer wg.Done()
			entries[i].MinimumNextBid = u.minimumNextBid(c, l)
		})
		if err != nil {
			c.WithFields(log.Fields{
				"listingId": l.Id,
				"err":       err,
			}).Warn("failed to schedule bid enrichment")
			wg.Done()
		}
	}
	wg.Wait()
	return entries, nil
}

func (u *listingUseCase) GetDetail(c bCtx.Ctx, id domain.ListingId, viewer domain.Address) (*listing.DetailView, error) {
	l, err := u.marketplace.GetListing(c, id)
	if err != nil {
		return nil, err
	}

	view := &listing.DetailView{Listing: l}

	if l.Kind == listing.KindAuction {
		view.MinimumNextBid = u.minimumNextBid(c, l)
	} else {
		offers, err := u.marketplace.Offers(c, id)
		if err != nil {
			c.WithFields(log.Fields{
				"listingId": id,
				"err":       err,
			}).Warn("failed to load offers")
		}
		isSeller := !viewer.IsEmpty() && viewer.Equals(l.SellerAddress)
		for _, o := range offers {
			view.Offers = append(view.Offers, &listing.OfferView{
				Offer:        *o,
				OfferorShort: o.Offeror.Truncated(),
				CanAccept:    isSeller,
			})
		}
	}

	view.Placeholder = placeholder(l, view.MinimumNextBid)

	if name, err := u.ens.ReverseResolve(c, l.SellerAddress); err == nil {
		view.SellerEnsName = name
	}

	return view, nil
}

// placeholder is the amount input hint. Auctions show the bid floor when
// it is known and non zero.
func placeholder(l *listing.Listing, minNextBid *listing.CurrencyValue) string {
	if l.Kind == listing.KindDirect {
		return fmt.Sprintf("Enter an offer in %s", l.BuyoutPrice.Symbol)
	}
	if minNextBid == nil || minNextBid.IsZero() {
		return "Enter bid amount"
	}
	return fmt.Sprintf("%s %s or more", minNextBid.DisplayValue, minNextBid.Symbol)
}

// minimumNextBid is cached per listing fingerprint, so a change to the
// listing invalidates the snapshot without an explicit purge. Failures
// degrade to an unknown floor.
func (u *listingUseCase) minimumNextBid(c bCtx.Ctx, l *listing.Listing) *listing.CurrencyValue {
	v := &listing.CurrencyValue{}
	err := u.minNextBid.GetByFunc(c, l.Fingerprint(), v, func() (interface{}, error) {
		return u.marketplace.GetMinimumNextBid(c, l.Id)
	})
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": l.Id,
			"err":       err,
		}).Warn("failed to get minimum next bid")
		return nil
	}
	return v
}

func (u *listingUseCase) OwnedAssets(c bCtx.Ctx, owner domain.Address) ([]*asset.Asset, error) {
	assets, err := u.collection.OwnedAssets(c, owner)
	if err != nil {
		c.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Error("collection.OwnedAssets failed")
		return nil, err
	}
	return assets, nil
}

func (u *listingUseCase) CreateDraft(c bCtx.Ctx, owner domain.Address) (*listing.Draft, error) {
	draft := &listing.Draft{
		Id:        uuid.NewString(),
		Owner:     owner.ToLower(),
		State:     listing.DraftStateSelectingAsset,
		CreatedAt: time.Now(),
	}
	if err := u.draftRepo.Create(c, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (u *listingUseCase) GetDraft(c bCtx.Ctx, id string, owner domain.Address) (*listing.Draft, error) {
	draft, err := u.draftRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	// drafts are private to their creator
	if !draft.Owner.Equals(owner) {
		return nil, domain.ErrNotFound
	}
	return draft, nil
}

func (u *listingUseCase) SelectAsset(c bCtx.Ctx, id string, owner domain.Address, assetId asset.Id) (*listing.Draft, error) {
	draft, err := u.GetDraft(c, id, owner)
	if err != nil {
		return nil, err
	}
	if draft.State == listing.DraftStateSubmitting {
		return nil, domain.ErrInvalidDraftState
	}

	owned, err := u.collection.OwnedAssets(c, owner)
	if err != nil {
		c.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Error("collection.OwnedAssets failed")
		return nil, err
	}
	var selected *asset.Asset
	for _, a := range owned {
		if a.ToId() == assetId {
			selected = a
			break
		}
	}
	if selected == nil {
		return nil, domain.ErrBadParamInput
	}

	draft.Select(selected)
	if err := u.draftRepo.Update(c, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (u *listingUseCase) UpdateDraft(c bCtx.Ctx, id string, owner domain.Address, patch listing.DraftPatch) (*listing.Draft, error) {
	draft, err := u.GetDraft(c, id, owner)
	if err != nil {
		return nil, err
	}
	if draft.State == listing.DraftStateSubmitting {
		return nil, domain.ErrInvalidDraftState
	}

	if patch.Kind != nil {
		if !patch.Kind.IsValid() {
			return nil, domain.ErrInvalidListingKind
		}
		kind := *patch.Kind
		draft.Kind = &kind
	}
	if patch.Price != nil {
		draft.Price = *patch.Price
	}

	if err := u.draftRepo.Update(c, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// networkMismatch aborts a mutating flow on the wrong chain. The info
// notification accompanies the switch-network response, once per abort.
func (u *listingUseCase) networkMismatch(c bCtx.Ctx) error {
	u.notifier.Notify(c, notifier.SeverityInfo, "Switch network to continue")
	return domain.ErrNetworkMismatch
}

func (u *listingUseCase) SubmitDraft(c bCtx.Ctx, session wallet.Session, id string) (*listing.SubmitResult, error) {
	if session.NetworkMismatched(u.chainId) {
		return nil, u.networkMismatch(c)
	}

	release, err := u.lock.Acquire(c, session.Address)
	if err != nil {
		return nil, err
	}
	defer release()

	draft, err := u.GetDraft(c, id, session.Address)
	if err != nil {
		return nil, err
	}
	if !draft.Submittable() {
		return nil, domain.ErrInvalidDraftState
	}

	amount, err := price.ParsePositiveDecimal(draft.Price)
	if err != nil {
		return nil, err
	}
	buyout := price.ToBaseUnits(amount, domain.NativeTokenDecimals)

	draft.State = listing.DraftStateSubmitting
	if err := u.draftRepo.Update(c, draft); err != nil {
		return nil, err
	}

	params := market.CreateDirectListingParams{
		AssetContract:            draft.Asset.Contract,
		TokenId:                  draft.Asset.TokenId,
		Seller:                   session.Address,
		BuyoutPricePerToken:      buyout,
		Quantity:                 listingQuantity,
		ListingDurationInSeconds: listingDurationInSeconds,
	}

	var listingId domain.ListingId
	if *draft.Kind == listing.KindAuction {
		listingId, err = u.marketplace.CreateAuctionListing(c, market.CreateAuctionListingParams{
			CreateDirectListingParams: params,
			ReservePricePerToken:      zeroReserve,
		})
	} else {
		listingId, err = u.marketplace.CreateDirectListing(c, params)
	}
	if err != nil {
		c.WithFields(log.Fields{
			"draftId": draft.Id,
			"kind":    *draft.Kind,
			"err":     err,
		}).Error("failed to create listing")
		// the wizard returns to the filled form
		draft.State = listing.DraftStateAssetSelected
		if uerr := u.draftRepo.Update(c, draft); uerr != nil {
			c.WithField("err", uerr).Warn("failed to roll draft back")
		}
		u.notifier.Notify(c, notifier.SeverityError, "Error listing NFT")
		return nil, err
	}

	if err := u.draftRepo.Delete(c, draft.Id); err != nil {
		c.WithField("err", err).Warn("failed to drop submitted draft")
	}
	u.notifier.Notify(c, notifier.SeveritySuccess, "NFT listed successfully")
	u.activity.Record(c, &activity.Activity{
		Type:      activity.TypeList,
		Address:   session.Address,
		ListingId: listingId,
		Contract:  draft.Asset.Contract,
		TokenId:   draft.Asset.TokenId,
		Amount:    amount.String(),
		Symbol:    domain.NativeTokenSymbol(u.chainId),
		CreatedAt: time.Now(),
	})

	return &listing.SubmitResult{
		ListingId: listingId,
		Redirect:  "/",
	}, nil
}

func (u *listingUseCase) BuyNow(c bCtx.Ctx, session wallet.Session, id domain.ListingId) error {
	if session.NetworkMismatched(u.chainId) {
		return u.networkMismatch(c)
	}

	release, err := u.lock.Acquire(c, session.Address)
	if err != nil {
		return err
	}
	defer release()

	l, err := u.marketplace.GetListing(c, id)
	if err != nil {
		return err
	}

	if err := u.marketplace.BuyNow(c, id, listingQuantity, l.Kind, session.Address); err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("marketplace.BuyNow failed")
		u.notifier.Notify(c, notifier.SeverityError, "Error buying NFT")
		return err
	}

	u.notifier.Notify(c, notifier.SeveritySuccess, "NFT bought successfully")
	u.activity.Record(c, &activity.Activity{
		Type:      activity.TypeBuy,
		Address:   session.Address,
		ListingId: id,
		Contract:  l.Asset.Contract,
		TokenId:   l.Asset.TokenId,
		Amount:    l.BuyoutPrice.DisplayValue,
		Symbol:    l.BuyoutPrice.Symbol,
		CreatedAt: time.Now(),
	})
	return nil
}

// PlaceBidOrOffer routes a typed amount to the operation the listing kind
// calls for. On a direct listing an offer equal to the buyout price is
// executed as an immediate purchase.
func (u *listingUseCase) PlaceBidOrOffer(c bCtx.Ctx, session wallet.Session, id domain.ListingId, rawAmount string) (*listing.BidResult, error) {
	if session.NetworkMismatched(u.chainId) {
		return nil, u.networkMismatch(c)
	}

	amount, err := price.ParsePositiveDecimal(rawAmount)
	if err != nil {
		return nil, err
	}

	release, err := u.lock.Acquire(c, session.Address)
	if err != nil {
		return nil, err
	}
	defer release()

	l, err := u.marketplace.GetListing(c, id)
	if err != nil {
		return nil, err
	}

	if l.Kind == listing.KindAuction {
		bid := price.ToBaseUnits(amount, domain.NativeTokenDecimals)
		if err := u.marketplace.MakeBid(c, id, bid, session.Address); err != nil {
			c.WithFields(log.Fields{
				"listingId": id,
				"err":       err,
			}).Error("marketplace.MakeBid failed")
			u.notifier.Notify(c, notifier.SeverityError, "Bid could not be made")
			return nil, err
		}
		u.notifier.Notify(c, notifier.SeveritySuccess, "Bid made successfully")
		u.activity.Record(c, &activity.Activity{
			Type:      activity.TypeBid,
			Address:   session.Address,
			ListingId: id,
			Amount:    amount.String(),
			Symbol:    l.BuyoutPrice.Symbol,
			CreatedAt: time.Now(),
		})
		return &listing.BidResult{Redirect: "/"}, nil
	}

	// amounts are compared in base units, display strings are not canonical
	if price.EqualBaseUnits(amount, l.BuyoutPrice.Value, domain.NativeTokenDecimals) {
		if err := u.marketplace.BuyNow(c, id, listingQuantity, l.Kind, session.Address); err != nil {
			c.WithFields(log.Fields{
				"listingId": id,
				"err":       err,
			}).Error("marketplace.BuyNow failed")
			u.notifier.Notify(c, notifier.SeverityError, "Error buying NFT")
			return nil, err
		}
		u.notifier.Notify(c, notifier.SeveritySuccess, "NFT bought successfully")
		u.activity.Record(c, &activity.Activity{
			Type:      activity.TypeBuy,
			Address:   session.Address,
			ListingId: id,
			Contract:  l.Asset.Contract,
			TokenId:   l.Asset.TokenId,
			Amount:    amount.String(),
			Symbol:    l.BuyoutPrice.Symbol,
			CreatedAt: time.Now(),
		})
		return &listing.BidResult{Bought: true, Redirect: "/"}, nil
	}

	pricePerToken := price.ToBaseUnits(amount, domain.NativeTokenDecimals)
	if err := u.marketplace.MakeOffer(c, id, listingQuantity, pricePerToken, session.Address); err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"err":       err,
		}).Error("marketplace.MakeOffer failed")
		u.notifier.Notify(c, notifier.SeverityError, "Offer could not be made")
		return nil, err
	}
	u.notifier.Notify(c, notifier.SeveritySuccess, "Offer made successfully")
	u.activity.Record(c, &activity.Activity{
		Type:      activity.TypeOffer,
		Address:   session.Address,
		ListingId: id,
		Amount:    amount.String(),
		Symbol:    l.BuyoutPrice.Symbol,
		CreatedAt: time.Now(),
	})
	return &listing.BidResult{Redirect: "/"}, nil
}

func (u *listingUseCase) AcceptOffer(c bCtx.Ctx, session wallet.Session, id domain.ListingId, offeror domain.Address) error {
	if session.NetworkMismatched(u.chainId) {
		return u.networkMismatch(c)
	}

	release, err := u.lock.Acquire(c, session.Address)
	if err != nil {
		return err
	}
	defer release()

	l, err := u.marketplace.GetListing(c, id)
	if err != nil {
		return err
	}
	if !session.Address.Equals(l.SellerAddress) {
		return domain.ErrNotSeller
	}

	if err := u.marketplace.AcceptOffer(c, id, offeror); err != nil {
		c.WithFields(log.Fields{
			"listingId": id,
			"offeror":   offeror,
			"err":       err,
		}).Error("marketplace.AcceptOffer failed")
		u.notifier.Notify(c, notifier.SeverityError, "Offer could not be accepted")
		return err
	}

	u.notifier.Notify(c, notifier.SeveritySuccess, "Offer accepted successfully")
	u.activity.Record(c, &activity.Activity{
		Type:      activity.TypeAcceptOffer,
		Address:   session.Address,
		ListingId: id,
		Contract:  l.Asset.Contract,
		TokenId:   l.Asset.TokenId,
		CreatedAt: time.Now(),
	})
	return nil
}
