package listing

import (
	"fmt"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
)

type Kind string

const (
	KindDirect  Kind = "direct"
	KindAuction Kind = "auction"
)

func (k Kind) IsValid() bool {
	return k == KindDirect || k == KindAuction
}

// CurrencyValue pairs a raw amount in the token's smallest unit with its
// human display form, the way the chain SDK reports prices.
type CurrencyValue struct {
	// Value is the amount in base units (wei for native tokens), as a
	// decimal integer string.
	Value        string `json:"value"`
	DisplayValue string `json:"displayValue"`
	Symbol       string `json:"symbol"`
}

func (v CurrencyValue) IsZero() bool {
	return v.Value == "" || v.Value == "0"
}

// Listing is a sell order read from the marketplace contract. It is
// created and mutated on chain only; the storefront displays it.
type Listing struct {
	Id            domain.ListingId `json:"id"`
	Kind          Kind             `json:"kind"`
	Asset         asset.Asset      `json:"asset"`
	SellerAddress domain.Address   `json:"sellerAddress"`
	Currency      domain.Address   `json:"currency"`
	BuyoutPrice   CurrencyValue    `json:"buyoutPrice"`
	Quantity      int              `json:"quantity"`

	// auction kind only
	EndTimeInEpochSeconds int64          `json:"endTimeInEpochSeconds,omitempty"`
	ReservePrice          *CurrencyValue `json:"reservePrice,omitempty"`
}

// Fingerprint keys the minimum-next-bid cache: the bid is refetched when
// the listing id or the listing data it depends on changes, not per read.
func (l *Listing) Fingerprint() string {
	return fmt.Sprintf("%s:%s:%d", l.Id, l.BuyoutPrice.Value, l.EndTimeInEpochSeconds)
}

// Offer is a buyer-proposed price on a direct listing. Display order
// follows the order returned by the chain index.
type Offer struct {
	ListingId        domain.ListingId `json:"listingId"`
	Offeror          domain.Address   `json:"offeror"`
	TotalOfferAmount CurrencyValue    `json:"totalOfferAmount"`
}

// OfferView decorates an Offer for the detail page. CanAccept is true
// only when the viewer is the listing seller.
type OfferView struct {
	Offer
	OfferorShort string `json:"offerorShort"`
	CanAccept    bool   `json:"canAccept"`
}

// DetailView is the payload behind the listing detail page.
type DetailView struct {
	Listing        *Listing       `json:"listing"`
	MinimumNextBid *CurrencyValue `json:"minimumNextBid,omitempty"`
	Placeholder    string         `json:"placeholder"`
	Offers         []*OfferView   `json:"offers,omitempty"`
	SellerEnsName  string         `json:"sellerEnsName,omitempty"`
}

// IndexEntry is one card on the listing index. Auction entries carry the
// current minimum next bid when it could be fetched.
type IndexEntry struct {
	Listing        *Listing       `json:"listing"`
	MinimumNextBid *CurrencyValue `json:"minimumNextBid,omitempty"`
}

// BidResult reports which operation a bid/offer submission was routed to.
type BidResult struct {
	// Bought is set when a direct offer matched the buyout price exactly
	// and was executed as a purchase.
	Bought   bool   `json:"bought"`
	Redirect string `json:"redirect,omitempty"`
}

type SubmitResult struct {
	ListingId domain.ListingId `json:"listingId"`
	Redirect  string           `json:"redirect,omitempty"`
}

type UseCase interface {
	// index + detail reads
	ActiveListings(ctx ctx.Ctx) ([]*IndexEntry, error)
	GetDetail(ctx ctx.Ctx, id domain.ListingId, viewer domain.Address) (*DetailView, error)
	OwnedAssets(ctx ctx.Ctx, owner domain.Address) ([]*asset.Asset, error)

	// creation wizard
	CreateDraft(ctx ctx.Ctx, owner domain.Address) (*Draft, error)
	GetDraft(ctx ctx.Ctx, id string, owner domain.Address) (*Draft, error)
	SelectAsset(ctx ctx.Ctx, id string, owner domain.Address, assetId asset.Id) (*Draft, error)
	UpdateDraft(ctx ctx.Ctx, id string, owner domain.Address, patch DraftPatch) (*Draft, error)
	SubmitDraft(ctx ctx.Ctx, session wallet.Session, id string) (*SubmitResult, error)

	// detail mutations
	BuyNow(ctx ctx.Ctx, session wallet.Session, id domain.ListingId) error
	PlaceBidOrOffer(ctx ctx.Ctx, session wallet.Session, id domain.ListingId, amount string) (*BidResult, error)
	AcceptOffer(ctx ctx.Ctx, session wallet.Session, id domain.ListingId, offeror domain.Address) error
}
