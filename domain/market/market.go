// Package market declares the opaque chain SDK boundary. Every mutating
// flow delegates here; implementations live under service/chain.
package market

import (
	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
	"github.com/Lugdu84/ebay-clone-nft/domain/listing"
)

type CreateDirectListingParams struct {
	AssetContract domain.Address
	TokenId       domain.TokenId
	Seller        domain.Address
	// Currency left empty lists in the chain's native token.
	Currency                 domain.Address
	BuyoutPricePerToken      string
	Quantity                 int
	StartTimeInSeconds       int64
	ListingDurationInSeconds int64
}

type CreateAuctionListingParams struct {
	CreateDirectListingParams
	ReservePricePerToken string
}

// Marketplace mirrors the marketplace contract SDK surface the storefront
// consumes. All prices cross this boundary in base units.
type Marketplace interface {
	ActiveListings(c ctx.Ctx) ([]*listing.Listing, error)
	GetListing(c ctx.Ctx, id domain.ListingId) (*listing.Listing, error)
	Offers(c ctx.Ctx, id domain.ListingId) ([]*listing.Offer, error)
	GetMinimumNextBid(c ctx.Ctx, id domain.ListingId) (*listing.CurrencyValue, error)

	CreateDirectListing(c ctx.Ctx, params CreateDirectListingParams) (domain.ListingId, error)
	CreateAuctionListing(c ctx.Ctx, params CreateAuctionListingParams) (domain.ListingId, error)
	BuyNow(c ctx.Ctx, id domain.ListingId, quantity int, kind listing.Kind, buyer domain.Address) error
	MakeOffer(c ctx.Ctx, id domain.ListingId, quantity int, pricePerToken string, offeror domain.Address) error
	MakeBid(c ctx.Ctx, id domain.ListingId, bid string, bidder domain.Address) error
	AcceptOffer(c ctx.Ctx, id domain.ListingId, offeror domain.Address) error
}

// Collection mirrors the NFT collection contract SDK surface.
type Collection interface {
	// MintTo mints a token carrying the pinned metadata uri to the wallet.
	MintTo(c ctx.Ctx, to domain.Address, metadataUri string) (domain.TokenId, error)
	OwnedAssets(c ctx.Ctx, owner domain.Address) ([]*asset.Asset, error)
}
