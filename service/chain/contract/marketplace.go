package contract

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	bAbi "github.com/Lugdu84/ebay-clone-nft/base/abi"
	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/base/price"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
	"github.com/Lugdu84/ebay-clone-nft/domain/listing"
	"github.com/Lugdu84/ebay-clone-nft/domain/market"
	"github.com/Lugdu84/ebay-clone-nft/service/chain"
	"github.com/Lugdu84/ebay-clone-nft/service/webresource"
)

const (
	listingTypeDirect  uint8 = 0
	listingTypeAuction uint8 = 1
)

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// listingParameters matches the createListing tuple layout.
type listingParameters struct {
	AssetContract        common.Address
	TokenId              *big.Int
	StartTime            *big.Int
	SecondsUntilEndTime  *big.Int
	QuantityToList       *big.Int
	CurrencyToAccept     common.Address
	ReservePricePerToken *big.Int
	BuyoutPricePerToken  *big.Int
	ListingType          uint8
}

type MarketplaceCfg struct {
	Client      chain.Client
	Address     domain.Address
	WebResource webresource.Reader
}

type marketplaceImpl struct {
	client      chain.Client
	address     common.Address
	webresource webresource.Reader
}

func NewMarketplace(cfg *MarketplaceCfg) market.Marketplace {
	return &marketplaceImpl{
		client:      cfg.Client,
		address:     common.HexToAddress(string(cfg.Address)),
		webresource: cfg.WebResource,
	}
}

func (m *marketplaceImpl) ActiveListings(c bCtx.Ctx) ([]*listing.Listing, error) {
	res, err := m.client.Call(c, m.address, bAbi.MarketplaceABI, "totalListings")
	if err != nil {
		return nil, err
	}
	total, ok := res[0].(*big.Int)
	if !ok {
		return nil, domain.ErrInternalServerError
	}
	now := time.Now().Unix()
	listings := []*listing.Listing{}
	for i := int64(0); i < total.Int64(); i++ {
		cl, err := m.rawListing(c, big.NewInt(i))
		if err != nil {
			c.WithFields(log.Fields{
				"listingId": i,
				"err":       err,
			}).Warn("failed to read listing, skipped")
			continue
		}
		if cl.Quantity.Sign() == 0 || cl.EndTime.Int64() <= now {
			continue
		}
		listings = append(listings, m.toListing(c, cl))
	}
	return listings, nil
}

func (m *marketplaceImpl) GetListing(c bCtx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	idBig, err := listingIdToBig(id)
	if err != nil {
		return nil, err
	}
	cl, err := m.rawListing(c, idBig)
	if err != nil {
		return nil, err
	}
	if cl.Quantity.Sign() == 0 {
		return nil, domain.ErrNotFound
	}
	return m.toListing(c, cl), nil
}

func (m *marketplaceImpl) Offers(c bCtx.Ctx, id domain.ListingId) ([]*listing.Offer, error) {
	idBig, err := listingIdToBig(id)
	if err != nil {
		return nil, err
	}
	logs, err := m.client.FilterLogs(c, ethereum.FilterQuery{
		Addresses: []common.Address{m.address},
		Topics: [][]common.Hash{
			{bAbi.MarketplaceABI.Events["NewOffer"].ID},
			{common.BigToHash(idBig)},
		},
	})
	if err != nil {
		return nil, err
	}
	// the offers mapping keeps only the latest offer per offeror, so the
	// event stream is deduped and re-read from state
	seen := map[common.Address]bool{}
	offers := []*listing.Offer{}
	for _, l := range logs {
		ev, err := bAbi.ToNewOfferLog(&l)
		if err != nil {
			c.WithField("err", err).Warn("failed to parse offer log, skipped")
			continue
		}
		if seen[ev.Offeror] {
			continue
		}
		seen[ev.Offeror] = true
		co, err := m.rawOffer(c, idBig, ev.Offeror)
		if err != nil {
			return nil, err
		}
		if co.PricePerToken.Sign() == 0 {
			// withdrawn or already accepted
			continue
		}
		total := new(big.Int).Mul(co.PricePerToken, co.QuantityWanted)
		offers = append(offers, &listing.Offer{
			ListingId:        id,
			Offeror:          domain.Address(co.Offeror.Hex()).ToLower(),
			TotalOfferAmount: m.currencyValue(total),
		})
	}
	return offers, nil
}

func (m *marketplaceImpl) GetMinimumNextBid(c bCtx.Ctx, id domain.ListingId) (*listing.CurrencyValue, error) {
	idBig, err := listingIdToBig(id)
	if err != nil {
		return nil, err
	}
	res, err := m.client.Call(c, m.address, bAbi.MarketplaceABI, "winningBid", idBig)
	if err != nil {
		return nil, err
	}
	winning, err := toContractOffer(res)
	if err != nil {
		return nil, err
	}
	if winning.PricePerToken.Sign() == 0 {
		// no bid yet, the floor is the reserve price
		cl, err := m.rawListing(c, idBig)
		if err != nil {
			return nil, err
		}
		v := m.currencyValue(new(big.Int).Mul(cl.ReservePricePerToken, cl.Quantity))
		return &v, nil
	}
	res, err = m.client.Call(c, m.address, bAbi.MarketplaceABI, "bidBufferBps")
	if err != nil {
		return nil, err
	}
	bufferBps, ok := res[0].(uint64)
	if !ok {
		return nil, domain.ErrInternalServerError
	}
	total := new(big.Int).Mul(winning.PricePerToken, winning.QuantityWanted)
	next := new(big.Int).Mul(total, big.NewInt(int64(10000+bufferBps)))
	next.Div(next, big.NewInt(10000))
	v := m.currencyValue(next)
	return &v, nil
}

func (m *marketplaceImpl) CreateDirectListing(c bCtx.Ctx, params market.CreateDirectListingParams) (domain.ListingId, error) {
	return m.createListing(c, params, "0", listingTypeDirect)
}

func (m *marketplaceImpl) CreateAuctionListing(c bCtx.Ctx, params market.CreateAuctionListingParams) (domain.ListingId, error) {
	return m.createListing(c, params.CreateDirectListingParams, params.ReservePricePerToken, listingTypeAuction)
}

func (m *marketplaceImpl) createListing(c bCtx.Ctx, params market.CreateDirectListingParams, reserve string, listingType uint8) (domain.ListingId, error) {
	tokenId, ok := new(big.Int).SetString(params.TokenId.String(), 10)
	if !ok {
		return "", domain.ErrInvalidNumberFormat
	}
	buyout, ok := new(big.Int).SetString(params.BuyoutPricePerToken, 10)
	if !ok {
		return "", domain.ErrInvalidNumberFormat
	}
	reservePrice, ok := new(big.Int).SetString(reserve, 10)
	if !ok {
		return "", domain.ErrInvalidNumberFormat
	}
	currency := params.Currency
	if currency.IsEmpty() {
		currency = domain.NativeToken
	}
	startTime := params.StartTimeInSeconds
	if startTime == 0 {
		startTime = time.Now().Unix()
	}
	receipt, err := m.client.Transact(c, m.address, nil, bAbi.MarketplaceABI, "createListing", listingParameters{
		AssetContract:        common.HexToAddress(string(params.AssetContract)),
		TokenId:              tokenId,
		StartTime:            big.NewInt(startTime),
		SecondsUntilEndTime:  big.NewInt(params.ListingDurationInSeconds),
		QuantityToList:       big.NewInt(int64(params.Quantity)),
		CurrencyToAccept:     common.HexToAddress(string(currency)),
		ReservePricePerToken: reservePrice,
		BuyoutPricePerToken:  buyout,
		ListingType:          listingType,
	})
	if err != nil {
		return "", err
	}
	addedTopic := bAbi.MarketplaceABI.Events["ListingAdded"].ID
	for _, l := range receipt.Logs {
		if len(l.Topics) > 1 && l.Topics[0] == addedTopic {
			return domain.ListingId(new(big.Int).SetBytes(l.Topics[1].Bytes()).String()), nil
		}
	}
	c.WithField("txHash", receipt.TxHash.Hex()).Error("no ListingAdded event in receipt")
	return "", domain.ErrInternalServerError
}

func (m *marketplaceImpl) BuyNow(c bCtx.Ctx, id domain.ListingId, quantity int, kind listing.Kind, buyer domain.Address) error {
	idBig, err := listingIdToBig(id)
	if err != nil {
		return err
	}
	cl, err := m.rawListing(c, idBig)
	if err != nil {
		return err
	}
	totalPrice := new(big.Int).Mul(cl.BuyoutPricePerToken, big.NewInt(int64(quantity)))
	_, err = m.client.Transact(c, m.address, m.payableValue(cl.Currency, totalPrice), bAbi.MarketplaceABI, "buy",
		idBig, common.HexToAddress(string(buyer)), big.NewInt(int64(quantity)), cl.Currency, totalPrice)
	return err
}

func (m *marketplaceImpl) MakeOffer(c bCtx.Ctx, id domain.ListingId, quantity int, pricePerToken string, offeror domain.Address) error {
	return m.offer(c, id, big.NewInt(int64(quantity)), pricePerToken, maxUint256)
}

func (m *marketplaceImpl) MakeBid(c bCtx.Ctx, id domain.ListingId, bid string, bidder domain.Address) error {
	idBig, err := listingIdToBig(id)
	if err != nil {
		return err
	}
	cl, err := m.rawListing(c, idBig)
	if err != nil {
		return err
	}
	return m.offer(c, id, cl.Quantity, bid, big.NewInt(cl.EndTime.Int64()))
}

func (m *marketplaceImpl) offer(c bCtx.Ctx, id domain.ListingId, quantity *big.Int, pricePerToken string, expiration *big.Int) error {
	idBig, err := listingIdToBig(id)
	if err != nil {
		return err
	}
	cl, err := m.rawListing(c, idBig)
	if err != nil {
		return err
	}
	pricePerTokenBig, ok := new(big.Int).SetString(pricePerToken, 10)
	if !ok {
		return domain.ErrInvalidNumberFormat
	}
	total := new(big.Int).Mul(pricePerTokenBig, quantity)
	_, err = m.client.Transact(c, m.address, m.payableValue(cl.Currency, total), bAbi.MarketplaceABI, "offer",
		idBig, quantity, cl.Currency, pricePerTokenBig, expiration)
	return err
}

func (m *marketplaceImpl) AcceptOffer(c bCtx.Ctx, id domain.ListingId, offeror domain.Address) error {
	idBig, err := listingIdToBig(id)
	if err != nil {
		return err
	}
	co, err := m.rawOffer(c, idBig, common.HexToAddress(string(offeror)))
	if err != nil {
		return err
	}
	if co.PricePerToken.Sign() == 0 {
		return domain.ErrNotFound
	}
	_, err = m.client.Transact(c, m.address, nil, bAbi.MarketplaceABI, "acceptOffer",
		idBig, co.Offeror, co.Currency, co.PricePerToken)
	return err
}

func (m *marketplaceImpl) rawListing(c bCtx.Ctx, id *big.Int) (*bAbi.ContractListing, error) {
	res, err := m.client.Call(c, m.address, bAbi.MarketplaceABI, "listings", id)
	if err != nil {
		return nil, err
	}
	if len(res) != 12 {
		return nil, domain.ErrInternalServerError
	}
	ok := true
	cl := &bAbi.ContractListing{
		ListingId:            asBig(res[0], &ok),
		TokenOwner:           asAddress(res[1], &ok),
		AssetContract:        asAddress(res[2], &ok),
		TokenId:              asBig(res[3], &ok),
		StartTime:            asBig(res[4], &ok),
		EndTime:              asBig(res[5], &ok),
		Quantity:             asBig(res[6], &ok),
		Currency:             asAddress(res[7], &ok),
		ReservePricePerToken: asBig(res[8], &ok),
		BuyoutPricePerToken:  asBig(res[9], &ok),
		TokenType:            asUint8(res[10], &ok),
		ListingType:          asUint8(res[11], &ok),
	}
	if !ok {
		return nil, domain.ErrInternalServerError
	}
	return cl, nil
}

func asBig(v interface{}, ok *bool) *big.Int {
	b, o := v.(*big.Int)
	*ok = *ok && o
	return b
}

func asAddress(v interface{}, ok *bool) common.Address {
	a, o := v.(common.Address)
	*ok = *ok && o
	return a
}

func asUint8(v interface{}, ok *bool) uint8 {
	u, o := v.(uint8)
	*ok = *ok && o
	return u
}

func (m *marketplaceImpl) rawOffer(c bCtx.Ctx, id *big.Int, offeror common.Address) (*bAbi.ContractOffer, error) {
	res, err := m.client.Call(c, m.address, bAbi.MarketplaceABI, "offers", id, offeror)
	if err != nil {
		return nil, err
	}
	return toContractOffer(res)
}

func toContractOffer(res []interface{}) (*bAbi.ContractOffer, error) {
	if len(res) != 6 {
		return nil, domain.ErrInternalServerError
	}
	ok := true
	co := &bAbi.ContractOffer{
		ListingId:           asBig(res[0], &ok),
		Offeror:             asAddress(res[1], &ok),
		QuantityWanted:      asBig(res[2], &ok),
		Currency:            asAddress(res[3], &ok),
		PricePerToken:       asBig(res[4], &ok),
		ExpirationTimestamp: asBig(res[5], &ok),
	}
	if !ok {
		return nil, domain.ErrInternalServerError
	}
	return co, nil
}

func (m *marketplaceImpl) toListing(c bCtx.Ctx, cl *bAbi.ContractListing) *listing.Listing {
	kind := listing.KindDirect
	if cl.ListingType == listingTypeAuction {
		kind = listing.KindAuction
	}
	l := &listing.Listing{
		Id:            domain.ListingId(cl.ListingId.String()),
		Kind:          kind,
		SellerAddress: domain.Address(cl.TokenOwner.Hex()).ToLower(),
		Currency:      domain.Address(cl.Currency.Hex()).ToLower(),
		BuyoutPrice:   m.currencyValue(new(big.Int).Mul(cl.BuyoutPricePerToken, cl.Quantity)),
		Quantity:      int(cl.Quantity.Int64()),
		Asset: asset.Asset{
			Contract: domain.Address(cl.AssetContract.Hex()).ToLower(),
			TokenId:  domain.TokenId(cl.TokenId.String()),
			Owner:    domain.Address(cl.TokenOwner.Hex()).ToLower(),
		},
	}
	if kind == listing.KindAuction {
		l.EndTimeInEpochSeconds = cl.EndTime.Int64()
		reserve := m.currencyValue(new(big.Int).Mul(cl.ReservePricePerToken, cl.Quantity))
		l.ReservePrice = &reserve
	}
	m.fillAssetMetadata(c, &l.Asset)
	return l
}

// fillAssetMetadata is best effort. A listing whose token metadata is
// temporarily unreachable still renders, just without name and image.
func (m *marketplaceImpl) fillAssetMetadata(c bCtx.Ctx, a *asset.Asset) {
	res, err := m.client.Call(c, common.HexToAddress(string(a.Contract)), bAbi.CollectionABI, "tokenURI", mustBig(a.TokenId.String()))
	if err != nil {
		return
	}
	uri, ok := res[0].(string)
	if !ok || uri == "" {
		return
	}
	meta, err := m.webresource.GetMetadata(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Warn("failed to load token metadata")
		return
	}
	a.Name = meta.Name
	a.Description = meta.Description
	a.Image = meta.Image
}

func (m *marketplaceImpl) currencyValue(v *big.Int) listing.CurrencyValue {
	return listing.CurrencyValue{
		Value:        v.String(),
		DisplayValue: price.FromBigInt(v, domain.NativeTokenDecimals).String(),
		Symbol:       domain.NativeTokenSymbol(m.client.ChainId()),
	}
}

func (m *marketplaceImpl) payableValue(currency common.Address, total *big.Int) *big.Int {
	if domain.Address(currency.Hex()).Equals(domain.NativeToken) {
		return total
	}
	return nil
}

func listingIdToBig(id domain.ListingId) (*big.Int, error) {
	v, ok := new(big.Int).SetString(id.String(), 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return v, nil
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return big.NewInt(0)
	}
	return v
}
