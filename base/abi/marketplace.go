package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var MarketplaceABI abi.ABI

var marketplaceABI = `[
{"type":"function","name":"totalListings","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"bidBufferBps","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"uint64"}]},
{"type":"function","name":"listings","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_listingId"}],"outputs":[{"type":"uint256","name":"listingId"},{"type":"address","name":"tokenOwner"},{"type":"address","name":"assetContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"endTime"},{"type":"uint256","name":"quantity"},{"type":"address","name":"currency"},{"type":"uint256","name":"reservePricePerToken"},{"type":"uint256","name":"buyoutPricePerToken"},{"type":"uint8","name":"tokenType"},{"type":"uint8","name":"listingType"}]},
{"type":"function","name":"winningBid","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_listingId"}],"outputs":[{"type":"uint256","name":"listingId"},{"type":"address","name":"offeror"},{"type":"uint256","name":"quantityWanted"},{"type":"address","name":"currency"},{"type":"uint256","name":"pricePerToken"},{"type":"uint256","name":"expirationTimestamp"}]},
{"type":"function","name":"offers","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"_listingId"},{"type":"address","name":"_offeror"}],"outputs":[{"type":"uint256","name":"listingId"},{"type":"address","name":"offeror"},{"type":"uint256","name":"quantityWanted"},{"type":"address","name":"currency"},{"type":"uint256","name":"pricePerToken"},{"type":"uint256","name":"expirationTimestamp"}]},
{"type":"function","name":"createListing","stateMutability":"nonpayable","inputs":[{"type":"tuple","name":"_params","components":[{"type":"address","name":"assetContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"secondsUntilEndTime"},{"type":"uint256","name":"quantityToList"},{"type":"address","name":"currencyToAccept"},{"type":"uint256","name":"reservePricePerToken"},{"type":"uint256","name":"buyoutPricePerToken"},{"type":"uint8","name":"listingType"}]}],"outputs":[]},
{"type":"function","name":"buy","stateMutability":"payable","inputs":[{"type":"uint256","name":"_listingId"},{"type":"address","name":"_buyFor"},{"type":"uint256","name":"_quantityToBuy"},{"type":"address","name":"_currency"},{"type":"uint256","name":"_totalPrice"}],"outputs":[]},
{"type":"function","name":"offer","stateMutability":"payable","inputs":[{"type":"uint256","name":"_listingId"},{"type":"uint256","name":"_quantityWanted"},{"type":"address","name":"_currency"},{"type":"uint256","name":"_pricePerToken"},{"type":"uint256","name":"_expirationTimestamp"}],"outputs":[]},
{"type":"function","name":"acceptOffer","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"_listingId"},{"type":"address","name":"_offeror"},{"type":"address","name":"_currency"},{"type":"uint256","name":"_pricePerToken"}],"outputs":[]},
{"type":"event","anonymous":false,"name":"ListingAdded","inputs":[{"type":"uint256","name":"listingId","indexed":true},{"type":"address","name":"assetContract","indexed":true},{"type":"address","name":"lister","indexed":true},{"type":"tuple","name":"listing","components":[{"type":"uint256","name":"listingId"},{"type":"address","name":"tokenOwner"},{"type":"address","name":"assetContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"endTime"},{"type":"uint256","name":"quantity"},{"type":"address","name":"currency"},{"type":"uint256","name":"reservePricePerToken"},{"type":"uint256","name":"buyoutPricePerToken"},{"type":"uint8","name":"tokenType"},{"type":"uint8","name":"listingType"}]}]},
{"type":"event","anonymous":false,"name":"NewOffer","inputs":[{"type":"uint256","name":"listingId","indexed":true},{"type":"address","name":"offeror","indexed":true},{"type":"uint8","name":"listingType","indexed":true},{"type":"uint256","name":"quantityWanted"},{"type":"uint256","name":"totalOfferAmount"},{"type":"address","name":"currency"}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic(err)
	}
	MarketplaceABI = _abi
}

// ContractListing mirrors the marketplace contract's listing struct.
type ContractListing struct {
	ListingId            *big.Int
	TokenOwner           common.Address
	AssetContract        common.Address
	TokenId              *big.Int
	StartTime            *big.Int
	EndTime              *big.Int
	Quantity             *big.Int
	Currency             common.Address
	ReservePricePerToken *big.Int
	BuyoutPricePerToken  *big.Int
	TokenType            uint8
	ListingType          uint8
}

// ContractOffer mirrors the marketplace contract's offer struct, also used
// for winning bids.
type ContractOffer struct {
	ListingId           *big.Int
	Offeror             common.Address
	QuantityWanted      *big.Int
	Currency            common.Address
	PricePerToken       *big.Int
	ExpirationTimestamp *big.Int
}

// NewOfferLog is a parsed NewOffer event.
type NewOfferLog struct {
	ListingId        *big.Int
	Offeror          common.Address
	ListingType      uint8
	QuantityWanted   *big.Int
	TotalOfferAmount *big.Int
	Currency         common.Address
}

func ToNewOfferLog(l *types.Log) (*NewOfferLog, error) {
	if len(l.Topics) != 4 {
		return nil, xerrors.Errorf("unexpected topics length %d", len(l.Topics))
	}
	res := &NewOfferLog{
		ListingId:   new(big.Int).SetBytes(l.Topics[1].Bytes()),
		Offeror:     common.BytesToAddress(l.Topics[2].Bytes()),
		ListingType: uint8(new(big.Int).SetBytes(l.Topics[3].Bytes()).Uint64()),
	}
	unpacked, err := MarketplaceABI.Unpack("NewOffer", l.Data)
	if err != nil {
		return nil, err
	}
	res.QuantityWanted = unpacked[0].(*big.Int)
	res.TotalOfferAmount = unpacked[1].(*big.Int)
	res.Currency = unpacked[2].(common.Address)
	return res, nil
}
