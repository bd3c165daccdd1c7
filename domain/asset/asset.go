package asset

import (
	"github.com/Lugdu84/ebay-clone-nft/domain"
)

// Asset is an item minted into the storefront collection. It is sourced
// from the chain index and never mutated locally.
type Asset struct {
	Contract    domain.Address `json:"contract"`
	TokenId     domain.TokenId `json:"tokenId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Owner       domain.Address `json:"owner"`
}

func (a *Asset) ToId() Id {
	return Id{
		Contract: a.Contract.ToLower(),
		TokenId:  a.TokenId,
	}
}

type Id struct {
	Contract domain.Address `json:"contract"`
	TokenId  domain.TokenId `json:"tokenId"`
}

// Metadata is the off-chain token metadata document pinned at mint time.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
