package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	bAbi "github.com/Lugdu84/ebay-clone-nft/base/abi"
	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
	"github.com/Lugdu84/ebay-clone-nft/domain/market"
	"github.com/Lugdu84/ebay-clone-nft/service/chain"
	"github.com/Lugdu84/ebay-clone-nft/service/webresource"
)

type CollectionCfg struct {
	Client      chain.Client
	Address     domain.Address
	WebResource webresource.Reader
}

type collectionImpl struct {
	client      chain.Client
	address     common.Address
	webresource webresource.Reader
}

func NewCollection(cfg *CollectionCfg) market.Collection {
	return &collectionImpl{
		client:      cfg.Client,
		address:     common.HexToAddress(string(cfg.Address)),
		webresource: cfg.WebResource,
	}
}

func (i *collectionImpl) MintTo(c bCtx.Ctx, to domain.Address, metadataUri string) (domain.TokenId, error) {
	receipt, err := i.client.Transact(c, i.address, nil, bAbi.CollectionABI, "mintTo",
		common.HexToAddress(string(to)), metadataUri)
	if err != nil {
		return "", err
	}
	mintedTopic := bAbi.CollectionABI.Events["TokensMinted"].ID
	for _, l := range receipt.Logs {
		if len(l.Topics) == 3 && l.Topics[0] == mintedTopic {
			minted, err := bAbi.ToTokensMintedLog(l)
			if err != nil {
				c.WithField("err", err).Error("failed to parse TokensMinted log")
				return "", err
			}
			return domain.TokenId(minted.TokenIdMinted.String()), nil
		}
	}
	c.WithField("txHash", receipt.TxHash.Hex()).Error("no TokensMinted event in receipt")
	return "", domain.ErrInternalServerError
}

func (i *collectionImpl) OwnedAssets(c bCtx.Ctx, owner domain.Address) ([]*asset.Asset, error) {
	ownerAddr := common.HexToAddress(string(owner))
	res, err := i.client.Call(c, i.address, bAbi.CollectionABI, "balanceOf", ownerAddr)
	if err != nil {
		return nil, err
	}
	balance, ok := res[0].(*big.Int)
	if !ok {
		return nil, domain.ErrInternalServerError
	}
	assets := []*asset.Asset{}
	for idx := int64(0); idx < balance.Int64(); idx++ {
		res, err := i.client.Call(c, i.address, bAbi.CollectionABI, "tokenOfOwnerByIndex", ownerAddr, big.NewInt(idx))
		if err != nil {
			return nil, err
		}
		tokenId, ok := res[0].(*big.Int)
		if !ok {
			return nil, domain.ErrInternalServerError
		}
		a := &asset.Asset{
			Contract: domain.Address(i.address.Hex()).ToLower(),
			TokenId:  domain.TokenId(tokenId.String()),
			Owner:    owner.ToLower(),
		}
		i.fillMetadata(c, a, tokenId)
		assets = append(assets, a)
	}
	return assets, nil
}

// fillMetadata is best effort, matching listing rendering.
func (i *collectionImpl) fillMetadata(c bCtx.Ctx, a *asset.Asset, tokenId *big.Int) {
	res, err := i.client.Call(c, i.address, bAbi.CollectionABI, "tokenURI", tokenId)
	if err != nil {
		return
	}
	uri, ok := res[0].(string)
	if !ok || uri == "" {
		return
	}
	meta, err := i.webresource.GetMetadata(c, uri)
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
