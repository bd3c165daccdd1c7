package usecase

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/domain/activity"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
	"github.com/Lugdu84/ebay-clone-nft/domain/market"
	"github.com/Lugdu84/ebay-clone-nft/domain/mint"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
	"github.com/Lugdu84/ebay-clone-nft/service/lock"
	"github.com/Lugdu84/ebay-clone-nft/service/notifier"
	"github.com/Lugdu84/ebay-clone-nft/service/pinata"
)

type MintUseCaseCfg struct {
	Collection market.Collection
	Pinata     pinata.Service
	Notifier   notifier.Service
	Activity   activity.UseCase
	Lock       lock.Service
}

type mintUseCase struct {
	collection market.Collection
	pinata     pinata.Service
	notifier   notifier.Service
	activity   activity.UseCase
	lock       lock.Service
}

func NewMintUseCase(cfg *MintUseCaseCfg) mint.UseCase {
	return &mintUseCase{
		collection: cfg.Collection,
		pinata:     cfg.Pinata,
		notifier:   cfg.Notifier,
		activity:   cfg.Activity,
		lock:       cfg.Lock,
	}
}

func (u *mintUseCase) Mint(c bCtx.Ctx, session wallet.Session, p *mint.PendingMint) (*mint.Result, error) {
	// no connected wallet means nothing to mint to; not an error
	if session.IsAnonymous() {
		return nil, nil
	}
	if u.collection == nil {
		c.Warn("collection contract not resolved, mint skipped")
		return nil, nil
	}

	if flags := p.Validate(); flags.Any() {
		return nil, &mint.ValidationError{Flags: flags}
	}

	release, err := u.lock.Acquire(c, session.Address)
	if err != nil {
		return nil, err
	}
	defer release()

	// Extension comes back with a leading dot; pinata prepends its own
	ext := strings.TrimPrefix(mimetype.Detect(p.Image).Extension(), ".")
	imageUri, err := u.pinata.Pin(c, bytes.NewReader(p.Image), ext,
		pinata.WithMetadata(pinata.PinataMetadata{Name: p.ImageFilename}))
	if err != nil {
		c.WithField("err", err).Error("failed to pin image")
		u.notifier.Notify(c, notifier.SeverityError, "Error minting NFT")
		return nil, err
	}

	metadataUri, err := u.pinata.PinJson(c, asset.Metadata{
		Name:        p.Name,
		Description: p.Description,
		Image:       imageUri,
	}, pinata.WithMetadata(pinata.PinataMetadata{Name: fmt.Sprintf("%s.json", p.Name)}))
	if err != nil {
		c.WithField("err", err).Error("failed to pin metadata")
		u.notifier.Notify(c, notifier.SeverityError, "Error minting NFT")
		return nil, err
	}

	tokenId, err := u.collection.MintTo(c, session.Address, metadataUri)
	if err != nil {
		c.WithFields(log.Fields{
			"to":  session.Address,
			"err": err,
		}).Error("failed to mint")
		u.notifier.Notify(c, notifier.SeverityError, "Error minting NFT")
		return nil, err
	}

	u.notifier.Notify(c, notifier.SeveritySuccess, "NFT minted successfully")
	u.activity.Record(c, &activity.Activity{
		Type:      activity.TypeMint,
		Address:   session.Address,
		TokenId:   tokenId,
		CreatedAt: time.Now(),
	})

	return &mint.Result{
		TokenId:  tokenId,
		Redirect: "/",
	}, nil
}
