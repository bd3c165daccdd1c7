package repository

import (
	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/listing"
	"github.com/Lugdu84/ebay-clone-nft/service/cache"
)

type draftRepo struct {
	cache cache.Service
}

// NewDraftRepo keeps wizard drafts in the cache service. Drafts are
// transient by contract, the cache ttl doubles as the wizard expiry.
func NewDraftRepo(cacheService cache.Service) listing.DraftRepo {
	return &draftRepo{cache: cacheService}
}

func (r *draftRepo) Create(c bCtx.Ctx, draft *listing.Draft) error {
	if err := r.cache.Set(c, draft.Id, draft); err != nil {
		c.WithFields(log.Fields{
			"draftId": draft.Id,
			"err":     err,
		}).Error("failed to store draft")
		return err
	}
	return nil
}

func (r *draftRepo) FindOne(c bCtx.Ctx, id string) (*listing.Draft, error) {
	draft := &listing.Draft{}
	if err := r.cache.Get(c, id, draft); err == cache.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"draftId": id,
			"err":     err,
		}).Error("failed to load draft")
		return nil, err
	}
	return draft, nil
}

func (r *draftRepo) Update(c bCtx.Ctx, draft *listing.Draft) error {
	return r.Create(c, draft)
}

func (r *draftRepo) Delete(c bCtx.Ctx, id string) error {
	if err := r.cache.Del(c, id); err != nil {
		c.WithFields(log.Fields{
			"draftId": id,
			"err":     err,
		}).Error("failed to delete draft")
		return err
	}
	return nil
}
