package usecase

import (
	"time"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/domain/activity"
)

type activityUseCase struct {
	repo activity.Repo
}

func NewActivityUseCase(repo activity.Repo) activity.UseCase {
	return &activityUseCase{repo: repo}
}

// Record is fire and forget. The feed is observational, a failed insert
// must never fail the flow that produced the activity.
func (u *activityUseCase) Record(c bCtx.Ctx, a *activity.Activity) {
	a.Address = a.Address.ToLower()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if err := u.repo.Insert(c, a); err != nil {
		c.WithFields(log.Fields{
			"type": a.Type,
			"err":  err,
		}).Warn("activity dropped")
	}
}

func (u *activityUseCase) List(c bCtx.Ctx, opts ...activity.FindAllOptionsFunc) ([]*activity.Activity, error) {
	return u.repo.FindAll(c, opts...)
}
