package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/activity"
	"github.com/Lugdu84/ebay-clone-nft/service/query"
)

const (
	defaultLimit = 50
	defaultSort  = "-createdAt"
)

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) activity.Repo {
	return &activityRepo{q: q}
}

func makeQuery(opts activity.FindAllOptions) bson.M {
	qry := bson.M{}
	if opts.Address != nil {
		qry["address"] = *opts.Address
	}
	if opts.Type != nil {
		qry["type"] = *opts.Type
	}
	return qry
}

func (r *activityRepo) Insert(c bCtx.Ctx, a *activity.Activity) error {
	if err := r.q.Insert(c, domain.TableActivities, a); err != nil {
		c.WithFields(log.Fields{
			"activity": *a,
			"err":      err,
		}).Error("failed to insert activity")
		return err
	}
	return nil
}

func (r *activityRepo) FindAll(c bCtx.Ctx, optFns ...activity.FindAllOptionsFunc) ([]*activity.Activity, error) {
	opts, err := activity.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	offset := 0
	limit := defaultLimit
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	sort := defaultSort
	if opts.Sort != nil {
		sort = *opts.Sort
	}

	res := []*activity.Activity{}
	if err := r.q.Search(c, domain.TableActivities, offset, limit, sort, makeQuery(opts), &res); err != nil {
		c.WithField("err", err).Error("failed to search activities")
		return nil, err
	}
	return res, nil
}

func (r *activityRepo) Count(c bCtx.Ctx, optFns ...activity.FindAllOptionsFunc) (int, error) {
	opts, err := activity.GetFindAllOptions(optFns...)
	if err != nil {
		return 0, err
	}

	n, err := r.q.Count(c, domain.TableActivities, makeQuery(opts))
	if err != nil {
		c.WithField("err", err).Error("failed to count activities")
		return 0, err
	}
	return n, nil
}
