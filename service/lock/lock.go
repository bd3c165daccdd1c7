// Package lock guards against concurrent mutating operations from the
// same wallet. A wallet runs at most one mint, submit, buy, bid, offer
// or accept at a time; a second one is rejected with ErrBusy instead of
// being queued.
package lock

import (
	"time"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/keys"
	"github.com/Lugdu84/ebay-clone-nft/service/redis"
)

type Service interface {
	// Acquire takes the wallet's busy lock. It returns domain.ErrBusy
	// when another operation holds it. The returned release func is safe
	// to defer.
	Acquire(c ctx.Ctx, owner domain.Address) (func(), error)
}

type impl struct {
	redis redis.Service
	ttl   time.Duration
}

// The ttl is a safety bound in case a release is lost; it should exceed
// the slowest chain operation.
func New(redis redis.Service, ttl time.Duration) Service {
	return &impl{redis: redis, ttl: ttl}
}

func (im *impl) Acquire(c ctx.Ctx, owner domain.Address) (func(), error) {
	key := keys.RedisKey(keys.PfxBusy, owner.ToLowerStr())
	ok, err := im.redis.SetNX(c, key, []byte("1"), im.ttl)
	if err != nil {
		c.WithField("err", err).Error("failed to acquire busy lock")
		return nil, err
	}
	if !ok {
		return nil, domain.ErrBusy
	}
	release := func() {
		if _, err := im.redis.Del(c, key); err != nil {
			c.WithField("err", err).Warn("failed to release busy lock")
		}
	}
	return release, nil
}
