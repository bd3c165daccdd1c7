package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/base/ptr"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/keys"
	"github.com/Lugdu84/ebay-clone-nft/service/cache"
	compoundcache "github.com/Lugdu84/ebay-clone-nft/service/cache/compoundCache"
	"github.com/Lugdu84/ebay-clone-nft/service/cache/provider/primitive"
	redisCache "github.com/Lugdu84/ebay-clone-nft/service/cache/provider/redis"
	"github.com/Lugdu84/ebay-clone-nft/service/redis"
)

type impl struct {
	client *ethclient.Client
	cache  cache.Service
}

// New resolves ens names on ethereum mainnet regardless of the
// marketplace chain. Name ownership rarely moves, so results are cached
// aggressively in redis with a short local layer in front.
func New(rpc string, redis redis.Service) ENS {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		panic(err)
	}
	return &impl{
		client,
		compoundcache.NewCompoundCache([]cache.Service{
			cache.New(cache.ServiceConfig{
				Ttl:   30 * time.Second,
				Pfx:   keys.PfxEnsName,
				Cache: primitive.NewPrimitive("ens", 512),
			}),
			cache.New(cache.ServiceConfig{
				Ttl:   7 * 24 * time.Hour,
				Pfx:   keys.PfxEnsName,
				Cache: redisCache.NewRedis(redis),
			}),
		}),
	}
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := goens.ReverseResolve(im.client, common.HexToAddress(string(address)))
		if fmt.Sprint(err) == "not a resolver" {
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}
