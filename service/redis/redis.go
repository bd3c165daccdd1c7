package redis

import (
	"errors"
	"time"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
)

// Service provides the subset of redis operations the storefront uses.
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	// SetNX sets the key only when it does not exist and reports whether
	// it was set.
	SetNX(c ctx.Ctx, key string, value []byte, ttl time.Duration) (bool, error)
	Del(c ctx.Ctx, key string) (bool, error)
	TTL(c ctx.Ctx, key string) (int64, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	Incrby(c ctx.Ctx, key string, diff int) (int64, error)
	// Publish fans a payload out to channel subscribers, used by the
	// notification side-channel.
	Publish(c ctx.Ctx, channel string, payload []byte) error
}
