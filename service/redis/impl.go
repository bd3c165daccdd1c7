package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/metrics"
	"github.com/Lugdu84/ebay-clone-nft/domain/keys"
)

// retTTLNoKey is the return value of TTL when the key does not exist
const retTTLNoKey = -2

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis pool
func New(name string, met metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   met,
		pools: pools,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}

	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// Closing conn explicitly asap improves redigo's performance, because
	// the longer a connection is held the more connections the pool needs
	// to handle at the same time.
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := []string{"func", "get", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		r.met.BumpSum("get.miss", 1, tags...)
		return nil, ErrNotFound
	} else if err != nil {
		r.met.BumpSum("get.err", 1, tags...)
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	tags := []string{"func", "set", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	var err error
	if ttl > 0 {
		_, err = r.connDo(context, "SET", key, value, "PX", int64(ttl/time.Millisecond))
	} else {
		_, err = r.connDo(context, "SET", key, value)
	}
	if err != nil {
		r.met.BumpSum("set.err", 1, tags...)
	}
	return err
}

func (r *redImpl) SetNX(context ctx.Ctx, key string, value []byte, ttl time.Duration) (bool, error) {
	tags := []string{"func", "setnx", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	reply, err := redis.String(r.connDo(context, "SET", key, value, "PX", int64(ttl/time.Millisecond), "NX"))
	if err == redis.ErrNil {
		return false, nil
	} else if err != nil {
		r.met.BumpSum("setnx.err", 1, tags...)
		return false, err
	}
	return reply == "OK", nil
}

func (r *redImpl) Del(context ctx.Ctx, key string) (bool, error) {
	tags := []string{"func", "del", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	n, err := redis.Int(r.connDo(context, "DEL", key))
	if err != nil {
		r.met.BumpSum("del.err", 1, tags...)
		return false, err
	}
	return n > 0, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int64, error) {
	ttl, err := redis.Int64(r.connDo(context, "TTL", key))
	if err != nil {
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	n, err := redis.Int(r.connDo(context, "EXISTS", key))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, diff int) (int64, error) {
	return redis.Int64(r.connDo(context, "INCRBY", key, diff))
}

func (r *redImpl) Publish(context ctx.Ctx, channel string, payload []byte) error {
	tags := []string{"func", "publish", "cluster", r.name, "prefix", keys.GetPrefix(channel)}
	defer r.met.BumpTime("time", tags...).End()

	if _, err := r.connDo(context, "PUBLISH", channel, payload); err != nil {
		r.met.BumpSum("publish.err", 1, tags...)
		return err
	}
	return nil
}
