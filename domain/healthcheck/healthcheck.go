package healthcheck

import (
	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
)

// HealthCheckRepo represent the healthcheck repository contract
type HealthCheckRepo interface {
	PingDB(ctx ctx.Ctx) error
}

// HealthCheckUsecase represent the healthcheck usecase contract
type HealthCheckUsecase interface {
	Check(ctx ctx.Ctx) error
}
