package ens

import (
	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
)

type ENS interface {
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}
