package activity

import (
	"time"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
)

type Type string

const (
	TypeMint        Type = "mint"
	TypeList        Type = "list"
	TypeBuy         Type = "buy"
	TypeBid         Type = "bid"
	TypeOffer       Type = "offer"
	TypeAcceptOffer Type = "acceptOffer"
)

// Activity is one confirmed marketplace action by a wallet, recorded after
// the external operation succeeds.
type Activity struct {
	Type      Type             `json:"type" bson:"type"`
	Address   domain.Address   `json:"address" bson:"address"`
	ListingId domain.ListingId `json:"listingId,omitempty" bson:"listingId,omitempty"`
	Contract  domain.Address   `json:"contract,omitempty" bson:"contract,omitempty"`
	TokenId   domain.TokenId   `json:"tokenId,omitempty" bson:"tokenId,omitempty"`
	// Amount is in display units together with Symbol.
	Amount    string    `json:"amount,omitempty" bson:"amount,omitempty"`
	Symbol    string    `json:"symbol,omitempty" bson:"symbol,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type FindAllOptions struct {
	Address *domain.Address
	Type    *Type
	Offset  *int32
	Limit   *int32
	Sort    *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithAddress(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		address = address.ToLower()
		options.Address = &address
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	Insert(ctx ctx.Ctx, a *Activity) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Activity, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
}

type UseCase interface {
	Record(ctx ctx.Ctx, a *Activity)
	List(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Activity, error)
}
