package listing

import (
	"time"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
)

type DraftState string

const (
	DraftStateSelectingAsset DraftState = "selectingAsset"
	DraftStateAssetSelected  DraftState = "assetSelected"
	DraftStateSubmitting     DraftState = "submitting"
)

// Draft is the transient create-listing wizard state. It lives server side
// for the duration of the flow and is dropped on success or expiry.
type Draft struct {
	Id        string         `json:"id"`
	Owner     domain.Address `json:"owner"`
	State     DraftState     `json:"state"`
	Asset     *asset.Asset   `json:"asset,omitempty"`
	Kind      *Kind          `json:"kind,omitempty"`
	Price     string         `json:"price,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Select records the chosen asset. Selecting while one is already chosen
// replaces the selection, it never accumulates.
func (d *Draft) Select(a *asset.Asset) {
	d.Asset = a
	d.State = DraftStateAssetSelected
}

// Submittable reports whether every required field is present and does not
// need parsing to fail later: an asset is selected, a kind is chosen and a
// price string was entered. Price positivity is checked at parse time.
func (d *Draft) Submittable() bool {
	return d.State == DraftStateAssetSelected &&
		d.Asset != nil &&
		d.Kind != nil && d.Kind.IsValid() &&
		d.Price != ""
}

type DraftPatch struct {
	Kind  *Kind   `json:"kind,omitempty"`
	Price *string `json:"price,omitempty"`
}

type DraftRepo interface {
	Create(ctx ctx.Ctx, draft *Draft) error
	FindOne(ctx ctx.Ctx, id string) (*Draft, error)
	Update(ctx ctx.Ctx, draft *Draft) error
	Delete(ctx ctx.Ctx, id string) error
}
