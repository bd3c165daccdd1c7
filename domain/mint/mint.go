package mint

import (
	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
)

// PendingMint is the transient add-item form state. It exists only for the
// duration of one submission and is never persisted.
type PendingMint struct {
	Name        string
	Description string
	Image       []byte
	// ImageFilename is the uploaded filename, kept only as a sniffing hint.
	ImageFilename string
}

// RequiredFlags marks which required fields were missing. All flags are
// computed in one pass so the caller sees every problem at once.
type RequiredFlags struct {
	Name        bool `json:"name"`
	Description bool `json:"description"`
	Image       bool `json:"image"`
}

func (f RequiredFlags) Any() bool {
	return f.Name || f.Description || f.Image
}

// Validate returns the missing-field flags for the pending mint.
func (p *PendingMint) Validate() RequiredFlags {
	return RequiredFlags{
		Name:        p.Name == "",
		Description: p.Description == "",
		Image:       len(p.Image) == 0,
	}
}

type Result struct {
	TokenId  domain.TokenId `json:"tokenId"`
	Redirect string         `json:"redirect,omitempty"`
}

type UseCase interface {
	// Mint validates the pending mint, uploads its media and metadata and
	// mints the token to the session wallet. A zero-value error with a nil
	// result means the precondition (connected wallet, resolved contract)
	// was not met and nothing was attempted.
	Mint(ctx ctx.Ctx, session wallet.Session, p *PendingMint) (*Result, error)
}

// ValidationError carries the per-field flags back to the form.
type ValidationError struct {
	Flags RequiredFlags
}

func (e *ValidationError) Error() string {
	return "required fields are missing"
}
