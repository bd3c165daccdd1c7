package wallet

import (
	"github.com/Lugdu84/ebay-clone-nft/domain"
)

// Session carries the connected wallet context extracted from the bearer
// token. A zero Session means no wallet is connected.
type Session struct {
	Address domain.Address `json:"address"`
	ChainId domain.ChainId `json:"chainId"`
}

func (s Session) IsAnonymous() bool {
	return s.Address.IsEmpty()
}

// NetworkMismatched reports whether the session wallet is connected to a
// chain other than the marketplace target chain.
func (s Session) NetworkMismatched(target domain.ChainId) bool {
	return s.ChainId != target
}

// SwitchRequest instructs the client to switch its wallet to the target
// chain before retrying. The submission that produced it is aborted, never
// retried automatically.
type SwitchRequest struct {
	Action  string         `json:"action"`
	ChainId domain.ChainId `json:"chainId"`
}

func NewSwitchRequest(target domain.ChainId) *SwitchRequest {
	return &SwitchRequest{
		Action:  "switch-network",
		ChainId: target,
	}
}
