package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var CollectionABI abi.ABI

var collectionABI = `[
{"type":"function","name":"mintTo","stateMutability":"nonpayable","inputs":[{"type":"address","name":"_to"},{"type":"string","name":"_uri"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},
{"type":"function","name":"tokenOfOwnerByIndex","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"uint256","name":"index"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"tokenURI","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},
{"type":"event","anonymous":false,"name":"TokensMinted","inputs":[{"type":"address","name":"mintedTo","indexed":true},{"type":"uint256","name":"tokenIdMinted","indexed":true},{"type":"string","name":"uri"}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(collectionABI))
	if err != nil {
		panic(err)
	}
	CollectionABI = _abi
}

// TokensMintedLog is a parsed TokensMinted event.
type TokensMintedLog struct {
	MintedTo      common.Address
	TokenIdMinted *big.Int
	Uri           string
}

func ToTokensMintedLog(l *types.Log) (*TokensMintedLog, error) {
	if len(l.Topics) != 3 {
		return nil, xerrors.Errorf("unexpected topics length %d", len(l.Topics))
	}
	res := &TokensMintedLog{
		MintedTo:      common.BytesToAddress(l.Topics[1].Bytes()),
		TokenIdMinted: new(big.Int).SetBytes(l.Topics[2].Bytes()),
	}
	unpacked, err := CollectionABI.Unpack("TokensMinted", l.Data)
	if err != nil {
		return nil, err
	}
	res.Uri = unpacked[0].(string)
	return res, nil
}
