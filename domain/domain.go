package domain

import (
	"strings"
)

type ChainId int32

// Address is a lower-cased hex account or contract address.
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// Truncated renders the short display form used on offer rows,
// e.g. 0x939...52a1d.
func (a Address) Truncated() string {
	s := string(a)
	if len(s) <= 11 {
		return s
	}
	return s[:5] + "..." + s[len(s)-5:]
}

// NativeToken is the sentinel currency address marketplace contracts use
// for the chain's native token.
const NativeToken = Address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

type ListingId string

func (i ListingId) String() string {
	return string(i)
}

type TxHash string

// NativeTokenSymbols maps a chain to the symbol of its native token,
// the only currency the storefront lists in.
var NativeTokenSymbols = map[ChainId]string{
	// eth
	1: "ETH",
	// goerli
	5: "ETH",
	// polygon
	137: "MATIC",
	// mumbai
	80001: "MATIC",
}

func NativeTokenSymbol(chainId ChainId) string {
	if s, ok := NativeTokenSymbols[chainId]; ok {
		return s
	}
	return "ETH"
}

// NativeTokenDecimals applies to every chain the storefront targets.
const NativeTokenDecimals = 18
