package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressTruncated(t *testing.T) {
	a := Address("0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d")
	assert.Equal(t, "0x939...52a1d", a.Truncated())

	// too short to shorten
	assert.Equal(t, "0xabc", Address("0xabc").Truncated())
}

func TestAddressEquals(t *testing.T) {
	a := Address("0x939AE0CC1C3A1B7A44834A6FBDE54AA713952A1D")
	b := Address("0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d")
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(EmptyAddress))
}

func TestNativeTokenSymbol(t *testing.T) {
	assert.Equal(t, "ETH", NativeTokenSymbol(ChainId(1)))
	assert.Equal(t, "ETH", NativeTokenSymbol(ChainId(5)))
	assert.Equal(t, "MATIC", NativeTokenSymbol(ChainId(137)))
	// unknown chains fall back to the generic symbol
	assert.NotEmpty(t, NativeTokenSymbol(ChainId(999999)))
}
