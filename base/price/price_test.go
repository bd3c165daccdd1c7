package price

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lugdu84/ebay-clone-nft/domain"
)

func TestParsePositiveDecimal(t *testing.T) {
	for _, s := range []string{"1", "0.5", "1.00", "0.000000000000000001"} {
		d, err := ParsePositiveDecimal(s)
		require.NoError(t, err, s)
		assert.True(t, d.IsPositive(), s)
	}
	for _, s := range []string{"", "abc", "0", "-1", "1,5", "0.0"} {
		_, err := ParsePositiveDecimal(s)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, s)
	}
}

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"1", "1000000000000000000"},
		{"0.55", "550000000000000000"},
		{"1.5", "1500000000000000000"},
		{"0.000000000000000001", "1"},
		// sub-wei precision truncates
		{"0.0000000000000000015", "1"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.display)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ToBaseUnits(d, 18), tt.display)
	}
}

func TestFromBaseUnits(t *testing.T) {
	d, err := FromBaseUnits("1500000000000000000", 18)
	require.NoError(t, err)
	assert.Equal(t, "1.5", d.String())

	_, err = FromBaseUnits("not a number", 18)
	assert.ErrorIs(t, err, domain.ErrInvalidNumberFormat)
}

func TestFromBigInt(t *testing.T) {
	v, ok := new(big.Int).SetString("550000000000000000", 10)
	require.True(t, ok)
	assert.Equal(t, "0.55", FromBigInt(v, 18).String())
}

func TestEqualBaseUnits(t *testing.T) {
	tests := []struct {
		display string
		raw     string
		want    bool
	}{
		{"1", "1000000000000000000", true},
		{"1.0", "1000000000000000000", true},
		{"1.00", "1000000000000000000", true},
		{"0.5", "1000000000000000000", false},
		{"1.000000000000000001", "1000000000000000000", false},
		{"1", "bogus", false},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.display)
		require.NoError(t, err)
		assert.Equal(t, tt.want, EqualBaseUnits(d, tt.raw, 18), tt.display)
	}
}
