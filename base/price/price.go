// Package price converts between the display amounts users type and the
// base-unit integer amounts the chain SDK speaks.
package price

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/Lugdu84/ebay-clone-nft/domain"
)

// ParsePositiveDecimal parses a user-entered amount. It fails on anything
// that is not a strictly positive decimal number.
func ParsePositiveDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return d, nil
}

// ToBaseUnits shifts a display amount into the token's smallest unit and
// returns it as a decimal integer string.
func ToBaseUnits(d decimal.Decimal, decimals int32) string {
	return d.Shift(decimals).Truncate(0).String()
}

// FromBaseUnits shifts a base-unit integer string back to display units.
func FromBaseUnits(raw string, decimals int32) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidNumberFormat
	}
	return d.Shift(-decimals), nil
}

// FromBigInt shifts a base-unit big.Int to display units.
func FromBigInt(v *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(v, -decimals)
}

// EqualBaseUnits compares a display amount against a raw base-unit amount
// as normalized smallest-unit integers. Display-string comparison would
// miss trailing zeros and scientific forms, so both sides are brought to
// base units first.
func EqualBaseUnits(display decimal.Decimal, raw string, decimals int32) bool {
	r, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return display.Shift(decimals).Equal(r)
}
