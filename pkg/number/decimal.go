package number

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount parse a non negative amount like the treasury balance
func Amount(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", v, err)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %s is negative", d)
	}

	return d, nil
}
