// Package pricing derives expected pre-tax list prices from tax-inclusive MRP.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// divisors maps each supported GST rate to 1 + rate/100.
// Only the two rates that occur in the master price list are supported; any
// other rate is a data problem reported per row, never a crash.
var divisors = map[int]decimal.Decimal{
	18: decimal.RequireFromString("1.18"),
	28: decimal.RequireFromString("1.28"),
}

// UnsupportedTaxRateError reports a GST rate outside the supported set.
type UnsupportedTaxRateError struct {
	Rate int
}

func (e *UnsupportedTaxRateError) Error() string {
	return fmt.Sprintf("unsupported GST rate %d%%", e.Rate)
}

// ExpectedListPrice returns the pre-tax list price implied by a tax-inclusive
// MRP: mrp / (1 + gstPercent/100).
func ExpectedListPrice(mrp decimal.Decimal, gstPercent int) (decimal.Decimal, error) {
	divisor, ok := divisors[gstPercent]
	if !ok {
		return decimal.Decimal{}, &UnsupportedTaxRateError{Rate: gstPercent}
	}
	return mrp.Div(divisor), nil
}
