package kernel

import (
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits shown for amounts.
const MoneyPlaces = 2

// ParseMoney parses a non-negative decimal amount such as "10.00".
func ParseMoney(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal", s))
	}
	if err = ValidateMoney(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ValidateMoney rejects negative amounts.
func ValidateMoney(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount.String()))
	}
	return nil
}

// FormatMoney renders amount with exactly two fractional digits,
// rounding half away from zero (1.025 -> "1.03").
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPlaces)
}
