package order

import (
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// taxRate is the 6.625% sales tax applied to every order.
var taxRate = decimal.New(6625, -5)

// TaxRate returns the sales tax rate, 0.06625.
func TaxRate() decimal.Decimal {
	return taxRate
}

// Totals holds the amounts derived from an order's items.
type Totals struct {
	Subtotal decimal.Decimal
	SalesTax decimal.Decimal
	Total    decimal.Decimal
}

// FormattedTotals holds Totals rendered for display.
type FormattedTotals struct {
	Subtotal string
	SalesTax string
	Total    string
}

// CalculateTotals sums the item prices and applies TaxRate.
// An empty slice yields zero totals.
func CalculateTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price())
	}
	return totalsFromSubtotal(subtotal)
}

func totalsFromSubtotal(subtotal decimal.Decimal) Totals {
	salesTax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal,
		SalesTax: salesTax,
		Total:    subtotal.Add(salesTax),
	}
}

// Formatted renders each amount with two fractional digits.
func (t Totals) Formatted() FormattedTotals {
	return FormattedTotals{
		Subtotal: kernel.FormatMoney(t.Subtotal),
		SalesTax: kernel.FormatMoney(t.SalesTax),
		Total:    kernel.FormatMoney(t.Total),
	}
}
