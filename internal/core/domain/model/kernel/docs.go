// Package kernel provides the shared value objects of the order desk domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Money helpers: parsing and display formatting of decimal amounts
//
// Monetary values are github.com/shopspring/decimal values throughout the
// domain so that sums of prices and tax are exact; rounding only happens
// when an amount is formatted for display.
package kernel
