// Package order provides the in-progress customer order of the order desk.
//
// The package includes:
//   - Order: the mutable aggregate of line items with derived totals
//   - LineItem: the contract a priced unit (a pizza) must satisfy
//   - Item: a named, priced LineItem used by the application adapters
//   - Totals: subtotal, sales tax and total derived from the items
//   - PlacedOrder: an immutable snapshot of an order handed to order history
//
// Key business rules:
//   - Items keep insertion order; display numbering is 1-based
//   - subtotal = sum of item prices, salesTax = subtotal * TaxRate(),
//     total = subtotal + salesTax, recomputed from scratch on every request
//   - Removing an item that is not in the order is a silent no-op
//   - StartNew copies the item slice (not the items) into a fresh order
//   - Amounts are exact decimals and only rounded (half away from zero,
//     two places) when formatted
package order
