package order

import (
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Order is the customer order currently being assembled.
//
// Order follows these invariants:
//   - items preserves insertion order and holds references, never copies
//   - totals are derived on demand by ComputeTotals and are stale otherwise
//   - the zero value is usable and equals NewOrder()
//
// Order is not safe for concurrent mutation; callers that share an order
// (see services.CurrentOrder) serialise access themselves.
type Order struct {
	number int
	items  []LineItem

	totals    Totals
	formatted *FormattedTotals
}

// NewOrder returns an empty order with number 0.
func NewOrder() *Order {
	return &Order{}
}

// StartNew returns a new order carrying the same number and a copy of the
// item slice. The receiver is not modified and the items themselves are
// shared, so later Add/Remove calls on either order do not affect the other.
func (o *Order) StartNew() *Order {
	return &Order{
		number: o.number,
		items:  slices.Clone(o.items),
	}
}

func (o *Order) Number() int {
	return o.number
}

func (o *Order) SetNumber(number int) {
	o.number = number
}

// Items returns a copy of the item slice in insertion order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) Len() int {
	return len(o.items)
}

func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// Add appends item. Duplicates are allowed.
func (o *Order) Add(item LineItem) {
	o.items = append(o.items, item)
}

// Remove deletes the first occurrence of item. It does nothing when item
// is not part of the order.
func (o *Order) Remove(item LineItem) {
	if i := o.indexOf(item); i >= 0 {
		o.items = slices.Delete(o.items, i, i+1)
	}
}

func (o *Order) Contains(item LineItem) bool {
	return o.indexOf(item) >= 0
}

// At returns the item at the 1-based position, or false when out of range.
func (o *Order) At(position int) (LineItem, bool) {
	if position < 1 || position > len(o.items) {
		return nil, false
	}
	return o.items[position-1], true
}

// Reset empties the order and zeroes its number and totals.
func (o *Order) Reset() {
	o.items = nil
	o.number = 0
	o.totals = Totals{}
	o.formatted = nil
}

// ComputeTotals recomputes and caches subtotal, sales tax and total.
func (o *Order) ComputeTotals() Totals {
	o.totals = CalculateTotals(o.items)
	formatted := o.totals.Formatted()
	o.formatted = &formatted
	return o.totals
}

// Totals returns the amounts from the last ComputeTotals call.
func (o *Order) Totals() Totals {
	return o.totals
}

// Total returns the order total from the last ComputeTotals call.
func (o *Order) Total() decimal.Decimal {
	return o.totals.Total
}

// FormattedTotals returns the display strings cached by the last
// ComputeTotals call; ok is false if none are cached.
func (o *Order) FormattedTotals() (FormattedTotals, bool) {
	if o.formatted == nil {
		return FormattedTotals{}, false
	}
	return *o.formatted, true
}

// ItemDescriptions renders each item as "Pizza {n}:\n{item}\n", n starting at 1.
func (o *Order) ItemDescriptions() []string {
	descriptions := make([]string, 0, len(o.items))
	for i, item := range o.items {
		descriptions = append(descriptions, "Pizza "+strconv.Itoa(i+1)+":\n"+item.String()+"\n")
	}
	return descriptions
}

// String renders the order number and one line per item, without totals.
func (o *Order) String() string {
	var b strings.Builder
	o.writeHeader(&b)
	return b.String()
}

// StringWithTotals renders String() followed by freshly computed subtotal,
// sales tax and total.
func (o *Order) StringWithTotals() string {
	var b strings.Builder
	o.writeHeader(&b)

	o.ComputeTotals()
	b.WriteString("Subtotal: $" + o.formatted.Subtotal + "\n")
	b.WriteString("Sales Tax: $" + o.formatted.SalesTax + "\n")
	b.WriteString("Order Total: $" + o.formatted.Total + "\n")

	return b.String()
}

func (o *Order) writeHeader(b *strings.Builder) {
	b.WriteString("Order Number: " + strconv.Itoa(o.number) + "\n")
	for i, item := range o.items {
		b.WriteString("Pizza " + strconv.Itoa(i+1) + ": " + item.String() + "\n")
	}
}

func (o *Order) indexOf(item LineItem) int {
	for i, candidate := range o.items {
		if candidate == item {
			return i
		}
	}
	return -1
}
