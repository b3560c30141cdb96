package services

import (
	"sync"

	"pizzeria/internal/core/domain/model/order"
)

// CurrentOrder holds the single active order.
//
// The order is created lazily on first access; concurrent first callers all
// observe the same instance. Swapping the active order is explicit: StartNew
// only builds the successor and Activate installs it.
//
// Example:
//
//	desk := services.NewCurrentOrder()
//	desk.Get().Add(item)
//
//	next := desk.StartNew()
//	desk.Activate(next)
type CurrentOrder struct {
	once    sync.Once
	mu      sync.Mutex
	current *order.Order
}

// NewCurrentOrder returns a holder with no order created yet.
func NewCurrentOrder() *CurrentOrder {
	return &CurrentOrder{}
}

// Get returns the active order, creating an empty one on first use.
func (c *CurrentOrder) Get() *order.Order {
	c.init()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// StartNew returns a copy of the active order (same number, same items)
// without making it active.
func (c *CurrentOrder) StartNew() *order.Order {
	c.init()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.StartNew()
}

// Activate makes o the active order. A nil o installs a fresh empty order.
func (c *CurrentOrder) Activate(o *order.Order) {
	c.init()

	if o == nil {
		o = order.NewOrder()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = o
}

// Reset clears the active order in place.
func (c *CurrentOrder) Reset() {
	_ = c.Update(func(o *order.Order) error {
		o.Reset()
		return nil
	})
}

// Update runs fn on the active order while holding the lock, so fn's
// changes are not interleaved with other Update or Activate calls.
func (c *CurrentOrder) Update(fn func(o *order.Order) error) error {
	c.init()

	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.current)
}

// Swap replaces the active order with next(current) under the lock and
// returns the previous order.
func (c *CurrentOrder) Swap(next func(current *order.Order) (*order.Order, error)) (*order.Order, error) {
	c.init()

	c.mu.Lock()
	defer c.mu.Unlock()

	replacement, err := next(c.current)
	if err != nil {
		return nil, err
	}
	if replacement == nil {
		replacement = order.NewOrder()
	}

	previous := c.current
	c.current = replacement
	return previous, nil
}

func (c *CurrentOrder) init() {
	c.once.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.current == nil {
			c.current = order.NewOrder()
		}
	})
}
