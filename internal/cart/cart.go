package cart

import (
	"errors"
	"math"
	"sync"
)

var ErrEmptyCart = errors.New("nothing to purchase")

// Product is the priced thing a cart entry references. Catalog items use
// their unique name as Key; marketplace listings use their id, so the two
// never alias inside one cart.
type Product struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

type Entry struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}

// Cart maps product keys to quantities. An entry either does not exist or
// holds qty >= 1; decrementing the last unit removes it.
type Cart struct {
	mu      sync.Mutex
	entries map[string]*Entry
	order   []string
}

func New() *Cart {
	return &Cart{entries: make(map[string]*Entry)}
}

// Add puts one unit of p in the cart and returns the new quantity.
func (c *Cart) Add(p Product) int {
	return c.AddN(p, 1)
}

// AddN puts n units of p in the cart in one step and returns the new
// quantity. n < 1 changes nothing and reports the current quantity.
// Quantities saturate at math.MaxInt rather than wrapping.
func (c *Cart) AddN(p Product, n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[p.Key]
	if n < 1 {
		if !ok {
			return 0
		}
		return e.Qty
	}

	if !ok {
		e = &Entry{Product: p}
		c.entries[p.Key] = e
		c.order = append(c.order, p.Key)
	}

	if n > math.MaxInt-e.Qty {
		e.Qty = math.MaxInt
	} else {
		e.Qty += n
	}
	return e.Qty
}

// Decrement removes one unit, dropping the entry when it hits zero.
// It reports the remaining quantity and whether the entry still exists.
// Decrementing an absent key is a no-op.
func (c *Cart) Decrement(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}

	e.Qty--
	if e.Qty <= 0 {
		c.drop(key)
		return 0, false
	}
	return e.Qty, true
}

// Remove drops the entry regardless of quantity. No-op when absent.
func (c *Cart) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.drop(key)
	}
}

func (c *Cart) drop(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Get(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Items returns entries in first-add order.
func (c *Cart) Items() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, *c.entries[k])
	}
	return out
}

// TotalCents sums price times quantity over the live cart contents.
func (c *Cart) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

// totalLocked saturates at math.MaxInt64: an absurd price times quantity
// must never wrap the total negative.
func (c *Cart) totalLocked() int64 {
	var total int64
	for _, e := range c.entries {
		qty := int64(e.Qty)
		line := e.Product.PriceCents * qty
		if e.Product.PriceCents != 0 && line/e.Product.PriceCents != qty {
			return math.MaxInt64
		}
		if total > math.MaxInt64-line {
			return math.MaxInt64
		}
		total += line
	}
	return total
}

// Checkout clears the whole cart and returns the total it held. An empty
// cart returns ErrEmptyCart and stays unchanged. All-or-nothing: there is
// no partial checkout.
func (c *Cart) Checkout() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		return 0, ErrEmptyCart
	}

	total := c.totalLocked()
	c.entries = make(map[string]*Entry)
	c.order = nil
	return total, nil
}
