// Package cart implements the order-composition state: a list of menu items
// with quantities and per-item notes, merged by product and totalled on demand.
package cart

import (
	"github.com/cafetec/cafetec-api/internal/models"
)

type Item struct {
	Product  models.Product
	Quantity uint
	Note     string
}

type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty units of p into the cart. Adding a product that is already
// present increments its quantity instead of creating a second line. A
// non-empty note replaces the line's note.
func (c *Cart) Add(p models.Product, qty uint, note string) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += qty
			if note != "" {
				c.items[i].Note = note
			}
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: qty, Note: note})
}

func (c *Cart) Remove(productID uint) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity. Values below 1 are rejected and the
// prior quantity is retained; the return value reports whether qty was applied.
func (c *Cart) SetQuantity(productID uint, qty int) bool {
	if qty < 1 {
		return false
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = uint(qty)
			return true
		}
	}
	return false
}

func (c *Cart) SetNote(productID uint, note string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Note = note
			return
		}
	}
}

// Total is the sum of precio*cantidad over the current lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}
