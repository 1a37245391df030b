package shop

import "github.com/shopspring/decimal"

// Cart is ordered and unique by item ID. Mutators return the updated cart.
type Cart []CartItem

func (c Cart) index(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Add bumps the quantity of p, appending a fresh line at qty 1 when absent.
func (c Cart) Add(p Product) Cart {
	if i := c.index(p.ID); i >= 0 {
		c[i].Qty++
		return c
	}
	return append(c, CartItem{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image, Qty: 1})
}

func (c Cart) Remove(id string) Cart {
	out := make(Cart, 0, len(c))
	for _, it := range c {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// ChangeQty clamps the resulting quantity at 1. ok is false when id is not in the cart.
func (c Cart) ChangeQty(id string, delta int) (Cart, bool) {
	i := c.index(id)
	if i < 0 {
		return c, false
	}
	c[i].Qty = max(1, c[i].Qty+delta)
	return c, true
}

func (c Cart) Count() int {
	n := 0
	for _, it := range c {
		n += it.Qty
	}
	return n
}

func (c Cart) Total() Money {
	total := decimal.Zero
	for _, it := range c {
		total = total.Add(it.Subtotal())
	}
	return Money{total}
}

// Clone copies the lines so later edits to c do not leak into the copy.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
