package domain

// CartLine is one item in a cart. UnitPrice is captured when the item is
// first added and never re-read from the catalog afterwards.
type CartLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// Subtotal returns quantity times the captured unit price.
func (l CartLine) Subtotal() int {
	return l.Quantity * l.UnitPrice
}

// Cart holds a user's selected lines in insertion order. A line's quantity
// is always >= 1; a line whose quantity reaches zero is removed, never
// retained. The zero value is an empty cart ready to use.
type Cart struct {
	Lines []CartLine `json:"lines,omitempty"`
}

// Line returns the index of the line for name, or -1.
func (c *Cart) Line(name string) int {
	for i := range c.Lines {
		if c.Lines[i].Name == name {
			return i
		}
	}
	return -1
}

// Add increments the quantity for name, creating the line with the given
// unit price if it does not exist yet.
func (c *Cart) Add(name string, unitPrice int) {
	if i := c.Line(name); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{Name: name, Quantity: 1, UnitPrice: unitPrice})
}

// Adjust changes the quantity of an existing line by delta. It returns
// removed=true when the new quantity dropped to zero or below and the line
// was deleted. ErrLineNotFound is returned if no line exists for name.
func (c *Cart) Adjust(name string, delta int) (removed bool, err error) {
	i := c.Line(name)
	if i < 0 {
		return false, ErrLineNotFound
	}
	c.Lines[i].Quantity += delta
	if c.Lines[i].Quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return true, nil
	}
	return false, nil
}

// Clear removes all lines. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total returns the sum of line subtotals. An empty cart totals zero.
func (c *Cart) Total() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Snapshot returns an independent copy of the lines in insertion order.
func (c *Cart) Snapshot() []CartLine {
	out := make([]CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}
