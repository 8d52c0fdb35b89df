package domain

// CartLine is one requested (menu item, quantity) pair before pricing.
type CartLine struct {
	MenuItemID          uint64 `json:"menuItemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Cart is the request-scoped builder a customer assembles before
// submitting an order for their table. It is never persisted; submission
// hands the lines to the order service in a single call.
type Cart struct {
	tableID uint64
	notes   string
	lines   []CartLine
}

func NewCart(tableID uint64) *Cart {
	return &Cart{tableID: tableID}
}

func (c *Cart) TableID() uint64 { return c.tableID }

func (c *Cart) SetNotes(notes string) { c.notes = notes }

func (c *Cart) Notes() string { return c.notes }

// AddItem adds quantity of a menu item to the cart. Adding an item that
// is already present (with the same instructions) bumps its quantity.
func (c *Cart) AddItem(menuItemID uint64, quantity int, instructions string) {
	if quantity < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID && c.lines[i].SpecialInstructions == instructions {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		MenuItemID:          menuItemID,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	})
}

// RemoveItem drops every line for the given menu item.
func (c *Cart) RemoveItem(menuItemID uint64) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.MenuItemID != menuItemID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// UpdateQuantity sets the quantity for a menu item. A quantity below 1
// removes the item.
func (c *Cart) UpdateQuantity(menuItemID uint64, quantity int) {
	if quantity < 1 {
		c.RemoveItem(menuItemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity = quantity
		}
	}
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
