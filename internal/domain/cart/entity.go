// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/customization"
)

// LineItem represents one cart entry. The effective unit price is locked
// in when the line is created and never recomputed from live catalog
// data, so later menu price changes cannot alter a cart retroactively.
type LineItem struct {
	ID             string                   `json:"id"`
	MenuItemID     uint                     `json:"menu_item_id"`
	Name           string                   `json:"name"`
	BasePrice      int64                    `json:"base_price"` // Unit price at add time, in kurus
	Quantity       int                      `json:"quantity"`
	Customizations []customization.Snapshot `json:"customizations,omitempty"`
	Instructions   string                   `json:"instructions,omitempty"`
	AddedAt        time.Time                `json:"added_at"`
}

// EffectiveUnitPrice returns base price plus all customization extras
func (l *LineItem) EffectiveUnitPrice() int64 {
	return l.BasePrice + customization.SumSnapshots(l.Customizations)
}

// TotalPrice returns the line total
func (l *LineItem) TotalPrice() int64 {
	return l.EffectiveUnitPrice() * int64(l.Quantity)
}

// IsCustomized reports whether the line carries customization snapshots
func (l *LineItem) IsCustomized() bool {
	return len(l.Customizations) > 0
}

// Cart is the per-user order-in-progress. Insertion order of lines is
// preserved for display; it has no effect on totals.
type Cart struct {
	UserID    uint       `json:"user_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart for a user
func NewCart(userID uint) *Cart {
	now := time.Now().UTC()
	return &Cart{
		UserID:    userID,
		Items:     []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem appends a line for the menu item, or bumps the quantity of an
// existing line when both the existing line and the incoming add are
// uncustomized for the same item. Customized adds always get their own
// line.
func (c *Cart) AddItem(menuItemID uint, name string, unitPrice int64, customizations []customization.Snapshot, instructions string) *LineItem {
	if len(customizations) == 0 {
		for i := range c.Items {
			if c.Items[i].MenuItemID == menuItemID && !c.Items[i].IsCustomized() {
				c.Items[i].Quantity++
				c.touch()
				return &c.Items[i]
			}
		}
	}

	line := LineItem{
		ID:             uuid.NewString(),
		MenuItemID:     menuItemID,
		Name:           name,
		BasePrice:      unitPrice,
		Quantity:       1,
		Customizations: customizations,
		Instructions:   instructions,
		AddedAt:        time.Now().UTC(),
	}
	c.Items = append(c.Items, line)
	c.touch()
	return &c.Items[len(c.Items)-1]
}

// RemoveItem deletes a line by id. Removing an absent line is a no-op.
func (c *Cart) RemoveItem(lineID string) {
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// UpdateQuantity sets a line's quantity; zero or negative removes the
// line. Stock limits are not this component's concern.
func (c *Cart) UpdateQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(lineID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// Subtotal sums effective unit price times quantity over all lines
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for i := range c.Items {
		subtotal += c.Items[i].TotalPrice()
	}
	return subtotal
}

// ItemCount returns the sum of line quantities
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.touch()
}

// FindLine returns the line with the given id, nil when absent
func (c *Cart) FindLine(lineID string) *LineItem {
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			return &c.Items[i]
		}
	}
	return nil
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
