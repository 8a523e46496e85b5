package cart

import (
	"testing"

	"github.com/gokhanazp/riversideburger-sub000/internal/domain/customization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	burgerID    = uint(1)
	burgerPrice = int64(15000) // 150.00 TRY
)

func TestAddItemMergesUncustomizedLines(t *testing.T) {
	c := NewCart(42)

	c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")
	c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, burgerPrice*2, c.Subtotal())
}

func TestAddItemKeepsCustomizedLinesSeparate(t *testing.T) {
	c := NewCart(42)
	cheese := []customization.Snapshot{{OptionID: 10, Name: "Cheese", Price: 500}}
	bacon := []customization.Snapshot{{OptionID: 11, Name: "Bacon", Price: 750}}

	c.AddItem(burgerID, "Classic Burger", burgerPrice, cheese, "")
	c.AddItem(burgerID, "Classic Burger", burgerPrice, bacon, "")

	require.Len(t, c.Items, 2)
	assert.Equal(t, burgerPrice+500, c.Items[0].EffectiveUnitPrice())
	assert.Equal(t, burgerPrice+750, c.Items[1].EffectiveUnitPrice())
	assert.Equal(t, (burgerPrice+500)+(burgerPrice+750), c.Subtotal())
}

func TestCustomizedAddDoesNotMergeIntoUncustomizedLine(t *testing.T) {
	c := NewCart(42)
	cheese := []customization.Snapshot{{OptionID: 10, Name: "Cheese", Price: 500}}

	c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")
	c.AddItem(burgerID, "Classic Burger", burgerPrice, cheese, "")

	require.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestUncustomizedAddSkipsCustomizedLines(t *testing.T) {
	c := NewCart(42)
	cheese := []customization.Snapshot{{OptionID: 10, Name: "Cheese", Price: 500}}

	c.AddItem(burgerID, "Classic Burger", burgerPrice, cheese, "")
	c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")

	require.Len(t, c.Items, 2)
	assert.True(t, c.Items[0].IsCustomized())
	assert.False(t, c.Items[1].IsCustomized())
}

func TestLinePriceIsLockedAtAddTime(t *testing.T) {
	c := NewCart(42)
	line := c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")

	// A later catalog price change has no effect on the stored line
	assert.Equal(t, burgerPrice, line.BasePrice)
	assert.Equal(t, burgerPrice, c.Items[0].EffectiveUnitPrice())
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := NewCart(42)
	line := c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")

	c.RemoveItem(line.ID)
	assert.True(t, c.IsEmpty())

	// Removing again is a no-op
	c.RemoveItem(line.ID)
	c.RemoveItem("no-such-line")
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantity(t *testing.T) {
	c := NewCart(42)
	line := c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")

	c.UpdateQuantity(line.ID, 5)
	assert.Equal(t, 5, c.ItemCount())
	assert.Equal(t, burgerPrice*5, c.Subtotal())

	// Zero quantity removes the line
	c.UpdateQuantity(line.ID, 0)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	c := NewCart(42)
	line := c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")

	c.UpdateQuantity(line.ID, -3)
	assert.True(t, c.IsEmpty())
}

func TestEmptyCartTotals(t *testing.T) {
	c := NewCart(42)

	assert.Equal(t, int64(0), c.Subtotal())
	assert.Equal(t, 0, c.ItemCount())
}

func TestClear(t *testing.T) {
	c := NewCart(42)
	c.AddItem(burgerID, "Classic Burger", burgerPrice, nil, "")
	c.AddItem(2, "Fries", 4000, nil, "extra crispy")

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Subtotal())
}

func TestInstructionsTravelWithTheLine(t *testing.T) {
	c := NewCart(42)
	line := c.AddItem(2, "Fries", 4000, nil, "no salt")

	assert.Equal(t, "no salt", c.FindLine(line.ID).Instructions)
}
