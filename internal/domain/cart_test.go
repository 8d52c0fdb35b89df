package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddItemMergesSameLine(t *testing.T) {
	cart := NewCart(3)
	cart.AddItem(1, 1, "")
	cart.AddItem(1, 2, "")
	cart.AddItem(1, 1, "extra cheese")

	lines := cart.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "extra cheese", lines[1].SpecialInstructions)
}

func TestCart_AddItemIgnoresBadQuantity(t *testing.T) {
	cart := NewCart(3)
	cart.AddItem(1, 0, "")
	cart.AddItem(1, -2, "")
	assert.True(t, cart.Empty())
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart(3)
	cart.AddItem(1, 1, "")
	cart.AddItem(2, 1, "")
	cart.RemoveItem(1)

	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, uint64(2), lines[0].MenuItemID)
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := NewCart(3)
	cart.AddItem(1, 1, "")
	cart.UpdateQuantity(1, 5)
	assert.Equal(t, 5, cart.Lines()[0].Quantity)

	cart.UpdateQuantity(1, 0)
	assert.True(t, cart.Empty())
}

func TestCart_LinesIsACopy(t *testing.T) {
	cart := NewCart(3)
	cart.AddItem(1, 1, "")

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}
