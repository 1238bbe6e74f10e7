package clientstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestCartStore_AddItemMergesByMedicine(t *testing.T) {
	cart := NewCartStore()

	cart.AddItem(CartItem{MedicineID: "med-1", Name: "Paracetamol", Price: 9.99, Quantity: 2})
	cart.AddItem(CartItem{MedicineID: "med-2", Name: "Ibuprofen", Price: 4.99, Quantity: 1})
	cart.AddItem(CartItem{MedicineID: "med-1", Name: "Paracetamol", Price: 9.99, Quantity: 3})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 6, cart.TotalItems())
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(CartItem{MedicineID: "med-1", Quantity: 2})

	cart.UpdateQuantity("med-1", 7)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	// Zero removes the line.
	cart.UpdateQuantity("med-1", 0)
	assert.Empty(t, cart.Items)
}

func TestCartStore_RemoveAbsentIsNoop(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(CartItem{MedicineID: "med-1", Quantity: 1})

	cart.RemoveItem("nope")
	assert.Len(t, cart.Items, 1)

	cart.UpdateQuantity("nope", 5)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartStore_TotalPriceUsesDiscount(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(CartItem{MedicineID: "med-1", Price: 10.00, DiscountPrice: floatPtr(8.00), Quantity: 2})
	cart.AddItem(CartItem{MedicineID: "med-2", Price: 5.00, Quantity: 3})

	assert.InDelta(t, 8.00*2+5.00*3, cart.TotalPrice(), 0.001)
}

func TestCartStore_Clear(t *testing.T) {
	cart := NewCartStore()
	cart.AddItem(CartItem{MedicineID: "med-1", Quantity: 2})

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalItems())
	assert.Zero(t, cart.TotalPrice())
}

func TestCartStore_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	cart := NewCartStore()
	cart.AddItem(CartItem{MedicineID: "med-1", Name: "Paracetamol", Price: 9.99, Quantity: 2})
	require.NoError(t, Save(path, cart))

	restored := NewCartStore()
	require.NoError(t, Load(path, restored))
	require.Len(t, restored.Items, 1)
	assert.Equal(t, "med-1", restored.Items[0].MedicineID)
	assert.Equal(t, 2, restored.Items[0].Quantity)
}

func TestLoadMissingFileIsNoop(t *testing.T) {
	cart := NewCartStore()
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "missing.json"), cart))
	assert.Empty(t, cart.Items)
}
