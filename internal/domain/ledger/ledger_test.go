package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_UsesPlaceholders(t *testing.T) {
	l := New()

	item := l.Add()

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Нова позиція", item.Name)
	assert.Equal(t, 1.0, item.Quantity)
	assert.Equal(t, 0.0, item.UnitPrice)
	assert.Equal(t, 1, l.Len())
}

func TestAddItem_AssignsUniqueIDs(t *testing.T) {
	l := New()

	a := l.AddItem("Pizza", 2, 10)
	b := l.AddItem("Cola", 1, 2.5)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, l.Len())
}

func TestAddItem_ClampsInvalidNumbers(t *testing.T) {
	l := New()

	item := l.AddItem("Broken", -3, math.NaN())

	assert.Equal(t, 0.0, item.Quantity)
	assert.Equal(t, 0.0, item.UnitPrice)
}

func TestUpdate_PartialPatch(t *testing.T) {
	l := New()
	item := l.AddItem("Pizza", 2, 10)

	name := "Margherita"
	updated, ok := l.Update(item.ID, Patch{Name: &name})
	require.True(t, ok)

	assert.Equal(t, "Margherita", updated.Name)
	assert.Equal(t, 2.0, updated.Quantity)
	assert.Equal(t, 10.0, updated.UnitPrice)
}

func TestUpdate_ClampsNegativeQuantity(t *testing.T) {
	l := New()
	item := l.AddItem("Pizza", 2, 10)

	qty := -5.0
	updated, ok := l.Update(item.ID, Patch{Quantity: &qty})
	require.True(t, ok)

	assert.Equal(t, 0.0, updated.Quantity)
}

func TestUpdate_UnknownID(t *testing.T) {
	l := New()

	_, ok := l.Update("missing", Patch{})

	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	l := New()
	a := l.AddItem("Pizza", 2, 10)
	b := l.AddItem("Cola", 1, 2.5)

	assert.True(t, l.Remove(a.ID))
	assert.False(t, l.Remove(a.ID))

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
}

func TestTotal(t *testing.T) {
	l := New()
	l.AddItem("Pizza", 2, 10)
	l.AddItem("Cola", 3, 2.5)

	assert.InDelta(t, 27.50, l.Total(), 0.001)
}

func TestTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, New().Total())
}

func TestReplace_ClampsAndCopies(t *testing.T) {
	l := New()
	l.AddItem("Old", 1, 1)

	l.Replace([]Item{
		{ID: "a", Name: "Pizza", Quantity: 2, UnitPrice: 10},
		{ID: "b", Name: "Broken", Quantity: -1, UnitPrice: math.Inf(1)},
	})

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2.0, items[0].Quantity)
	assert.Equal(t, 0.0, items[1].Quantity)
	assert.Equal(t, 0.0, items[1].UnitPrice)
}
