// Package ledger holds the canonical list of receipt line items.
//
// Items are identified by opaque ids and carry a quantity and a unit
// price. All numeric edits are coerced into the valid range (negative,
// NaN and infinite values clamp to 0), so ledger operations never fail.
package ledger

import (
	"math"

	"github.com/google/uuid"
)

// Placeholder values for manually added items.
const (
	defaultName     = "Нова позиція"
	defaultQuantity = 1
)

// Item is a single line item on the receipt.
type Item struct {
	ID        string
	Name      string
	Quantity  float64
	UnitPrice float64
}

// Patch describes a partial update to an item. Nil fields are left
// untouched.
type Patch struct {
	Name      *string
	Quantity  *float64
	UnitPrice *float64
}

// Ledger is an ordered collection of items.
type Ledger struct {
	items []Item
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Add appends a new item with placeholder values and returns it.
func (l *Ledger) Add() Item {
	item := Item{
		ID:       uuid.NewString(),
		Name:     defaultName,
		Quantity: defaultQuantity,
	}
	l.items = append(l.items, item)
	return item
}

// AddItem appends an item with the given fields, assigning a fresh id.
// Quantity and price are clamped to the valid range.
func (l *Ledger) AddItem(name string, quantity, unitPrice float64) Item {
	item := Item{
		ID:        uuid.NewString(),
		Name:      name,
		Quantity:  clamp(quantity),
		UnitPrice: clamp(unitPrice),
	}
	l.items = append(l.items, item)
	return item
}

// Replace swaps the entire item list, e.g. after receipt recognition.
// Incoming quantities and prices are clamped.
func (l *Ledger) Replace(items []Item) {
	l.items = make([]Item, len(items))
	for i, item := range items {
		item.Quantity = clamp(item.Quantity)
		item.UnitPrice = clamp(item.UnitPrice)
		l.items[i] = item
	}
}

// Update applies a patch to the item with the given id. It reports
// whether the item was found.
func (l *Ledger) Update(id string, patch Patch) (Item, bool) {
	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			l.items[i].Name = *patch.Name
		}
		if patch.Quantity != nil {
			l.items[i].Quantity = clamp(*patch.Quantity)
		}
		if patch.UnitPrice != nil {
			l.items[i].UnitPrice = clamp(*patch.UnitPrice)
		}
		return l.items[i], true
	}
	return Item{}, false
}

// Remove deletes the item with the given id and reports whether it
// existed. The caller is responsible for cascading the removal into
// any allocation map that references the item.
func (l *Ledger) Remove(id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the item with the given id.
func (l *Ledger) Get(id string) (Item, bool) {
	for _, item := range l.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the item list in insertion order.
func (l *Ledger) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Total returns the grand total, sum of quantity × unit price.
func (l *Ledger) Total() float64 {
	var total float64
	for _, item := range l.items {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

// Clear removes all items.
func (l *Ledger) Clear() {
	l.items = nil
}

// clamp coerces invalid numeric input to 0.
func clamp(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
