// Package split maintains the allocation of item quantities to people.
//
// Assignments are a two-level map, item id → person id → quantity.
// Entries never hold a zero: an allocation reduced to exactly 0 is
// deleted, so absence always means zero. The invariant kept across all
// adjustments is conservation: the quantities assigned for an item
// never exceed the item's purchased quantity.
package split

import "github.com/splitcheck/splitcheck-backend/internal/domain/ledger"

// Assignments maps item id → person id → assigned quantity.
type Assignments map[string]map[string]float64

// New creates an empty allocation map.
func New() Assignments {
	return make(Assignments)
}

// Adjust changes the quantity of an item assigned to a person by delta
// and returns the resulting quantity. The result is floored at 0 and
// capped at the headroom the item still has after everyone else's
// assignments, so over-allocation is clamped rather than rejected.
func (a Assignments) Adjust(itemID, personID string, delta, itemQuantity float64) float64 {
	current := a.Get(itemID, personID)
	others := a.AssignedTotal(itemID) - current

	proposed := current + delta
	if proposed < 0 {
		proposed = 0
	}
	if others+proposed > itemQuantity {
		proposed = itemQuantity - others
		// Quantity edits can shrink an item below what is already
		// assigned to others; never store a negative share.
		if proposed < 0 {
			proposed = 0
		}
	}

	a.set(itemID, personID, proposed)
	return proposed
}

// Get returns the quantity of an item assigned to a person, 0 when no
// entry exists.
func (a Assignments) Get(itemID, personID string) float64 {
	return a[itemID][personID]
}

// AssignedTotal returns the sum of all assignments for an item.
func (a Assignments) AssignedTotal(itemID string) float64 {
	var total float64
	for _, qty := range a[itemID] {
		total += qty
	}
	return total
}

// Remaining returns the unassigned headroom for an item.
func (a Assignments) Remaining(itemID string, itemQuantity float64) float64 {
	return itemQuantity - a.AssignedTotal(itemID)
}

// FullyAssigned reports whether every item has at least some quantity
// assigned. This intentionally does not require the full quantity to be
// assigned; an item split 1-of-3 still counts.
func (a Assignments) FullyAssigned(items []ledger.Item) bool {
	for _, item := range items {
		if a.AssignedTotal(item.ID) <= 0 {
			return false
		}
	}
	return true
}

// RemoveItem drops all assignments for an item, e.g. when the item is
// deleted from the ledger.
func (a Assignments) RemoveItem(itemID string) {
	delete(a, itemID)
}

// RemovePerson drops a person's assignments from every item.
func (a Assignments) RemovePerson(personID string) {
	for itemID, people := range a {
		delete(people, personID)
		if len(people) == 0 {
			delete(a, itemID)
		}
	}
}

// set stores a quantity, deleting the entry when it is exactly 0 so
// that absence-is-zero holds.
func (a Assignments) set(itemID, personID string, qty float64) {
	if qty == 0 {
		people, ok := a[itemID]
		if !ok {
			return
		}
		delete(people, personID)
		if len(people) == 0 {
			delete(a, itemID)
		}
		return
	}
	if a[itemID] == nil {
		a[itemID] = make(map[string]float64)
	}
	a[itemID][personID] = qty
}
