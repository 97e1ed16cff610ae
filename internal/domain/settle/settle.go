// Package settle combines the ledger, the allocation map and the tip
// into per-person totals.
//
// The tip is distributed proportionally: every subtotal is scaled by
// totalWithTip / itemsTotal, so a person's tip share follows their
// share of the bill and someone with no items owes nothing. Amounts
// are computed at full precision and rounded to cents only on the way
// out.
package settle

import (
	"fmt"
	"math"
	"strings"

	"github.com/splitcheck/splitcheck-backend/internal/domain/ledger"
	"github.com/splitcheck/splitcheck-backend/internal/domain/split"
)

const shareHeader = "🧾 Підсумок рахунку (з чайовими):"

// Person is a settlement participant.
type Person struct {
	ID   string
	Name string
}

// ItemShare is one item on a person's breakdown, annotated with the
// quantity that person took.
type ItemShare struct {
	ItemID    string
	Name      string
	Quantity  float64
	UnitPrice float64
	Amount    float64
}

// PersonShare is the settlement for one participant.
type PersonShare struct {
	PersonID string
	Name     string
	Subtotal float64
	Total    float64
	Items    []ItemShare
}

// Settlement is the complete bill outcome.
type Settlement struct {
	ItemsTotal   float64
	Tip          float64
	TotalWithTip float64
	TipFactor    float64
	// Shares lists participants in input order, omitting anyone whose
	// total is zero.
	Shares []PersonShare
}

// Compute builds the settlement for the given session slice.
func Compute(people []Person, items []ledger.Item, assignments split.Assignments, tipAmount float64) Settlement {
	var itemsTotal float64
	for _, item := range items {
		itemsTotal += item.Quantity * item.UnitPrice
	}

	totalWithTip := itemsTotal + tipAmount

	// Guard division by zero: with nothing to scale the tip is
	// unrealizable and the factor stays 1.
	tipFactor := 1.0
	if itemsTotal > 0 {
		tipFactor = totalWithTip / itemsTotal
	}

	s := Settlement{
		ItemsTotal:   roundToCents(itemsTotal),
		Tip:          roundToCents(tipAmount),
		TotalWithTip: roundToCents(totalWithTip),
		TipFactor:    tipFactor,
	}

	for _, person := range people {
		var subtotal float64
		var shares []ItemShare
		for _, item := range items {
			qty := assignments.Get(item.ID, person.ID)
			if qty <= 0 {
				continue
			}
			amount := qty * item.UnitPrice
			subtotal += amount
			shares = append(shares, ItemShare{
				ItemID:    item.ID,
				Name:      item.Name,
				Quantity:  qty,
				UnitPrice: item.UnitPrice,
				Amount:    roundToCents(amount),
			})
		}

		total := subtotal * tipFactor
		if total == 0 {
			continue
		}

		s.Shares = append(s.Shares, PersonShare{
			PersonID: person.ID,
			Name:     person.Name,
			Subtotal: roundToCents(subtotal),
			Total:    roundToCents(total),
			Items:    shares,
		})
	}

	return s
}

// ShareText renders the settlement as a plain-text summary, one line
// per participant who owes something.
func (s Settlement) ShareText() string {
	lines := make([]string, 0, len(s.Shares)+1)
	lines = append(lines, shareHeader)
	for _, share := range s.Shares {
		lines = append(lines, fmt.Sprintf("%s: %.2f", share.Name, share.Total))
	}
	return strings.Join(lines, "\n")
}

// roundToCents rounds a float to 2 decimal places.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
