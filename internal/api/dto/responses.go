package dto

import (
	"math"

	"github.com/splitcheck/splitcheck-backend/internal/domain/settle"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// PersonResponse is a participant in API responses.
type PersonResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemResponse is a ledger item in API responses.
type ItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// SessionResponse is the full wizard snapshot.
type SessionResponse struct {
	ID           string                        `json:"id"`
	Stage        string                        `json:"stage"`
	People       []PersonResponse              `json:"people"`
	Items        []ItemResponse                `json:"items"`
	Splits       map[string]map[string]float64 `json:"splits"`
	Tip          float64                       `json:"tip"`
	ItemsTotal   float64                       `json:"items_total"`
	TotalWithTip float64                       `json:"total_with_tip"`
}

// AdjustSplitResponse reports the outcome of a split adjustment.
// Applied is false when the item id did not exist (a no-op, not an
// error).
type AdjustSplitResponse struct {
	ItemID        string  `json:"item_id"`
	PersonID      string  `json:"person_id"`
	Applied       bool    `json:"applied"`
	Quantity      float64 `json:"quantity"`
	AssignedTotal float64 `json:"assigned_total"`
	Remaining     float64 `json:"remaining"`
	FullyAssigned bool    `json:"fully_assigned"`
}

// ShareItemResponse is one item on a person's breakdown.
type ShareItemResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

// ShareResponse is one person's settlement.
type ShareResponse struct {
	PersonID string              `json:"person_id"`
	Name     string              `json:"name"`
	Subtotal float64             `json:"subtotal"`
	Total    float64             `json:"total"`
	Items    []ShareItemResponse `json:"items"`
}

// SummaryResponse is the rendered settlement.
type SummaryResponse struct {
	ItemsTotal   float64         `json:"items_total"`
	Tip          float64         `json:"tip"`
	TotalWithTip float64         `json:"total_with_tip"`
	TipFactor    float64         `json:"tip_factor"`
	Shares       []ShareResponse `json:"shares"`
}

// ShareTextResponse wraps the plain-text export.
type ShareTextResponse struct {
	Text string `json:"text"`
}

// NewSessionResponse builds a snapshot from a session. Totals are
// rounded to cents for display.
func NewSessionResponse(s *session.Session) SessionResponse {
	people := make([]PersonResponse, len(s.People))
	for i, p := range s.People {
		people[i] = PersonResponse{ID: p.ID, Name: p.Name}
	}

	ledgerItems := s.Items.Items()
	items := make([]ItemResponse, len(ledgerItems))
	for i, item := range ledgerItems {
		items[i] = ItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	splits := make(map[string]map[string]float64, len(s.Splits))
	for itemID, people := range s.Splits {
		entry := make(map[string]float64, len(people))
		for personID, qty := range people {
			entry[personID] = qty
		}
		splits[itemID] = entry
	}

	itemsTotal := s.Items.Total()

	return SessionResponse{
		ID:           s.ID,
		Stage:        string(s.Stage),
		People:       people,
		Items:        items,
		Splits:       splits,
		Tip:          roundToCents(s.Tip),
		ItemsTotal:   roundToCents(itemsTotal),
		TotalWithTip: roundToCents(itemsTotal + s.Tip),
	}
}

// NewSummaryResponse builds the settlement payload.
func NewSummaryResponse(result settle.Settlement) SummaryResponse {
	shares := make([]ShareResponse, len(result.Shares))
	for i, share := range result.Shares {
		items := make([]ShareItemResponse, len(share.Items))
		for j, item := range share.Items {
			items[j] = ShareItemResponse{
				ItemID:    item.ItemID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Amount:    item.Amount,
			}
		}
		shares[i] = ShareResponse{
			PersonID: share.PersonID,
			Name:     share.Name,
			Subtotal: share.Subtotal,
			Total:    share.Total,
			Items:    items,
		}
	}

	return SummaryResponse{
		ItemsTotal:   result.ItemsTotal,
		Tip:          result.Tip,
		TotalWithTip: result.TotalWithTip,
		TipFactor:    result.TipFactor,
		Shares:       shares,
	}
}

// roundToCents rounds a float to 2 decimal places.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
