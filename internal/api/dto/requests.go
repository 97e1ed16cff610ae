package dto

// AddPersonRequest is the body for adding a participant.
type AddPersonRequest struct {
	Name string `json:"name"`
}

// AddItemRequest is the body for manually adding an item. All fields
// are optional; omitted fields get the ledger's placeholder values.
type AddItemRequest struct {
	Name      *string  `json:"name"`
	Quantity  *float64 `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

// UpdateItemRequest is the body for patching an item. Nil fields are
// left untouched; numeric edits are clamped, never rejected.
type UpdateItemRequest struct {
	Name      *string  `json:"name"`
	Quantity  *float64 `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

// ReceiptRequest carries a base64-encoded receipt photo. A data-URL
// prefix (data:image/jpeg;base64,...) is tolerated.
type ReceiptRequest struct {
	Image string `json:"image"`
}

// Tip selection modes.
const (
	TipModePercent = "percent"
	TipModeRound   = "round"
	TipModeCustom  = "custom"
	TipModeNone    = "none"
)

// TipRequest selects the session tip. Modes are mutually exclusive;
// every request overwrites the previous selection.
type TipRequest struct {
	Mode    string   `json:"mode"`
	Percent *float64 `json:"percent"`
	Amount  *float64 `json:"amount"`
}

// AdjustSplitRequest changes a participant's share of an item.
type AdjustSplitRequest struct {
	ItemID   string  `json:"item_id"`
	PersonID string  `json:"person_id"`
	Delta    float64 `json:"delta"`
}
