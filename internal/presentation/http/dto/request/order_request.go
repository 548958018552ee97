package request

import "encoding/json"

// OrderItemRequest is one line on an order
type OrderItemRequest struct {
	MenuItemID *string         `json:"menu_item_id" binding:"omitempty,uuid"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
	UnitPrice  float64         `json:"unit_price" binding:"omitempty,min=0"`
	Notes      string          `json:"notes"`
	Modifiers  json.RawMessage `json:"modifiers"`
}

// CreateOrderRequest opens a new order
type CreateOrderRequest struct {
	TableID *string            `json:"table_id" binding:"omitempty,uuid"`
	Channel string             `json:"channel" binding:"omitempty,oneof=dine_in takeaway delivery"`
	Guests  int                `json:"guests" binding:"omitempty,min=0"`
	Note    string             `json:"note"`
	Tax     float64            `json:"tax" binding:"omitempty,min=0"`
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest edits an open order. Omitted fields are unchanged;
// when items are present they replace the whole line set.
type UpdateOrderRequest struct {
	TableID *string            `json:"table_id" binding:"omitempty,uuid"`
	Guests  *int               `json:"guests" binding:"omitempty,min=0"`
	Note    *string            `json:"note"`
	Tax     *float64           `json:"tax" binding:"omitempty,min=0"`
	Items   []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}
