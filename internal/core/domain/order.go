package domain

import "time"

// OrderItem is one purchased line, priced in integer cents as it was at
// checkout time.
type OrderItem struct {
	ProductID  string `json:"product_id"`
	Quantity   int64  `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

// Order is the immutable record of a confirmed payment. It is built from the
// provider session's metadata snapshot, never from live cart or catalog
// state, so prices stay locked at checkout time.
type Order struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	Items             []OrderItem `json:"items"`
	TotalAmount       int64       `json:"total_amount"`
	ProviderSessionID string      `json:"provider_session_id"`
	CreatedAt         time.Time   `json:"created_at"`
}
