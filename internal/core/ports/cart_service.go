package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

// CartLine is the typed projection returned by View: catalog fields merged
// with the stored quantity.
type CartLine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
}

// CartService mutates the cart embedded in an already-loaded user record.
// Every mutation writes the whole user document back and returns the
// resulting cart.
type CartService interface {
	AddItem(ctx context.Context, user *domain.User, productID string) ([]domain.CartItem, error)
	// RemoveItem removes one entry, or clears the whole cart when productID
	// is empty.
	RemoveItem(ctx context.Context, user *domain.User, productID string) ([]domain.CartItem, error)
	// SetQuantity sets an existing entry's quantity; 0 removes the entry.
	SetQuantity(ctx context.Context, user *domain.User, productID string, quantity int) ([]domain.CartItem, error)
	// View joins cart entries against the catalog. Entries whose product no
	// longer exists are silently dropped from the output.
	View(ctx context.Context, user *domain.User) ([]CartLine, error)
}
