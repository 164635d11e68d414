package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// CartItem is a single line in a user's embedded cart: a product reference
// plus the quantity the user wants. Quantity stays >= 1 while the item is in
// the cart; setting it to 0 removes the entry.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// User models a storefront account. The cart lives inside the user document
// and is written back whole on every cart mutation.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CartItems    []CartItem `json:"cart_items"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user may reach admin-only routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
