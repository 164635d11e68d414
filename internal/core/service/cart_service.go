package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

// CartService mutates the cart embedded in the user record. Every mutation
// is a read-modify-write of the whole document with no locking; concurrent
// requests for the same user can lose an update (last write wins), which is
// acceptable for cart state.
type CartService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCartService(users ports.UserRepository, products ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{users: users, products: products, log: log}
}

func (s *CartService) AddItem(ctx context.Context, user *domain.User, productID string) ([]domain.CartItem, error) {
	found := false
	for i := range user.CartItems {
		if user.CartItems[i].ProductID == productID {
			user.CartItems[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		user.CartItems = append(user.CartItems, domain.CartItem{ProductID: productID, Quantity: 1})
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.CartItems, nil
}

func (s *CartService) RemoveItem(ctx context.Context, user *domain.User, productID string) ([]domain.CartItem, error) {
	if productID == "" {
		user.CartItems = nil
	} else {
		kept := user.CartItems[:0]
		for _, item := range user.CartItems {
			if item.ProductID != productID {
				kept = append(kept, item)
			}
		}
		user.CartItems = kept
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.CartItems, nil
}

func (s *CartService) SetQuantity(ctx context.Context, user *domain.User, productID string, quantity int) ([]domain.CartItem, error) {
	idx := -1
	for i := range user.CartItems {
		if user.CartItems[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrCartItemNotFound
	}

	if quantity == 0 {
		user.CartItems = append(user.CartItems[:idx], user.CartItems[idx+1:]...)
	} else {
		user.CartItems[idx].Quantity = quantity
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.CartItems, nil
}

// View joins the cart against the catalog and merges catalog fields with the
// stored quantity. A cart entry whose product has been deleted since it was
// added simply does not appear in the output.
func (s *CartService) View(ctx context.Context, user *domain.User) ([]ports.CartLine, error) {
	if len(user.CartItems) == 0 {
		return []ports.CartLine{}, nil
	}

	ids := make([]string, 0, len(user.CartItems))
	for _, item := range user.CartItems {
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]ports.CartLine, 0, len(user.CartItems))
	for _, item := range user.CartItems {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, ports.CartLine{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
			Category:    p.Category,
			Quantity:    item.Quantity,
		})
	}
	return lines, nil
}
