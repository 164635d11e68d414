package service

import (
	"context"
	"fmt"
	"time"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

// Map-backed stand-ins for the persistence and provider ports, shared by the
// service tests in this package.

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.CartItems = append([]domain.CartItem(nil), u.CartItems...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

type stubSessionStore struct {
	tokens map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{tokens: make(map[string]string)}
}

func (s *stubSessionStore) Put(_ context.Context, userID, refreshToken string, _ time.Duration) error {
	s.tokens[userID] = refreshToken
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, userID string) (string, error) {
	return s.tokens[userID], nil
}

func (s *stubSessionStore) Delete(_ context.Context, userID string) error {
	delete(s.tokens, userID)
	return nil
}

type stubProductRepo struct {
	products map[string]domain.Product
	featured int // FindFeatured call count
}

func newStubProductRepo(products ...domain.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[string]domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindFeatured(_ context.Context) ([]domain.Product, error) {
	r.featured++
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByCategory(_ context.Context, category string) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Sample(_ context.Context, n int) ([]domain.Product, error) {
	out := make([]domain.Product, 0, n)
	for _, p := range r.products {
		if len(out) == n {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	created := *product
	created.ID = fmt.Sprintf("prod_%d", len(r.products)+1)
	r.products[created.ID] = created
	return &created, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) SetFeatured(_ context.Context, id string, featured bool) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p.IsFeatured = featured
	r.products[id] = p
	return &p, nil
}

type stubProductCache struct {
	cached []domain.Product
	warm   bool
	sets   int
}

func (c *stubProductCache) GetFeatured(_ context.Context) ([]domain.Product, bool, error) {
	if !c.warm {
		return nil, false, nil
	}
	return c.cached, true, nil
}

func (c *stubProductCache) SetFeatured(_ context.Context, products []domain.Product) error {
	c.cached = products
	c.warm = true
	c.sets++
	return nil
}

type stubImageStore struct {
	uploads   []string
	destroyed []string
}

func (s *stubImageStore) Upload(_ context.Context, data string) (*ports.UploadedImage, error) {
	s.uploads = append(s.uploads, data)
	return &ports.UploadedImage{
		URL:      fmt.Sprintf("https://img.example.com/products/upload_%d.png", len(s.uploads)),
		PublicID: fmt.Sprintf("products/upload_%d", len(s.uploads)),
	}, nil
}

func (s *stubImageStore) Destroy(_ context.Context, publicID string) error {
	s.destroyed = append(s.destroyed, publicID)
	return nil
}

type stubCouponRepo struct {
	coupons map[string]*domain.Coupon // keyed by code
}

func newStubCouponRepo(coupons ...*domain.Coupon) *stubCouponRepo {
	r := &stubCouponRepo{coupons: make(map[string]*domain.Coupon)}
	for _, c := range coupons {
		r.coupons[c.Code] = c
	}
	return r
}

func (r *stubCouponRepo) FindActiveByUser(_ context.Context, userID string) (*domain.Coupon, error) {
	for _, c := range r.coupons {
		if c.UserID == userID && c.IsActive {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCouponNotFound
}

func (r *stubCouponRepo) FindActiveByCode(_ context.Context, code, userID string) (*domain.Coupon, error) {
	c, ok := r.coupons[code]
	if !ok || c.UserID != userID || !c.IsActive {
		return nil, domain.ErrCouponNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCouponRepo) Create(_ context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	created := *coupon
	created.ID = fmt.Sprintf("coupon_%d", len(r.coupons)+1)
	r.coupons[created.Code] = &created
	return &created, nil
}

func (r *stubCouponRepo) Deactivate(_ context.Context, code, userID string) error {
	c, ok := r.coupons[code]
	if !ok || c.UserID != userID {
		return domain.ErrCouponNotFound
	}
	c.IsActive = false
	return nil
}

type stubOrderRepo struct {
	orders []domain.Order
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	created := *order
	created.ID = fmt.Sprintf("order_%d", len(r.orders)+1)
	r.orders = append(r.orders, created)
	return &created, nil
}

func (r *stubOrderRepo) FindByUser(_ context.Context, userID string) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type stubProvider struct {
	sessions       map[string]*ports.ProviderSession
	createCalls    int
	discountCalls  int
	lastInput      ports.ProviderSessionInput
	lastDiscountID string
}

func newStubProvider() *stubProvider {
	return &stubProvider{sessions: make(map[string]*ports.ProviderSession)}
}

func (p *stubProvider) CreateSession(_ context.Context, in ports.ProviderSessionInput) (string, error) {
	p.createCalls++
	p.lastInput = in
	id := fmt.Sprintf("cs_test_%d", p.createCalls)
	var total int64
	for _, item := range in.LineItems {
		total += item.UnitAmount * item.Quantity
	}
	p.sessions[id] = &ports.ProviderSession{
		ID:            id,
		PaymentStatus: "unpaid",
		AmountTotal:   total,
		Metadata:      in.Metadata,
	}
	return id, nil
}

func (p *stubProvider) RetrieveSession(_ context.Context, id string) (*ports.ProviderSession, error) {
	s, ok := p.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return s, nil
}

func (p *stubProvider) CreateDiscount(_ context.Context, percentage int) (string, error) {
	p.discountCalls++
	p.lastDiscountID = fmt.Sprintf("disc_%d_pct_%d", p.discountCalls, percentage)
	return p.lastDiscountID, nil
}

// markPaid flips a stub session to paid so confirmation succeeds.
func (p *stubProvider) markPaid(id string) {
	if s, ok := p.sessions[id]; ok {
		s.PaymentStatus = ports.ProviderStatusPaid
	}
}
