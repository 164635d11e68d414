package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

const recommendedSampleSize = 3

// ProductService covers the catalog: admin CRUD, the redis-memoized featured
// list, random recommendations and category browsing. Image hosting is
// delegated to the ImageStore port.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.ProductCache
	images ports.ImageStore
	log    zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ports.ProductCache, images ports.ImageStore, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, images: images, log: log}
}

func (s *ProductService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Featured(ctx context.Context) ([]domain.Product, error) {
	cached, ok, err := s.cache.GetFeatured(ctx)
	if err != nil {
		// Cache trouble must not take the read path down.
		s.log.Warn().Err(err).Msg("featured cache read failed, falling back to db")
	} else if ok {
		return cached, nil
	}

	products, err := s.repo.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetFeatured(ctx, products); err != nil {
		s.log.Warn().Err(err).Msg("failed to populate featured cache")
	}
	return products, nil
}

func (s *ProductService) Recommended(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Sample(ctx, recommendedSampleSize)
}

func (s *ProductService) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	imageURL := ""
	if in.Image != "" {
		uploaded, err := s.images.Upload(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		imageURL = uploaded.URL
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       imageURL,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if product.Image != "" {
		publicID := imagePublicID(product.Image)
		if err := s.images.Destroy(ctx, publicID); err != nil {
			s.log.Warn().Err(err).Str("public_id", publicID).Msg("failed to destroy hosted image")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) ToggleFeatured(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.SetFeatured(ctx, id, !product.IsFeatured)
	if err != nil {
		return nil, err
	}

	// Any toggle invalidates the memoized featured list; rewrite it from the
	// source of truth. Best-effort: a cache failure does not undo the toggle.
	featured, err := s.repo.FindFeatured(ctx)
	if err == nil {
		if err := s.cache.SetFeatured(ctx, featured); err != nil {
			s.log.Warn().Err(err).Msg("failed to refresh featured cache")
		}
	} else {
		s.log.Warn().Err(err).Msg("failed to reload featured products for cache refresh")
	}

	return updated, nil
}

// imagePublicID extracts the image host's public id from a delivery URL:
// the last path segment with its extension stripped.
func imagePublicID(url string) string {
	segment := url
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	if i := strings.Index(segment, "."); i >= 0 {
		segment = segment[:i]
	}
	return "products/" + segment
}
