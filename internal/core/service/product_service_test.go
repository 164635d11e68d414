package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

func newTestProducts(products ...domain.Product) (*ProductService, *stubProductRepo, *stubProductCache, *stubImageStore) {
	repo := newStubProductRepo(products...)
	cache := &stubProductCache{}
	images := &stubImageStore{}
	svc := NewProductService(repo, cache, images, zerolog.Nop())
	return svc, repo, cache, images
}

func TestProductService_Featured_CacheMissPopulates(t *testing.T) {
	svc, repo, cache, _ := newTestProducts(
		domain.Product{ID: "p1", Name: "Mug", IsFeatured: true},
		domain.Product{ID: "p2", Name: "Shirt"},
	)

	products, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("unexpected featured set %+v", products)
	}
	if repo.featured != 1 {
		t.Fatalf("expected one db read, got %d", repo.featured)
	}
	if !cache.warm || cache.sets != 1 {
		t.Fatalf("expected cache populated after miss")
	}
}

func TestProductService_Featured_CacheHitSkipsDB(t *testing.T) {
	svc, repo, cache, _ := newTestProducts()
	cache.warm = true
	cache.cached = []domain.Product{{ID: "p9", Name: "Cached"}}

	products, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p9" {
		t.Fatalf("expected cached products, got %+v", products)
	}
	if repo.featured != 0 {
		t.Fatalf("db must not be read on a cache hit")
	}
}

func TestProductService_Create_UploadsImage(t *testing.T) {
	svc, repo, _, images := newTestProducts()

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Poster", Description: "A4 print", Price: 9.99, Category: "decor",
		Image: "data:image/png;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(images.uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(images.uploads))
	}
	if created.Image == "" {
		t.Fatalf("expected hosted image url on product")
	}
	if _, ok := repo.products[created.ID]; !ok {
		t.Fatalf("product not persisted")
	}
}

func TestProductService_Create_NoImage(t *testing.T) {
	svc, _, _, images := newTestProducts()

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name: "Sticker", Price: 1.50, Category: "decor",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(images.uploads) != 0 || created.Image != "" {
		t.Fatalf("expected no upload for imageless product")
	}
}

func TestProductService_Delete_DestroysHostedImage(t *testing.T) {
	svc, repo, _, images := newTestProducts(domain.Product{
		ID: "p1", Name: "Mug",
		Image: "https://img.example.com/products/abc123.png",
	})

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(images.destroyed) != 1 || images.destroyed[0] != "products/abc123" {
		t.Fatalf("unexpected destroy calls %+v", images.destroyed)
	}
	if _, ok := repo.products["p1"]; ok {
		t.Fatalf("product not removed")
	}
}

func TestProductService_Delete_Missing(t *testing.T) {
	svc, _, _, _ := newTestProducts()

	if err := svc.Delete(context.Background(), "nope"); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_ToggleFeatured_FlipsAndRefreshesCache(t *testing.T) {
	svc, _, cache, _ := newTestProducts(domain.Product{ID: "p1", Name: "Mug"})

	updated, err := svc.ToggleFeatured(context.Background(), "p1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !updated.IsFeatured {
		t.Fatalf("expected product to become featured")
	}
	if !cache.warm || len(cache.cached) != 1 || cache.cached[0].ID != "p1" {
		t.Fatalf("expected cache refreshed with new featured set, got %+v", cache.cached)
	}

	updated, err = svc.ToggleFeatured(context.Background(), "p1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if updated.IsFeatured {
		t.Fatalf("expected second toggle to clear the flag")
	}
	if len(cache.cached) != 0 {
		t.Fatalf("expected cache refreshed to empty set, got %+v", cache.cached)
	}
}

func TestProductService_ImagePublicID(t *testing.T) {
	cases := map[string]string{
		"https://img.example.com/v12/products/abc123.png": "products/abc123",
		"https://img.example.com/products/noext":          "products/noext",
	}
	for url, want := range cases {
		if got := imagePublicID(url); got != want {
			t.Fatalf("imagePublicID(%q) = %q, want %q", url, got, want)
		}
	}
}
