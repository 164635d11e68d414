package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/modabay/storefront-api/internal/core/ports"
)

const uploadFolder = "products"

// CloudinaryStore implements ports.ImageStore against Cloudinary. Product
// images land in the "products" folder; delivery URLs embed the public id.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore builds a store from a CLOUDINARY_URL-style connection
// string.
func NewCloudinaryStore(url string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, data string) (*ports.UploadedImage, error) {
	res, err := s.cld.Upload.Upload(ctx, data, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	return &ports.UploadedImage{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}
