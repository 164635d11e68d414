package ports

import "context"

// UploadedImage is the hosted result of an image upload.
type UploadedImage struct {
	URL      string
	PublicID string
}

// ImageStore abstracts the external image host (Cloudinary in production).
// Upload accepts a data URI or remote URL, as the host does.
type ImageStore interface {
	Upload(ctx context.Context, data string) (*UploadedImage, error)
	Destroy(ctx context.Context, publicID string) error
}
