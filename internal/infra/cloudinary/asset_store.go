// internal/infra/cloudinary/asset_store.go
package cloudinary

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// AssetStore releases product images held in Cloudinary. Uploads happen
// at the edge (the HTTP layer or an admin tool); the engine only ever
// destroys assets it stops referencing.
type AssetStore struct {
	client *cloudinary.Cloudinary
}

// New connects using a cloudinary:// URL.
func New(cloudinaryURL string) (*AssetStore, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &AssetStore{client: client}, nil
}

func (s *AssetStore) Release(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy asset %s: %w", publicID, err)
	}
	return nil
}
