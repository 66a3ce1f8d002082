// internal/ports/assets/asset_store.go
package assets

import "context"

// AssetStore releases image assets the engine no longer references.
// The engine never uploads; it only decides WHICH asset ids to release
// when a product is deleted or replaces its images.
type AssetStore interface {
	Release(ctx context.Context, publicID string) error
}
