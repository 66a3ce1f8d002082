// internal/domain/product/product.domain.go
package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOutOfStock Status = "out-of-stock"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusOutOfStock:
		return true
	}
	return false
}

// ImageRef points at an asset held by the external asset store.
type ImageRef struct {
	URL      string
	PublicID string
}

// DefaultImage is the placeholder assigned when a product carries no
// images. Its asset is shared and must never be released.
var DefaultImage = ImageRef{
	URL:      "https://media.istockphoto.com/id/1778918997/photo/background-of-a-large-group-of-assorted-capsules-pills-and-blisters.jpg",
	PublicID: "default_product_image",
}

// Product is a sellable item.
//
// Invariants: OfferPrice, when set, never exceeds Price; Slug is always
// derived from the current Name.
type Product struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	OfferPrice  *decimal.Decimal
	Images      []ImageRef
	Category    string
	Stock       int
	Status      Status
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	OfferPrice  *decimal.Decimal
	Images      []ImageRef
	Category    string
	Stock       int
	Status      Status
}

// New validates params and builds a product with a derived slug.
func New(p NewParams, createdBy uuid.UUID, now time.Time) (*Product, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, domainErr.Validation("product name is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return nil, domainErr.Validation("description is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return nil, domainErr.Validation("category is required")
	}
	if p.Price.IsNegative() {
		return nil, domainErr.Validation("price cannot be negative")
	}
	if err := ValidateOfferPrice(p.Price, p.OfferPrice); err != nil {
		return nil, err
	}
	if p.Stock < 0 {
		return nil, domainErr.Validation("stock cannot be negative")
	}
	status := p.Status
	if status == "" {
		status = StatusActive
	}
	if !ValidStatus(status) {
		return nil, domainErr.Validation("invalid product status %q", status)
	}
	images := p.Images
	if len(images) == 0 {
		images = []ImageRef{DefaultImage}
	}

	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: strings.TrimSpace(p.Description),
		Price:       p.Price,
		OfferPrice:  p.OfferPrice,
		Images:      images,
		Category:    strings.TrimSpace(p.Category),
		Stock:       p.Stock,
		Status:      status,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rename changes the name and recomputes the slug; no other field moves.
func (p *Product) Rename(name string, now time.Time) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return domainErr.Validation("product name is required")
	}
	p.Name = n
	p.Slug = slug.Make(n)
	p.UpdatedAt = now
	return nil
}

// EffectivePrice is the price a new order snapshots: the offer price
// when one is set, the main price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.Price
}

// ReleasableAssets returns the image asset ids that belong exclusively
// to this product, i.e. everything except the shared default image.
func (p *Product) ReleasableAssets() []string {
	var ids []string
	for _, img := range p.Images {
		if img.PublicID != "" && img.PublicID != DefaultImage.PublicID {
			ids = append(ids, img.PublicID)
		}
	}
	return ids
}

// ValidateOfferPrice enforces offer <= price.
func ValidateOfferPrice(price decimal.Decimal, offer *decimal.Decimal) error {
	if offer == nil {
		return nil
	}
	if offer.IsNegative() {
		return domainErr.Validation("offer price cannot be negative")
	}
	if offer.GreaterThan(price) {
		return domainErr.Validation("offer price cannot be greater than main price")
	}
	return nil
}
