// internal/domain/product/filter.domain.go
package product

// Filter is the list predicate for products. Catalog visibility is not
// role-scoped; every operating role sees the full catalog.
type Filter struct {
	Status   *Status
	Category string

	Page  int
	Limit int
}

func (f Filter) Matches(p *Product) bool {
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}
