// internal/infra/postgres/product_store.postgres.go
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
)

type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, slug, description, price, offer_price, images,
	category, stock, status, created_by, created_at, updated_at`

func (s *ProductStore) CreateProduct(ctx context.Context, p *product.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	_, err = conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.OfferPrice, images,
		p.Category, p.Stock, string(p.Status), p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	return mapProductErr(err)
}

func (s *ProductStore) GetProductByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (s *ProductStore) GetProductBySlug(ctx context.Context, slug string) (*product.Product, error) {
	row := conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	return scanProduct(row)
}

func (s *ProductStore) ListProducts(ctx context.Context, f product.Filter) ([]*product.Product, error) {
	var clauses []string
	var args []any
	if f.Status != nil {
		args = append(args, string(*f.Status))
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	query := `SELECT ` + productColumns + ` FROM products`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, (page-1)*f.Limit)
	}

	rows, err := conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *ProductStore) UpdateProduct(ctx context.Context, p *product.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	res, err := conn(ctx, s.db).ExecContext(ctx, `
		UPDATE products SET
			name = $2, slug = $3, description = $4, price = $5, offer_price = $6,
			images = $7, category = $8, stock = $9, status = $10, updated_at = $11
		WHERE id = $1`,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.OfferPrice,
		images, p.Category, p.Stock, string(p.Status), p.UpdatedAt)
	if err != nil {
		return mapProductErr(err)
	}
	return requireRow(res, domainErr.ErrProductNotFound)
}

func (s *ProductStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res, err := conn(ctx, s.db).ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domainErr.ErrProductNotFound)
}

func scanProduct(row rowScanner) (*product.Product, error) {
	var p product.Product
	var statusStr string
	var offer decimal.NullDecimal
	var images []byte

	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &offer, &images,
		&p.Category, &p.Stock, &statusStr, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainErr.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Status = product.Status(statusStr)
	if offer.Valid {
		d := offer.Decimal
		p.OfferPrice = &d
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func mapProductErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domainErr.ErrConflict
	}
	return err
}
