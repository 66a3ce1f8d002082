// internal/infra/postgres/lead_store.postgres.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
)

type LeadStore struct {
	db *sql.DB
}

func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

const leadColumns = `id, name, phone, service, address, source, status, remarks,
	assigned_to, created_by, created_at, updated_at`

func (s *LeadStore) CreateLead(ctx context.Context, l *lead.Lead) error {
	_, err := conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO leads (`+leadColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		l.ID, l.Name, l.Phone, l.Service, l.Address, l.Source, string(l.Status), l.Remarks,
		l.AssignedTo, l.CreatedBy, l.CreatedAt, l.UpdatedAt)
	return err
}

func (s *LeadStore) GetLeadByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	row := conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	return scanLead(row)
}

func (s *LeadStore) ListLeads(ctx context.Context, f lead.Filter) ([]*lead.Lead, error) {
	where, args := leadWhere(f)
	query := `SELECT ` + leadColumns + ` FROM leads` + where + ` ORDER BY created_at DESC, id`
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

	var result []*lead.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (s *LeadStore) UpdateLead(ctx context.Context, l *lead.Lead) error {
	res, err := conn(ctx, s.db).ExecContext(ctx, `
		UPDATE leads SET
			name = $2, phone = $3, service = $4, address = $5, source = $6,
			status = $7, remarks = $8, assigned_to = $9, updated_at = $10
		WHERE id = $1`,
		l.ID, l.Name, l.Phone, l.Service, l.Address, l.Source,
		string(l.Status), l.Remarks, l.AssignedTo, l.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res, domainErr.ErrLeadNotFound)
}

func (s *LeadStore) DeleteLead(ctx context.Context, id uuid.UUID) error {
	res, err := conn(ctx, s.db).ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domainErr.ErrLeadNotFound)
}

// leadWhere compiles lead.Filter to SQL. The ownership clauses join the
// accounts table the same way the in-process oracle resolves them; a
// dangling reference simply fails the join and drops out.
func leadWhere(f lead.Filter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.AssignedTo != nil {
		clauses = append(clauses, "assigned_to = "+arg(*f.AssignedTo))
	}
	if f.CreatedBy != nil {
		clauses = append(clauses, "created_by = "+arg(*f.CreatedBy))
	}
	if f.OwnedBy != nil {
		p := arg(*f.OwnedBy)
		clauses = append(clauses, "(assigned_to = "+p+" OR created_by = "+p+")")
	}
	if f.TeamHeadID != nil {
		p := arg(*f.TeamHeadID)
		clauses = append(clauses, `COALESCE(assigned_to, created_by) IN (
			SELECT id FROM accounts WHERE id = `+p+` OR team_head_id = `+p+`)`)
	}
	if f.ExcludeAdminOwned {
		clauses = append(clauses, `created_by NOT IN (SELECT id FROM accounts WHERE role = 'admin')`)
		clauses = append(clauses, `(assigned_to IS NULL OR assigned_to NOT IN (SELECT id FROM accounts WHERE role = 'admin'))`)
	}
	if f.Status != nil {
		clauses = append(clauses, "status = "+arg(string(*f.Status)))
	}
	if f.CreatedFrom != nil {
		clauses = append(clauses, "created_at >= "+arg(*f.CreatedFrom))
	}
	if f.CreatedTo != nil {
		clauses = append(clauses, "created_at <= "+arg(*f.CreatedTo))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanLead(row rowScanner) (*lead.Lead, error) {
	var l lead.Lead
	var statusStr string
	var assignedTo uuid.NullUUID

	err := row.Scan(&l.ID, &l.Name, &l.Phone, &l.Service, &l.Address, &l.Source,
		&statusStr, &l.Remarks, &assignedTo, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainErr.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	l.Status = lead.Status(statusStr)
	if assignedTo.Valid {
		id := assignedTo.UUID
		l.AssignedTo = &id
	}
	return &l, nil
}
