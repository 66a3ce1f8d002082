// internal/infra/postgres/account_store.postgres.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

const accountColumns = `id, name, email, phone, role, password_hash, status, team_head_id,
	last_login_at, last_login_ip, last_login_user_agent, last_login_outcome, created_at, updated_at`

func (s *AccountStore) CreateAccount(ctx context.Context, a *account.Account) error {
	ll := lastLoginArgs(a.LastLogin)
	_, err := conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		a.ID, a.Name, a.Email, a.Phone, string(a.Role), a.PasswordHash, string(a.Status),
		a.TeamHeadID, ll.At, ll.IP, ll.UA, ll.Outcome, a.CreatedAt, a.UpdatedAt)
	return mapAccountErr(err)
}

func (s *AccountStore) GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	row := conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (s *AccountStore) GetAccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	row := conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

func (s *AccountStore) ListAccounts(ctx context.Context, f account.Filter) ([]*account.Account, error) {
	where, args := accountWhere(f)
	rows, err := conn(ctx, s.db).QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts`+where+` ORDER BY created_at DESC, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (s *AccountStore) CountAccounts(ctx context.Context, f account.Filter) (int64, error) {
	where, args := accountWhere(f)
	var n int64
	err := conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts`+where, args...).Scan(&n)
	return n, err
}

func (s *AccountStore) UpdateAccount(ctx context.Context, a *account.Account) error {
	ll := lastLoginArgs(a.LastLogin)
	res, err := conn(ctx, s.db).ExecContext(ctx, `
		UPDATE accounts SET
			name = $2, email = $3, phone = $4, role = $5, password_hash = $6,
			status = $7, team_head_id = $8,
			last_login_at = $9, last_login_ip = $10, last_login_user_agent = $11,
			last_login_outcome = $12, updated_at = $13
		WHERE id = $1`,
		a.ID, a.Name, a.Email, a.Phone, string(a.Role), a.PasswordHash, string(a.Status),
		a.TeamHeadID, ll.At, ll.IP, ll.UA, ll.Outcome, a.UpdatedAt)
	if err != nil {
		return mapAccountErr(err)
	}
	return requireRow(res, domainErr.ErrAccountNotFound)
}

func (s *AccountStore) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	res, err := conn(ctx, s.db).ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domainErr.ErrAccountNotFound)
}

// accountWhere compiles the same predicate account.Filter.Matches
// applies in-process.
func accountWhere(f account.Filter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Roles) > 0 {
		clauses = append(clauses, "role = ANY("+arg(pq.Array(roleStrings(f.Roles)))+")")
	}
	if len(f.ExcludeRoles) > 0 {
		clauses = append(clauses, "NOT (role = ANY("+arg(pq.Array(roleStrings(f.ExcludeRoles)))+"))")
	}
	if f.Status != nil {
		clauses = append(clauses, "status = "+arg(string(*f.Status)))
	}
	if f.TeamHeadID != nil {
		clauses = append(clauses, "team_head_id = "+arg(*f.TeamHeadID))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func roleStrings(rs []role.Role) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*account.Account, error) {
	var a account.Account
	var roleStr, statusStr string
	var teamHeadID uuid.NullUUID
	var loginAt sql.NullTime
	var loginIP, loginUA, loginOutcome sql.NullString

	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &roleStr, &a.PasswordHash, &statusStr,
		&teamHeadID, &loginAt, &loginIP, &loginUA, &loginOutcome, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainErr.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	a.Role = role.Role(roleStr)
	a.Status = account.Status(statusStr)
	if teamHeadID.Valid {
		id := teamHeadID.UUID
		a.TeamHeadID = &id
	}
	if loginAt.Valid {
		a.LastLogin = &account.LastLogin{
			IP:        loginIP.String,
			UserAgent: loginUA.String,
			At:        loginAt.Time,
			Outcome:   account.LoginOutcome(loginOutcome.String),
		}
	}
	return &a, nil
}

// lastLoginArgs flattens the optional LastLogin into the four columns.
func lastLoginArgs(ll *account.LastLogin) lastLoginCols {
	if ll == nil {
		return lastLoginCols{}
	}
	return lastLoginCols{
		At:      sql.NullTime{Time: ll.At, Valid: true},
		IP:      sql.NullString{String: ll.IP, Valid: true},
		UA:      sql.NullString{String: ll.UserAgent, Valid: true},
		Outcome: sql.NullString{String: string(ll.Outcome), Valid: true},
	}
}

type lastLoginCols struct {
	At      sql.NullTime
	IP      sql.NullString
	UA      sql.NullString
	Outcome sql.NullString
}

func mapAccountErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domainErr.ErrEmailAlreadyExists
	}
	return err
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
