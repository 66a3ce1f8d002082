// internal/infra/postgres/schema.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied at startup; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id                    UUID PRIMARY KEY,
		name                  TEXT NOT NULL,
		email                 TEXT NOT NULL UNIQUE,
		phone                 TEXT NOT NULL DEFAULT '',
		role                  TEXT NOT NULL,
		password_hash         TEXT NOT NULL DEFAULT '',
		status                TEXT NOT NULL,
		team_head_id          UUID,
		last_login_at         TIMESTAMPTZ,
		last_login_ip         TEXT,
		last_login_user_agent TEXT,
		last_login_outcome    TEXT,
		created_at            TIMESTAMPTZ NOT NULL,
		updated_at            TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_team_head ON accounts (team_head_id)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_role_status ON accounts (role, status)`,

	`CREATE TABLE IF NOT EXISTS leads (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		phone       TEXT NOT NULL,
		service     TEXT NOT NULL,
		address     TEXT NOT NULL DEFAULT '',
		source      TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL,
		remarks     TEXT NOT NULL DEFAULT '',
		assigned_to UUID,
		created_by  UUID NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_assigned_to ON leads (assigned_to)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads (status)`,

	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		slug        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		price       NUMERIC(12,2) NOT NULL,
		offer_price NUMERIC(12,2),
		images      JSONB NOT NULL DEFAULT '[]',
		category    TEXT NOT NULL,
		stock       INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL,
		created_by  UUID NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id                  UUID PRIMARY KEY,
		customer_name       TEXT NOT NULL,
		address             TEXT NOT NULL,
		pincode             TEXT NOT NULL,
		phone               TEXT NOT NULL,
		product_id          UUID NOT NULL,
		quantity            INTEGER NOT NULL,
		price_at_order_time NUMERIC(12,2) NOT NULL,
		total_amount        NUMERIC(12,2) NOT NULL,
		agent_id            UUID NOT NULL,
		awb                 TEXT NOT NULL DEFAULT '',
		courier_partner     TEXT NOT NULL DEFAULT '',
		order_status        TEXT NOT NULL,
		payment_status      TEXT NOT NULL,
		payment_mode        TEXT NOT NULL,
		deposited_amount    NUMERIC(12,2) NOT NULL DEFAULT 0,
		remaining_amount    NUMERIC(12,2) NOT NULL DEFAULT 0,
		transaction_id      TEXT NOT NULL DEFAULT '',
		remarks             TEXT NOT NULL DEFAULT '',
		created_at          TIMESTAMPTZ NOT NULL,
		updated_at          TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_agent ON orders (agent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (order_status)`,

	`CREATE TABLE IF NOT EXISTS order_tracking_logs (
		id       BIGSERIAL PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		status   TEXT NOT NULL,
		message  TEXT NOT NULL,
		at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_order ON order_tracking_logs (order_id)`,

	`CREATE TABLE IF NOT EXISTS audit_events (
		id         UUID PRIMARY KEY,
		actor_id   UUID,
		action     TEXT NOT NULL,
		target_id  UUID,
		metadata   JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_action ON audit_events (action)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
