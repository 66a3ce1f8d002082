// internal/infra/postgres/order_store.postgres.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
)

type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

const orderColumns = `id, customer_name, address, pincode, phone, product_id, quantity,
	price_at_order_time, total_amount, agent_id, awb, courier_partner,
	order_status, payment_status, payment_mode, deposited_amount, remaining_amount,
	transaction_id, remarks, created_at, updated_at`

func (s *OrderStore) CreateOrder(ctx context.Context, o *order.Order) error {
	q := conn(ctx, s.db)
	_, err := q.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		o.ID, o.CustomerName, o.Address, o.Pincode, o.Phone, o.ProductID, o.Quantity,
		o.PriceAtOrderTime, o.TotalAmount, o.AgentID, o.AWB, o.CourierPartner,
		string(o.OrderStatus), string(o.PaymentStatus), string(o.PaymentMode),
		o.DepositedAmount, o.RemainingAmount, o.TransactionID, o.Remarks,
		o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return err
	}
	return s.insertTracking(ctx, q, o.ID, o.TrackingLogs)
}

func (s *OrderStore) GetOrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	q := conn(ctx, s.db)
	row := q.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadTracking(ctx, q, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderStore) ListOrders(ctx context.Context, f order.Filter) ([]*order.Order, int64, error) {
	q := conn(ctx, s.db)
	where, args := orderWhere(f)

	var total int64
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where + ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, (page-1)*f.Limit)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, o := range result {
		if err := s.loadTracking(ctx, q, o); err != nil {
			return nil, 0, err
		}
	}
	return result, total, nil
}

// UpdateOrder persists the whole order. The tracking log is replaced
// wholesale; it only ever grows, so the rewrite keeps history intact.
func (s *OrderStore) UpdateOrder(ctx context.Context, o *order.Order) error {
	q := conn(ctx, s.db)
	res, err := q.ExecContext(ctx, `
		UPDATE orders SET
			customer_name = $2, address = $3, pincode = $4, phone = $5,
			product_id = $6, quantity = $7, price_at_order_time = $8, total_amount = $9,
			agent_id = $10, awb = $11, courier_partner = $12,
			order_status = $13, payment_status = $14, payment_mode = $15,
			deposited_amount = $16, remaining_amount = $17,
			transaction_id = $18, remarks = $19, updated_at = $20
		WHERE id = $1`,
		o.ID, o.CustomerName, o.Address, o.Pincode, o.Phone,
		o.ProductID, o.Quantity, o.PriceAtOrderTime, o.TotalAmount,
		o.AgentID, o.AWB, o.CourierPartner,
		string(o.OrderStatus), string(o.PaymentStatus), string(o.PaymentMode),
		o.DepositedAmount, o.RemainingAmount, o.TransactionID, o.Remarks, o.UpdatedAt)
	if err != nil {
		return err
	}
	if err := requireRow(res, domainErr.ErrOrderNotFound); err != nil {
		return err
	}
	if _, err := q.ExecContext(ctx, `DELETE FROM order_tracking_logs WHERE order_id = $1`, o.ID); err != nil {
		return err
	}
	return s.insertTracking(ctx, q, o.ID, o.TrackingLogs)
}

func (s *OrderStore) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	res, err := conn(ctx, s.db).ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domainErr.ErrOrderNotFound)
}

func (s *OrderStore) insertTracking(ctx context.Context, q querier, orderID uuid.UUID, logs []order.TrackingEntry) error {
	for _, entry := range logs {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO order_tracking_logs (order_id, status, message, at)
			VALUES ($1,$2,$3,$4)`,
			orderID, string(entry.Status), entry.Message, entry.At); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderStore) loadTracking(ctx context.Context, q querier, o *order.Order) error {
	rows, err := q.QueryContext(ctx, `
		SELECT status, message, at FROM order_tracking_logs
		WHERE order_id = $1 ORDER BY id`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entry order.TrackingEntry
		var statusStr string
		if err := rows.Scan(&statusStr, &entry.Message, &entry.At); err != nil {
			return err
		}
		entry.Status = order.Status(statusStr)
		o.TrackingLogs = append(o.TrackingLogs, entry)
	}
	return rows.Err()
}

func orderWhere(f order.Filter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.AgentID != nil {
		clauses = append(clauses, "agent_id = "+arg(*f.AgentID))
	}
	if f.ProductID != nil {
		clauses = append(clauses, "product_id = "+arg(*f.ProductID))
	}
	if f.TeamHeadID != nil {
		p := arg(*f.TeamHeadID)
		clauses = append(clauses, `agent_id IN (
			SELECT id FROM accounts WHERE id = `+p+` OR team_head_id = `+p+`)`)
	}
	if f.ExcludeAdminOwned {
		clauses = append(clauses, `agent_id NOT IN (SELECT id FROM accounts WHERE role = 'admin')`)
	}
	if f.OrderStatus != nil {
		clauses = append(clauses, "order_status = "+arg(string(*f.OrderStatus)))
	}
	if f.PaymentStatus != nil {
		clauses = append(clauses, "payment_status = "+arg(string(*f.PaymentStatus)))
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

func scanOrder(row rowScanner) (*order.Order, error) {
	var o order.Order
	var orderStatus, paymentStatus, paymentMode string

	err := row.Scan(&o.ID, &o.CustomerName, &o.Address, &o.Pincode, &o.Phone,
		&o.ProductID, &o.Quantity, &o.PriceAtOrderTime, &o.TotalAmount,
		&o.AgentID, &o.AWB, &o.CourierPartner,
		&orderStatus, &paymentStatus, &paymentMode,
		&o.DepositedAmount, &o.RemainingAmount, &o.TransactionID, &o.Remarks,
		&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainErr.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	o.OrderStatus = order.Status(orderStatus)
	o.PaymentStatus = order.PaymentStatus(paymentStatus)
	o.PaymentMode = order.PaymentMode(paymentMode)
	return &o, nil
}
