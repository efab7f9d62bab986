package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	payment "rental-billing/internal/payment/domain"
)

const defaultPaymentTable = "payments"

// PaymentRepository reads payment records from Postgres.
type PaymentRepository struct {
	db    *sql.DB
	table string
}

// RepositoryOption configures the repository.
type RepositoryOption func(*PaymentRepository)

// WithTable overrides the default table.
func WithTable(table string) RepositoryOption {
	return func(repo *PaymentRepository) {
		if table != "" {
			repo.table = table
		}
	}
}

// NewPaymentRepository constructs a repository with defaults.
func NewPaymentRepository(db *sql.DB, opts ...RepositoryOption) *PaymentRepository {
	repo := &PaymentRepository{db: db, table: defaultPaymentTable}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// ListByClient loads a client's payment history, oldest first.
func (r *PaymentRepository) ListByClient(ctx context.Context, clientID string) ([]payment.Payment, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("payment repo: nil db")
	}
	if clientID == "" {
		return nil, errors.New("payment repo: empty client id")
	}

	query := fmt.Sprintf(`
SELECT id, client_id, amount, status, created_at
FROM %s
WHERE client_id = $1
ORDER BY created_at`, r.table)

	return r.query(ctx, query, clientID)
}

// ListApproved loads every approved payment, oldest first.
func (r *PaymentRepository) ListApproved(ctx context.Context) ([]payment.Payment, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("payment repo: nil db")
	}

	query := fmt.Sprintf(`
SELECT id, client_id, amount, status, created_at
FROM %s
WHERE status = $1
ORDER BY created_at`, r.table)

	return r.query(ctx, query, payment.StatusApproved)
}

func (r *PaymentRepository) query(ctx context.Context, query string, args ...any) ([]payment.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("payment repo: query: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("payment repo: scan: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("payment repo: rows: %w", err)
	}
	return payments, nil
}
