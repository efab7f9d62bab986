package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	cost "rental-billing/internal/cost/domain"
)

const defaultCostTable = "costs"

// CostRepository reads cost records from Postgres.
type CostRepository struct {
	db    *sql.DB
	table string
}

// RepositoryOption configures the repository.
type RepositoryOption func(*CostRepository)

// WithTable overrides the default table.
func WithTable(table string) RepositoryOption {
	return func(repo *CostRepository) {
		if table != "" {
			repo.table = table
		}
	}
}

// NewCostRepository constructs a repository with defaults.
func NewCostRepository(db *sql.DB, opts ...RepositoryOption) *CostRepository {
	repo := &CostRepository{db: db, table: defaultCostTable}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// List loads every cost, oldest first. A NULL client reference maps to an
// empty client id.
func (r *CostRepository) List(ctx context.Context) ([]cost.Cost, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("cost repo: nil db")
	}

	query := fmt.Sprintf(`
SELECT id, COALESCE(client_id, ''), value, date, category,
       payment_type, COALESCE(installments, 0), COALESCE(installment_value, 0)
FROM %s
ORDER BY date`, r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("cost repo: list: %w", err)
	}
	defer rows.Close()

	var costs []cost.Cost
	for rows.Next() {
		var c cost.Cost
		if err := rows.Scan(
			&c.ID,
			&c.ClientID,
			&c.Value,
			&c.Date,
			&c.Category,
			&c.PaymentType,
			&c.Installments,
			&c.InstallmentValue,
		); err != nil {
			return nil, fmt.Errorf("cost repo: scan: %w", err)
		}
		costs = append(costs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cost repo: rows: %w", err)
	}
	return costs, nil
}
