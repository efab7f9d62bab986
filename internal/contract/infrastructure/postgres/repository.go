package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	contract "rental-billing/internal/contract/domain"
)

const (
	defaultContractTable = "contracts"
	defaultRentalTable   = "rentals"
)

// ContractRepository reads contracts and their rentals from Postgres.
type ContractRepository struct {
	db            *sql.DB
	contractTable string
	rentalTable   string
}

// RepositoryOption configures the repository.
type RepositoryOption func(*ContractRepository)

// WithContractTable overrides the default contract table.
func WithContractTable(table string) RepositoryOption {
	return func(repo *ContractRepository) {
		if table != "" {
			repo.contractTable = table
		}
	}
}

// WithRentalTable overrides the default rental table.
func WithRentalTable(table string) RepositoryOption {
	return func(repo *ContractRepository) {
		if table != "" {
			repo.rentalTable = table
		}
	}
}

// NewContractRepository constructs a repository with defaults.
func NewContractRepository(db *sql.DB, opts ...RepositoryOption) *ContractRepository {
	repo := &ContractRepository{
		db:            db,
		contractTable: defaultContractTable,
		rentalTable:   defaultRentalTable,
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// ListActive loads every active contract joined with its rental.
func (r *ContractRepository) ListActive(ctx context.Context) ([]contract.Contract, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("contract repo: nil db")
	}

	query := fmt.Sprintf(`
SELECT c.id, c.client_id, c.start_date, c.recurrence, c.active,
       r.id, r.weekly_rate, r.monthly_rate
FROM %s c
JOIN %s r ON r.contract_id = c.id
WHERE c.active
ORDER BY c.id`, r.contractTable, r.rentalTable)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("contract repo: list active: %w", err)
	}
	defer rows.Close()

	var contracts []contract.Contract
	for rows.Next() {
		var c contract.Contract
		if err := rows.Scan(
			&c.ID,
			&c.ClientID,
			&c.StartDate,
			&c.Recurrence,
			&c.Active,
			&c.Rental.ID,
			&c.Rental.WeeklyRate,
			&c.Rental.MonthlyRate,
		); err != nil {
			return nil, fmt.Errorf("contract repo: scan: %w", err)
		}
		c.Rental.ContractID = c.ID
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("contract repo: rows: %w", err)
	}
	return contracts, nil
}
