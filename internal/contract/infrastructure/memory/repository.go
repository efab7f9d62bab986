package memory

import (
	"context"
	"sync"

	contract "rental-billing/internal/contract/domain"
)

// ContractRepository is an in-memory contract store.
type ContractRepository struct {
	mu        sync.RWMutex
	contracts []contract.Contract
}

// NewContractRepository constructs a repository.
func NewContractRepository() *ContractRepository {
	return &ContractRepository{}
}

// Add stores a contract.
func (r *ContractRepository) Add(c contract.Contract) {
	r.mu.Lock()
	r.contracts = append(r.contracts, c)
	r.mu.Unlock()
}

// ListActive returns contracts flagged active, in insertion order.
func (r *ContractRepository) ListActive(ctx context.Context) ([]contract.Contract, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]contract.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}
