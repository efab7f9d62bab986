package memory

import (
	"context"
	"sync"

	cost "rental-billing/internal/cost/domain"
)

// CostRepository is an in-memory cost store.
type CostRepository struct {
	mu    sync.RWMutex
	costs []cost.Cost
}

// NewCostRepository constructs a repository.
func NewCostRepository() *CostRepository {
	return &CostRepository{}
}

// Add stores a cost.
func (r *CostRepository) Add(c cost.Cost) {
	r.mu.Lock()
	r.costs = append(r.costs, c)
	r.mu.Unlock()
}

// List returns every cost in insertion order.
func (r *CostRepository) List(ctx context.Context) ([]cost.Cost, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]cost.Cost, len(r.costs))
	copy(out, r.costs)
	return out, nil
}
