package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
	"github.com/Apurer/stock-ledger/internal/domains/inventory/ports"
)

var _ ports.StockRepository = (*Repository)(nil)

// Repository is an in-memory stock table adapter. Individual operations are
// safe under concurrent use; read-then-write sequencing across operations is
// the caller's concern.
type Repository struct {
	mu    sync.RWMutex
	stock map[domain.SKU]int
}

// NewRepository returns an empty stock table.
func NewRepository() *Repository {
	return &Repository{stock: make(map[domain.SKU]int)}
}

func (r *Repository) Get(_ context.Context, sku domain.SKU) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quantity, ok := r.stock[sku]
	if !ok {
		return 0, ports.ErrNotFound
	}
	return quantity, nil
}

func (r *Repository) Set(_ context.Context, sku domain.SKU, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stock[sku] = quantity
	return nil
}

func (r *Repository) List(_ context.Context) ([]domain.StockLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	levels := make([]domain.StockLevel, 0, len(r.stock))
	for sku, quantity := range r.stock {
		levels = append(levels, domain.StockLevel{SKU: sku, Quantity: quantity})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].SKU < levels[j].SKU })
	return levels, nil
}
