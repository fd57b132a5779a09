package ports

import (
	"context"
	"errors"

	"github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
)

var ErrNotFound = errors.New("sku not found")

// StockRepository persists the stock table, the authoritative SKU to quantity
// mapping. Absence of a SKU means "never stocked" and is distinct from a zero
// quantity. Callers validate amounts before mutating; the table does not
// re-check the ceiling, and a stored level may exceed MaxAmount.
type StockRepository interface {
	// Get returns the current quantity, or ErrNotFound for a SKU that was
	// never stocked.
	Get(ctx context.Context, sku domain.SKU) (int, error)
	// Set stores quantity for sku, creating or overwriting the row.
	Set(ctx context.Context, sku domain.SKU, quantity int) error
	// List returns every row sorted ascending by SKU.
	List(ctx context.Context) ([]domain.StockLevel, error)
}
