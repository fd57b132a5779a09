package ports

import (
	"context"

	"github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
)

// Result summarizes the effects of one instruction. It is meaningful on
// failure too: an aborted instruction keeps the pair mutations already
// committed, and PairsApplied counts them.
type Result struct {
	Operation    domain.Operation
	PairsApplied int
	PairsSkipped int
}

// Service executes ledger instructions against the stock table.
type Service interface {
	// Process interprets one instruction line and applies it to the table.
	Process(ctx context.Context, line string) (Result, error)
	// Levels reports the stock table sorted ascending by SKU.
	Levels(ctx context.Context) ([]domain.StockLevel, error)
}
