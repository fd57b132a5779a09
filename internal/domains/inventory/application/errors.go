package application

import (
	"errors"

	"github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
	"github.com/Apurer/stock-ledger/internal/domains/inventory/ports"
)

// mapNotFound translates the repository's absence sentinel into the ledger's
// typed error, carrying the SKU the instruction asked for. Any other
// repository failure passes through untouched.
func mapNotFound(err error, sku domain.SKU) error {
	if errors.Is(err, ports.ErrNotFound) {
		return domain.SKUNotFoundError{SKU: sku}
	}
	return err
}
