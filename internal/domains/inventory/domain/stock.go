package domain

// StockLevel is one row of the stock table: a SKU and its current quantity.
// Quantities are validated before mutation, so levels are never negative;
// add-stock may push a level past MaxAmount and the row reports it as is.
type StockLevel struct {
	SKU      SKU
	Quantity int
}
