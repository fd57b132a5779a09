package domain

import "fmt"

// InvalidSKUError reports a token that fails the SKU grammar.
type InvalidSKUError struct {
	Token string
}

func (e InvalidSKUError) Error() string {
	return fmt.Sprintf("invalid sku format: %q", e.Token)
}

// InvalidAmountError reports a token that is not a digit string in [0, MaxAmount].
type InvalidAmountError struct {
	Token string
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount format: %q", e.Token)
}

// SKUNotFoundError reports a mutation against a SKU the table has never stocked.
type SKUNotFoundError struct {
	SKU SKU
}

func (e SKUNotFoundError) Error() string {
	return fmt.Sprintf("sku %q not found", string(e.SKU))
}

// InsufficientStockError reports an order pair asking for more than the current level.
type InsufficientStockError struct {
	OrderRef string
	SKU      SKU
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for order %q: sku %q", e.OrderRef, string(e.SKU))
}

// UnknownOperationError reports an instruction whose first token names no operation.
type UnknownOperationError struct {
	Name string
}

func (e UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation: %q", e.Name)
}
