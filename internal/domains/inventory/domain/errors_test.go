package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	require.EqualError(t, InvalidSKUError{Token: "ab1"}, `invalid sku format: "ab1"`)
	require.EqualError(t, InvalidAmountError{Token: "12x"}, `invalid amount format: "12x"`)
	require.EqualError(t, SKUNotFoundError{SKU: "AB-1"}, `sku "AB-1" not found`)
	require.EqualError(t, InsufficientStockError{OrderRef: "ORD-9", SKU: "AB-1"}, `insufficient stock for order "ORD-9": sku "AB-1"`)
	require.EqualError(t, UnknownOperationError{Name: "restock"}, `unknown operation: "restock"`)
}
