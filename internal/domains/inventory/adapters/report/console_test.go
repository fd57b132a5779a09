package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
)

func TestResult_SuccessIsSilent(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Result(1, "set-stock AB-1 10", nil)
	require.Empty(t, buf.String())
}

func TestResult_PrintsFailureWithLineNumber(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Result(3, "order ORD-9 AB-1 5", domain.InsufficientStockError{OrderRef: "ORD-9", SKU: "AB-1"})
	require.Equal(t, "line 3: order ORD-9 AB-1 5: insufficient stock for order \"ORD-9\": sku \"AB-1\"\n", buf.String())
}

func TestLevels_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Levels([]domain.StockLevel{
		{SKU: "AB-1", Quantity: 7},
		{SKU: "CD-2", Quantity: 0},
	})
	require.Equal(t, "final stock levels:\nAB-1 7\nCD-2 0\n", buf.String())
}

func TestLevels_EmptyTablePrintsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Levels(nil)
	require.Equal(t, "final stock levels:\n", buf.String())
}
