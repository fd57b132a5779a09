package report

import (
	"fmt"
	"io"

	"github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
	"github.com/Apurer/stock-ledger/internal/domains/inventory/ports"
)

var _ ports.ReportSink = (*Console)(nil)

// Console renders instruction failures and the final stock table as plain
// text. Successful instructions render nothing.
type Console struct {
	w io.Writer
}

// NewConsole writes the report to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Result prints failed instructions as "line <n>: <line>: <detail>".
func (c *Console) Result(lineNo int, line string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(c.w, "line %d: %s: %v\n", lineNo, line, err)
}

// Levels prints the stock table, one "<SKU> <quantity>" row per line in the
// order given.
func (c *Console) Levels(levels []domain.StockLevel) {
	fmt.Fprintln(c.w, "final stock levels:")
	for _, level := range levels {
		fmt.Fprintf(c.w, "%s %d\n", level.SKU, level.Quantity)
	}
}
