package ports

import "github.com/Apurer/stock-ledger/internal/domains/inventory/domain"

// ReportSink receives the outcome of every instruction and, once the line
// source is drained, the final stock levels.
type ReportSink interface {
	// Result is called once per instruction; err is nil on success. lineNo is
	// 1-based and line is the original text before tokenization.
	Result(lineNo int, line string, err error)
	// Levels is called once after the last instruction with the sorted table.
	Levels(levels []domain.StockLevel)
}
