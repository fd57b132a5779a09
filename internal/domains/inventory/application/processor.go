package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Apurer/stock-ledger/internal/domains/inventory/ports"
)

// Summary totals one processor run.
type Summary struct {
	Instructions int
	Failed       int
}

// Processor drives the ledger from a line source: one instruction per line
// with no line-length cap, surrounding whitespace stripped, lines numbered
// from 1 for diagnostics. Instruction failures go to the sink and never stop
// the run; only a failing line source or a canceled context does.
type Processor struct {
	svc  ports.Service
	sink ports.ReportSink
}

// NewProcessor wires the run loop with its collaborators.
func NewProcessor(svc ports.Service, sink ports.ReportSink) *Processor {
	return &Processor{svc: svc, sink: sink}
}

// Run drains src, processing each line in order to completion, then hands the
// final stock levels to the sink. The error is non-nil only when the line
// source itself fails or the context is canceled between instructions.
func (p *Processor) Run(ctx context.Context, src io.Reader) (Summary, error) {
	var summary Summary
	reader := bufio.NewReader(src)
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return summary, fmt.Errorf("reading instructions: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		line := strings.TrimSpace(raw)
		summary.Instructions++
		_, err := p.svc.Process(ctx, line)
		if err != nil {
			summary.Failed++
		}
		p.sink.Result(lineNo, line, err)
		if readErr == io.EOF {
			break
		}
	}
	levels, err := p.svc.Levels(ctx)
	if err != nil {
		return summary, err
	}
	p.sink.Levels(levels)
	return summary, nil
}
