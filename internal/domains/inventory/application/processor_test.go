package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	inventorymemory "github.com/Apurer/stock-ledger/internal/domains/inventory/adapters/memory"
	"github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
)

type sinkResult struct {
	lineNo int
	line   string
	err    error
}

type fakeSink struct {
	results     []sinkResult
	levels      []domain.StockLevel
	levelsCalls int
}

func (f *fakeSink) Result(lineNo int, line string, err error) {
	f.results = append(f.results, sinkResult{lineNo: lineNo, line: line, err: err})
}

func (f *fakeSink) Levels(levels []domain.StockLevel) {
	f.levelsCalls++
	f.levels = levels
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestRun_AppliesInstructionsInOrder(t *testing.T) {
	svc := NewService(inventorymemory.NewRepository())
	sink := &fakeSink{}
	processor := NewProcessor(svc, sink)

	input := "set-stock AB-1 5\nadd-stock AB-1 2\norder ORD-1 AB-1 3\n"
	summary, err := processor.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, Summary{Instructions: 3, Failed: 0}, summary)

	require.Len(t, sink.results, 3)
	for _, result := range sink.results {
		require.NoError(t, result.err)
	}
	require.Equal(t, 1, sink.levelsCalls)
	require.Equal(t, []domain.StockLevel{{SKU: "AB-1", Quantity: 4}}, sink.levels)
}

func TestRun_ContinuesAfterInstructionFailures(t *testing.T) {
	svc := NewService(inventorymemory.NewRepository())
	sink := &fakeSink{}
	processor := NewProcessor(svc, sink)

	input := "set-stock AB-1 5\nbogus AB-1 1\norder ORD-1 AB-1 9\norder ORD-2 AB-1 2\n"
	summary, err := processor.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, Summary{Instructions: 4, Failed: 2}, summary)

	require.Len(t, sink.results, 4)
	var unknownErr domain.UnknownOperationError
	require.ErrorAs(t, sink.results[1].err, &unknownErr)
	var stockErr domain.InsufficientStockError
	require.ErrorAs(t, sink.results[2].err, &stockErr)
	require.NoError(t, sink.results[3].err)
	require.Equal(t, []domain.StockLevel{{SKU: "AB-1", Quantity: 3}}, sink.levels)
}

func TestRun_TrimsAndNumbersLines(t *testing.T) {
	svc := NewService(inventorymemory.NewRepository())
	sink := &fakeSink{}
	processor := NewProcessor(svc, sink)

	input := "  set-stock AB-1 5  \n\nadd-stock AB-1 1\n"
	summary, err := processor.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, Summary{Instructions: 3, Failed: 1}, summary)

	require.Len(t, sink.results, 3)
	require.Equal(t, 1, sink.results[0].lineNo)
	require.Equal(t, "set-stock AB-1 5", sink.results[0].line)
	require.Equal(t, 2, sink.results[1].lineNo)
	require.Empty(t, sink.results[1].line)
	require.Error(t, sink.results[1].err)
	require.Equal(t, 3, sink.results[2].lineNo)
}

func TestRun_ProcessesVeryLongLines(t *testing.T) {
	svc := NewService(inventorymemory.NewRepository())
	sink := &fakeSink{}
	processor := NewProcessor(svc, sink)

	// One instruction of 10,000 pairs, far past any default token buffer.
	longLine := "set-stock " + strings.Repeat("CD-2 7 ", 10000)
	input := "set-stock AB-1 5\n" + longLine + "\norder ORD-1 CD-2 3\n"
	summary, err := processor.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, Summary{Instructions: 3, Failed: 0}, summary)

	require.Len(t, sink.results, 3)
	for _, result := range sink.results {
		require.NoError(t, result.err)
	}
	require.Equal(t, 1, sink.levelsCalls)
	require.Equal(t, []domain.StockLevel{
		{SKU: "AB-1", Quantity: 5},
		{SKU: "CD-2", Quantity: 4},
	}, sink.levels)
}

func TestRun_EmptyInput(t *testing.T) {
	svc := NewService(inventorymemory.NewRepository())
	sink := &fakeSink{}
	processor := NewProcessor(svc, sink)

	summary, err := processor.Run(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Summary{}, summary)
	require.Empty(t, sink.results)
	require.Equal(t, 1, sink.levelsCalls)
	require.Empty(t, sink.levels)
}

func TestRun_SourceFailureAborts(t *testing.T) {
	svc := NewService(inventorymemory.NewRepository())
	sink := &fakeSink{}
	processor := NewProcessor(svc, sink)

	readErr := errors.New("disk gone")
	_, err := processor.Run(context.Background(), failingReader{err: readErr})
	require.ErrorIs(t, err, readErr)
	require.Equal(t, 0, sink.levelsCalls)
}

func TestRun_StopsWhenContextCanceled(t *testing.T) {
	svc := NewService(inventorymemory.NewRepository())
	sink := &fakeSink{}
	processor := NewProcessor(svc, sink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := processor.Run(ctx, strings.NewReader("set-stock AB-1 5\n"))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, summary.Instructions)
	require.Empty(t, sink.results)
}
