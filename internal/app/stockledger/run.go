package stockledger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	inventorymemory "github.com/Apurer/stock-ledger/internal/domains/inventory/adapters/memory"
	inventoryobs "github.com/Apurer/stock-ledger/internal/domains/inventory/adapters/observability"
	inventoryreport "github.com/Apurer/stock-ledger/internal/domains/inventory/adapters/report"
	inventoryapp "github.com/Apurer/stock-ledger/internal/domains/inventory/application"
	platformobservability "github.com/Apurer/stock-ledger/internal/platform/observability"
)

// Run executes one ledger pass over the configured line source: apply every
// instruction in order, then print the final stock levels. Instruction
// failures are part of the report, not of the returned error.
func Run(ctx context.Context, args []string) error {
	const serviceName = "stockledger"
	cfg, err := LoadConfig(args)
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	src, cleanup, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	coreService := inventoryapp.NewService(inventorymemory.NewRepository())
	service := inventoryobs.New(
		coreService,
		inventoryobs.WithLogger(logger),
		inventoryobs.WithTracer(instruments.Tracer("internal.inventory.application")),
		inventoryobs.WithMeter(instruments.Meter("internal.inventory.application")),
	)

	processor := inventoryapp.NewProcessor(service, inventoryreport.NewConsole(os.Stdout))
	logger.Info("ledger run starting", slog.String("input", cfg.Input()))
	summary, err := processor.Run(ctx, src)
	if err != nil {
		logger.Error("ledger run aborted",
			slog.String("input", cfg.Input()),
			slog.Int("instructions", summary.Instructions),
			slog.String("error", err.Error()))
		return err
	}
	logger.Info("ledger run complete",
		slog.String("input", cfg.Input()),
		slog.Int("instructions", summary.Instructions),
		slog.Int("failed", summary.Failed))
	return nil
}

// openSource resolves the instruction stream: the configured file, or stdin
// when none was named.
func openSource(cfg Config) (io.Reader, func(), error) {
	if cfg.InputPath == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open instruction file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
