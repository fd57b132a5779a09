package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	inventorydomain "github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
	inventoryports "github.com/Apurer/stock-ledger/internal/domains/inventory/ports"
)

const tracerName = "github.com/Apurer/stock-ledger/internal/domains/inventory/adapters/observability/service"

// Service decorates the inventory service with tracing, logging, and metrics.
type Service struct {
	inner   inventoryports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core inventory service.
func New(inner inventoryports.Service, opts ...Option) inventoryports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Process(ctx context.Context, line string) (inventoryports.Result, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.Process",
		trace.WithAttributes(attribute.String("instruction.line", line)))
	defer span.End()

	result, err := s.inner.Process(ctx, line)
	span.SetAttributes(
		attribute.String("instruction.operation", string(result.Operation)),
		attribute.Int("instruction.pairs_applied", result.PairsApplied),
		attribute.Int("instruction.pairs_skipped", result.PairsSkipped),
	)
	s.metrics.recordInstruction(ctx, result, err)
	if err != nil {
		return result, s.handleError(ctx, span, err, "instruction failed",
			slog.String("operation", string(result.Operation)),
			slog.Int("pairs_applied", result.PairsApplied),
			slog.Int("pairs_skipped", result.PairsSkipped))
	}
	s.logInfo(ctx, "instruction applied",
		slog.String("operation", string(result.Operation)),
		slog.Int("pairs_applied", result.PairsApplied),
		slog.Int("pairs_skipped", result.PairsSkipped))
	return result, nil
}

func (s *Service) Levels(ctx context.Context) ([]inventorydomain.StockLevel, error) {
	ctx, span := s.tracer.Start(ctx, "InventoryService.Levels")
	defer span.End()

	result, err := s.inner.Levels(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list stock levels")
	}
	span.SetAttributes(attribute.Int("stock.sku_count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	instructions metric.Int64Counter
	pairsApplied metric.Int64Counter
	pairsSkipped metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	instructions, _ := m.Int64Counter("inventory.service.instructions",
		metric.WithDescription("Number of instructions processed"))
	pairsApplied, _ := m.Int64Counter("inventory.service.pairs_applied",
		metric.WithDescription("Number of (SKU, amount) pairs applied"))
	pairsSkipped, _ := m.Int64Counter("inventory.service.pairs_skipped",
		metric.WithDescription("Number of malformed (SKU, amount) pairs skipped"))
	return serviceMetrics{instructions: instructions, pairsApplied: pairsApplied, pairsSkipped: pairsSkipped}
}

func (m serviceMetrics) recordInstruction(ctx context.Context, result inventoryports.Result, err error) {
	if m.instructions != nil {
		outcome := "applied"
		if err != nil {
			outcome = "failed"
		}
		m.instructions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("instruction.operation", string(result.Operation)),
			attribute.String("instruction.outcome", outcome),
		))
	}
	if m.pairsApplied != nil && result.PairsApplied > 0 {
		m.pairsApplied.Add(ctx, int64(result.PairsApplied))
	}
	if m.pairsSkipped != nil && result.PairsSkipped > 0 {
		m.pairsSkipped.Add(ctx, int64(result.PairsSkipped))
	}
}

var _ inventoryports.Service = (*Service)(nil)
