package application

import (
	"context"

	"github.com/Apurer/stock-ledger/internal/domains/inventory/domain"
	"github.com/Apurer/stock-ledger/internal/domains/inventory/ports"
)

// Service is the instruction interpreter: it parses ledger lines, validates
// argument pairs, and applies the surviving mutations to the stock table.
type Service struct {
	repo ports.StockRepository
}

// NewService wires the interpreter with its stock table.
func NewService(repo ports.StockRepository) *Service {
	return &Service{repo: repo}
}

// Process interprets one instruction line and applies it. Malformed pairs are
// skipped without aborting their siblings; SKUNotFoundError and
// InsufficientStockError abort the rest of the instruction while keeping the
// mutations already committed. The returned Result counts both outcomes.
func (s *Service) Process(ctx context.Context, line string) (ports.Result, error) {
	instr, err := domain.ParseInstruction(line)
	if err != nil {
		return ports.Result{}, err
	}
	result := ports.Result{Operation: instr.Op}
	switch instr.Op {
	case domain.OpSetStock:
		result.PairsApplied, result.PairsSkipped, err = s.applySetStock(ctx, instr.Pairs)
	case domain.OpAddStock:
		result.PairsApplied, result.PairsSkipped, err = s.applyAddStock(ctx, instr.Pairs)
	case domain.OpOrder:
		result.PairsApplied, result.PairsSkipped, err = s.applyOrder(ctx, instr.OrderRef, instr.Pairs)
	default:
		err = domain.UnknownOperationError{Name: string(instr.Op)}
	}
	return result, err
}

// Levels reports the stock table sorted ascending by SKU.
func (s *Service) Levels(ctx context.Context) ([]domain.StockLevel, error) {
	return s.repo.List(ctx)
}

// applySetStock stores each valid pair unconditionally, creating or
// overwriting the row. Set-stock never fails on table state, so the only
// errors escaping here are repository failures.
func (s *Service) applySetStock(ctx context.Context, pairs []domain.TokenPair) (int, int, error) {
	applied, skipped := 0, 0
	for _, pair := range pairs {
		sku, amount, ok := validPair(pair)
		if !ok {
			skipped++
			continue
		}
		if err := s.repo.Set(ctx, sku, amount); err != nil {
			return applied, skipped, err
		}
		applied++
	}
	return applied, skipped, nil
}

// applyAddStock increments existing rows. A valid pair naming an unstocked
// SKU aborts the instruction. The sum is not re-checked against MaxAmount;
// the ceiling applies to instruction amounts, not resulting levels.
func (s *Service) applyAddStock(ctx context.Context, pairs []domain.TokenPair) (int, int, error) {
	applied, skipped := 0, 0
	for _, pair := range pairs {
		sku, amount, ok := validPair(pair)
		if !ok {
			skipped++
			continue
		}
		current, err := s.repo.Get(ctx, sku)
		if err != nil {
			return applied, skipped, mapNotFound(err, sku)
		}
		if err := s.repo.Set(ctx, sku, current+amount); err != nil {
			return applied, skipped, err
		}
		applied++
	}
	return applied, skipped, nil
}

// applyOrder decrements existing rows, pair by pair in argument order. An
// unstocked SKU or a level below the requested amount aborts the instruction;
// decrements already applied stay committed.
func (s *Service) applyOrder(ctx context.Context, orderRef string, pairs []domain.TokenPair) (int, int, error) {
	applied, skipped := 0, 0
	for _, pair := range pairs {
		sku, amount, ok := validPair(pair)
		if !ok {
			skipped++
			continue
		}
		current, err := s.repo.Get(ctx, sku)
		if err != nil {
			return applied, skipped, mapNotFound(err, sku)
		}
		if current < amount {
			return applied, skipped, domain.InsufficientStockError{OrderRef: orderRef, SKU: sku}
		}
		if err := s.repo.Set(ctx, sku, current-amount); err != nil {
			return applied, skipped, err
		}
		applied++
	}
	return applied, skipped, nil
}

// validPair validates both tokens of a pair; either failing disqualifies the
// pair without touching the table.
func validPair(pair domain.TokenPair) (domain.SKU, int, bool) {
	sku, err := domain.ParseSKU(pair.SKU)
	if err != nil {
		return "", 0, false
	}
	amount, err := domain.ParseAmount(pair.Amount)
	if err != nil {
		return "", 0, false
	}
	return sku, amount, true
}

var _ ports.Service = (*Service)(nil)
