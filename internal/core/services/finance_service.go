package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/santisala23-sys/exito/internal/core/aggregate"
	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

type FinanceService struct {
	repo     domain.TransactionRepository
	resolver *calendar.Resolver
	logger   *slog.Logger
}

func NewFinanceService(repo domain.TransactionRepository, resolver *calendar.Resolver, logger *slog.Logger) *FinanceService {
	return &FinanceService{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// AddTransactionInput carries the raw form values. Amount accepts a comma
// as decimal separator. A zero Date means today.
type AddTransactionInput struct {
	Type        string
	Amount      string
	Category    string
	Description string
	Date        calendar.Date
}

type FinanceMonth struct {
	Transactions []*domain.Transaction `json:"transactions"`
	Summary      domain.LedgerSummary  `json:"summary"`
}

// Month lists the month-to-date transactions, newest first, with their
// summary. A failed read yields an empty month.
func (s *FinanceService) Month(ctx context.Context) *FinanceMonth {
	monthStart := s.resolver.MonthStart()

	txs, err := s.repo.ListSince(ctx, monthStart)
	if err != nil {
		s.logger.Warn("view read failed, using empty value", slog.String("page", "finances"), slog.String("read", "transactions"), slog.Any("error", err))
		txs = nil
	}
	if txs == nil {
		txs = []*domain.Transaction{}
	}

	return &FinanceMonth{
		Transactions: txs,
		Summary:      aggregate.MonthlySummary(txs, monthStart),
	}
}

func (s *FinanceService) Add(ctx context.Context, input AddTransactionInput) (*domain.Transaction, error) {
	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, input.Type, amount, input.Category, input.Description, input.Date)
}

// QuickAdd records a transaction from the dashboard, dated today.
func (s *FinanceService) QuickAdd(ctx context.Context, tType string, amount decimal.Decimal, category string) (*domain.Transaction, error) {
	return s.create(ctx, tType, amount, category, domain.QuickDescription, calendar.Date{})
}

func (s *FinanceService) create(ctx context.Context, tType string, amount decimal.Decimal, category, description string, date calendar.Date) (*domain.Transaction, error) {
	if date.IsZero() {
		date = s.resolver.Today()
	}

	tx, err := domain.NewTransaction(tType, amount, category, description, date)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *FinanceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
