package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface. Balances are derived from
// journal lines on every call; nothing is cached or stored.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
}

// NewReportingService creates a new reporting service
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo, accountRepo: accountRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetTrialBalance lists every postable account ordered by code.
func (s *reportingService) GetTrialBalance(ctx context.Context, caps domain.Capabilities, asOf time.Time) (*domain.TrialBalance, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceReport); err != nil {
		return nil, err
	}

	postable := true
	accounts, totals, err := s.load(ctx, asOf, &postable)
	if err != nil {
		return nil, err
	}

	nodes := domain.BuildTree(accounts)
	report := &domain.TrialBalance{Rows: []domain.TrialBalanceRow{}, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	domain.Walk(nodes, func(n *domain.AccountNode) {
		t, ok := totals[n.AccountID]
		if !ok {
			t = domain.NewAccountTotals(decimal.Zero, decimal.Zero)
		}
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:   n.AccountID,
			AccountCode: n.Code,
			AccountName: n.Name,
			TotalDebit:  t.TotalDebit,
			TotalCredit: t.TotalCredit,
			Balance:     t.Balance,
		})
		report.TotalDebit = report.TotalDebit.Add(t.TotalDebit)
		report.TotalCredit = report.TotalCredit.Add(t.TotalCredit)
	})

	s.LogDebug(ctx, "Trial balance computed", slog.Int("rows", len(report.Rows)), slog.Time("as_of", asOf))
	return report, nil
}

// GetBalanceTree applies leaf totals to the whole chart and rolls them up.
func (s *reportingService) GetBalanceTree(ctx context.Context, caps domain.Capabilities, asOf time.Time) ([]*domain.AccountNode, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceReport); err != nil {
		return nil, err
	}
	accounts, totals, err := s.load(ctx, asOf, nil)
	if err != nil {
		return nil, err
	}

	roots := domain.BuildTree(accounts)
	domain.ApplyTotals(roots, totals)
	domain.AggregateBalances(roots)
	return roots, nil
}

// GetIncomeStatement reports revenue (root 4) and expenses (root 5) moved between from
// and to. A nil from covers everything up to to.
func (s *reportingService) GetIncomeStatement(ctx context.Context, caps domain.Capabilities, from *time.Time, to time.Time) (*domain.IncomeStatement, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceReport); err != nil {
		return nil, err
	}
	if from != nil && from.After(to) {
		return nil, apperrors.Validation(apperrors.NewFieldError("from", "must not be after to"))
	}

	accounts, totals, err := s.loadPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report := incomeStatement(domain.BuildTree(accounts), totals)

	s.LogDebug(ctx, "Income statement computed", slog.String("result", report.Result.String()), slog.Time("to", to))
	return &report, nil
}

// GetBalanceSheet reports assets, liabilities and equity as of asOf, with the
// accumulated result of revenue and expense accounts carried into equity.
func (s *reportingService) GetBalanceSheet(ctx context.Context, caps domain.Capabilities, asOf time.Time) (*domain.BalanceSheet, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceReport); err != nil {
		return nil, err
	}
	accounts, totals, err := s.load(ctx, asOf, nil)
	if err != nil {
		return nil, err
	}

	nodes := domain.BuildTree(accounts)
	sheet := &domain.BalanceSheet{
		Assets:      domain.NewStatementSection(),
		Liabilities: domain.NewStatementSection(),
		Equity:      domain.NewStatementSection(),
		Result:      incomeStatement(nodes, totals).Result,
	}
	domain.Walk(nodes, func(n *domain.AccountNode) {
		t, ok := totals[n.AccountID]
		if !ok {
			return
		}
		switch domain.RootCode(n.Code) {
		case domain.RootAssets:
			sheet.Assets.Append(n.Account, t.Balance)
		case domain.RootLiabilities:
			sheet.Liabilities.Append(n.Account, t.Balance)
		case domain.RootEquity:
			sheet.Equity.Append(n.Account, t.Balance)
		}
	})
	sheet.TotalEquity = sheet.Equity.Total.Add(sheet.Result)
	sheet.TotalLiabilitiesAndEquity = sheet.Liabilities.Total.Add(sheet.TotalEquity)
	sheet.Balanced = sheet.Assets.Total.Equal(sheet.TotalLiabilitiesAndEquity)

	if !sheet.Balanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("assets", sheet.Assets.Total.String()),
			slog.String("liabilities_and_equity", sheet.TotalLiabilitiesAndEquity.String()))
	}
	return sheet, nil
}

func incomeStatement(nodes []*domain.AccountNode, totals map[string]domain.AccountTotals) domain.IncomeStatement {
	report := domain.IncomeStatement{
		Revenue:  domain.NewStatementSection(),
		Expenses: domain.NewStatementSection(),
	}
	domain.Walk(nodes, func(n *domain.AccountNode) {
		t, ok := totals[n.AccountID]
		if !ok {
			return
		}
		switch domain.RootCode(n.Code) {
		case domain.RootRevenue:
			report.Revenue.Append(n.Account, t.Balance)
		case domain.RootExpenses:
			report.Expenses.Append(n.Account, t.Balance)
		}
	})
	report.Result = report.Revenue.Total.Sub(report.Expenses.Total)
	return report
}

// loadPeriod returns per-account movement between from and to, leaving out accounts
// that did not move.
func (s *reportingService) loadPeriod(ctx context.Context, from *time.Time, to time.Time) ([]domain.Account, map[string]domain.AccountTotals, error) {
	var accounts []domain.Account
	var closing, opening map[string]domain.AccountTotals

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.accountRepo.ListAllAccounts(gctx, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		closing, err = s.reportingRepo.GetAccountTotals(gctx, to)
		if err != nil {
			return fmt.Errorf("failed to load account totals: %w", err)
		}
		return nil
	})
	if from != nil {
		g.Go(func() error {
			var err error
			opening, err = s.reportingRepo.GetAccountTotals(gctx, from.Add(-time.Nanosecond))
			if err != nil {
				return fmt.Errorf("failed to load opening totals: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load period totals", slog.Time("to", to))
		return nil, nil, err
	}

	for id, before := range opening {
		moved := closing[id].Sub(before)
		if moved.TotalDebit.IsZero() && moved.TotalCredit.IsZero() {
			delete(closing, id)
			continue
		}
		closing[id] = moved
	}
	return accounts, closing, nil
}

func (s *reportingService) load(ctx context.Context, asOf time.Time, acceptsPosting *bool) ([]domain.Account, map[string]domain.AccountTotals, error) {
	accounts, err := s.accountRepo.ListAllAccounts(ctx, nil, acceptsPosting)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for report")
		return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	totals, err := s.reportingRepo.GetAccountTotals(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account totals", slog.Time("as_of", asOf))
		return nil, nil, fmt.Errorf("failed to load account totals: %w", err)
	}
	return accounts, totals, nil
}
