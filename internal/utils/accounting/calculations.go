package accounting

import (
	"fmt"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the line amount with its balance sign: debits add, credits subtract.
func SignedAmount(line domain.JournalLine) (decimal.Decimal, error) {
	switch line.Type {
	case domain.Debit:
		return line.Amount, nil
	case domain.Credit:
		return line.Amount.Neg(), nil
	}
	return decimal.Zero, fmt.Errorf("unknown line type '%s' for account ID %s", line.Type, line.AccountID)
}

// ValidateEntryBalance checks that the lines of an entry have positive amounts, contain
// both sides and sum to zero once signed.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal entry must have at least two lines")
	}

	sum := decimal.Zero
	var hasDebit, hasCredit bool
	for _, line := range lines {
		if !line.Amount.IsPositive() {
			return fmt.Errorf("line amount must be positive for account ID %s", line.AccountID)
		}
		signed, err := SignedAmount(line)
		if err != nil {
			return err
		}
		hasDebit = hasDebit || line.Type == domain.Debit
		hasCredit = hasCredit || line.Type == domain.Credit
		sum = sum.Add(signed)
	}

	if !hasDebit || !hasCredit {
		return fmt.Errorf("journal entry needs at least one debit and one credit line")
	}
	if !sum.IsZero() {
		return fmt.Errorf("journal entry does not balance: sum is %s", sum.String())
	}
	return nil
}

// SumByAccount folds lines into per-account totals.
func SumByAccount(lines []domain.JournalLine) map[string]domain.AccountTotals {
	debits := make(map[string]decimal.Decimal)
	credits := make(map[string]decimal.Decimal)
	seen := make(map[string]bool)
	for _, line := range lines {
		seen[line.AccountID] = true
		switch line.Type {
		case domain.Debit:
			debits[line.AccountID] = debits[line.AccountID].Add(line.Amount)
		case domain.Credit:
			credits[line.AccountID] = credits[line.AccountID].Add(line.Amount)
		}
	}
	out := make(map[string]domain.AccountTotals, len(seen))
	for id := range seen {
		out[id] = domain.NewAccountTotals(debits[id], credits[id])
	}
	return out
}
