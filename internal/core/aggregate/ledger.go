package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

// MonthlySummary sums income and expense of the transactions dated on or
// after monthStart. Future dated rows are not expected and are included.
func MonthlySummary(transactions []*domain.Transaction, monthStart calendar.Date) domain.LedgerSummary {
	income := decimal.Zero
	expense := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, tx := range transactions {
		if tx.Date.Before(monthStart) {
			continue
		}
		switch tx.Type {
		case domain.TransactionIncome:
			income = income.Add(tx.Amount)
		case domain.TransactionExpense:
			expense = expense.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}

	return domain.LedgerSummary{
		MonthStart: monthStart,
		Income:     income,
		Expense:    expense,
		Balance:    income.Sub(expense),
		ByCategory: sortCategories(byCategory),
	}
}

// sortCategories orders by amount descending, then by name.
func sortCategories(m map[string]decimal.Decimal) []domain.CategoryAmount {
	out := make([]domain.CategoryAmount, 0, len(m))
	for name, amount := range m {
		out = append(out, domain.CategoryAmount{Category: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
