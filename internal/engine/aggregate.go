// Package engine holds the pure computation core: snapshot aggregation,
// multi-year projections, the insight rule battery, the health score, and
// the standalone interest calculators. Everything in this package is
// synchronous, deterministic, and free of I/O, logging, and shared state;
// callers may invoke any function concurrently.
//
// Unit convention: flow figures (income, expenses) are annualized totals.
// Aggregate and AnnualBaseline both annualize per-frequency line items, so
// the insight rules and the projection read one snapshot in the same units.
// Balance collections (savings, investments, debts) are point-in-time sums
// and are never annualized.
package engine

import (
	"math"

	"github.com/finwell/finance-service/internal/models"
)

// Aggregate computes fresh totals and ratios from a snapshot. Flow
// collections (incomes, expenses) are annualized from their frequency;
// balance collections are summed as given. Non-numeric, NaN, and negative
// values count as 0; ratios guard division by zero and report 0 instead of
// NaN or Inf.
func Aggregate(snap models.FinancialSnapshot) models.Totals {
	t := models.Totals{
		Income:      annualize(snap.Incomes),
		Expenses:    annualize(snap.Expenses),
		Savings:     sumValues(snap.Savings),
		Investments: sumValues(snap.Investments),
		Debts:       sumValues(snap.Debts),
	}
	t.Balance = t.Income - t.Expenses
	if t.Income > 0 {
		t.SavingsRate = t.Balance / t.Income * 100
		t.DebtToIncomeRatio = t.Debts / t.Income * 100
	}
	return t
}

// Baseline is the annualized starting state for a projection run.
type Baseline struct {
	Income      float64
	Expenses    float64
	Cash        float64
	Investments float64
	Debt        float64
}

// AnnualBaseline derives a projection baseline from a snapshot. Flow
// collections (incomes, expenses) are annualized from their frequency;
// balance collections (savings, investments, debts) are point-in-time
// values summed as given.
func AnnualBaseline(snap models.FinancialSnapshot) Baseline {
	return Baseline{
		Income:      annualize(snap.Incomes),
		Expenses:    annualize(snap.Expenses),
		Cash:        sumValues(snap.Savings),
		Investments: sumValues(snap.Investments),
		Debt:        sumValues(snap.Debts),
	}
}

func sumValues(items []models.FinancialLineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Value.Float()
	}
	return total
}

func annualize(items []models.FinancialLineItem) float64 {
	var total float64
	for _, li := range items {
		total += annualValue(li)
	}
	return total
}

// annualValue is the annualized figure for one flow line item.
// Non-recurring and one-off items count once.
func annualValue(li models.FinancialLineItem) float64 {
	v := li.Value.Float()
	if !li.Recurring() || li.Frequency == models.FrequencyOnce {
		return v
	}
	return v * li.Frequency.PerYear()
}

// sanitize clamps NaN and infinite parameter values to 0 so malformed
// input degrades to zero-valued output instead of propagating.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
