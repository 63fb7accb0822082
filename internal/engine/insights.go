package engine

import (
	"fmt"

	"github.com/finwell/finance-service/internal/models"
)

// Insight rule thresholds, all percentages unless noted.
const (
	lowSavingsRate      = 10.0
	strongSavingsRate   = 20.0
	housingIncomeShare  = 33.0
	debtIncomeShare     = 36.0
	topCategoryShare    = 30.0
	highStressLevel     = 7   // 1-10 scale, strictly above fires the rule
	emergencyFundMonths = 3.0 // months of expenses
)

// AnalyzeOptions carries signals that come from outside the snapshot.
type AnalyzeOptions struct {
	// StressLevel is a 1-10 self-reported mood signal. Zero means the
	// caller did not supply one.
	StressLevel int
}

// Analyze evaluates the fixed rule battery against a snapshot and returns
// findings in rule evaluation order. The result is computed fresh on every
// call; any memoization belongs to the caller, not here. An empty snapshot
// produces no findings.
func Analyze(snap models.FinancialSnapshot, opts AnalyzeOptions) []models.Insight {
	insights := []models.Insight{}
	if emptySnapshot(snap) {
		return insights
	}

	t := Aggregate(snap)
	monthlyExpenses := t.Expenses / 12

	if t.Balance < 0 {
		insights = append(insights, models.Insight{
			ID:    "negative-balance",
			Title: "Spending exceeds income",
			Description: fmt.Sprintf(
				"You are spending %.0f more than you earn per year. Cutting expenses or raising income should be the first priority.",
				-t.Balance),
			Impact:   models.ImpactHigh,
			Category: models.CategoryExpense,
			Action:   "Review your largest expense categories for cuts",
		})
	}

	// The 10-20 band is deliberately silent: acceptable but unremarkable.
	if t.Income > 0 && t.SavingsRate < lowSavingsRate {
		insights = append(insights, models.Insight{
			ID:    "low-savings-rate",
			Title: "Low savings rate",
			Description: fmt.Sprintf(
				"You save %.1f%% of your income. Aim for at least %.0f%% by setting aside a little more each month.",
				t.SavingsRate, lowSavingsRate),
			Impact:   models.ImpactMedium,
			Category: models.CategorySavings,
			Action:   "Automate a small transfer to savings on payday",
		})
	} else if t.Income > 0 && t.SavingsRate >= strongSavingsRate {
		insights = append(insights, models.Insight{
			ID:    "strong-savings-rate",
			Title: "Excellent savings rate",
			Description: fmt.Sprintf(
				"You save %.1f%% of your income. Consider putting part of that surplus to work in investments.",
				t.SavingsRate),
			Impact:   models.ImpactLow,
			Category: models.CategorySavings,
			Action:   "Invest the surplus beyond your emergency fund",
		})
	}

	if t.Income > 0 {
		housing := sumTagged(snap.Expenses, models.TagHousing)
		if limit := t.Income * housingIncomeShare / 100; housing > limit {
			insights = append(insights, models.Insight{
				ID:    "housing-cost",
				Title: "Housing costs are high",
				Description: fmt.Sprintf(
					"Housing takes %.0f%% of your income; the usual guideline is %.0f%%.",
					housing/t.Income*100, housingIncomeShare),
				Impact:           models.ImpactHigh,
				Category:         models.CategoryExpense,
				Action:           "Consider renegotiating rent or refinancing",
				PotentialSavings: housing - limit,
			})
		}
	}

	if t.Income > 0 && t.DebtToIncomeRatio > debtIncomeShare {
		insights = append(insights, models.Insight{
			ID:    "debt-load",
			Title: "Debt above affordability threshold",
			Description: fmt.Sprintf(
				"Your debt equals %.0f%% of your annual income, above the %.0f%% affordability threshold.",
				t.DebtToIncomeRatio, debtIncomeShare),
			Impact:   models.ImpactHigh,
			Category: models.CategoryDebt,
			Action:   "Prioritize paying down the highest-rate debt",
		})
	}

	if opts.StressLevel > highStressLevel {
		insights = append(insights, models.Insight{
			ID:          "emotional-spending",
			Title:       "Elevated stress",
			Description: "High stress levels often lead to impulsive spending. Consider a 24-hour rule before non-essential purchases.",
			Impact:      models.ImpactMedium,
			Category:    models.CategoryExpense,
			Action:      "Pause large purchases until stress subsides",
		})
	}

	if len(snap.Incomes) == 1 {
		insights = append(insights, models.Insight{
			ID:          "single-income",
			Title:       "Single source of income",
			Description: "All of your income comes from one source. A side income would reduce concentration risk.",
			Impact:      models.ImpactMedium,
			Category:    models.CategoryIncome,
			Action:      "Explore a secondary income stream",
		})
	}

	if fund, ok := emergencyFund(snap.Savings); !ok {
		insights = append(insights, models.Insight{
			ID:          "no-emergency-fund",
			Title:       "No emergency fund",
			Description: "You have no dedicated emergency fund. Start one before investing elsewhere.",
			Impact:      models.ImpactHigh,
			Category:    models.CategorySavings,
			Action:      "Open a dedicated emergency savings account",
		})
	} else if target := monthlyExpenses * emergencyFundMonths; fund < target {
		insights = append(insights, models.Insight{
			ID:    "thin-emergency-fund",
			Title: "Emergency fund below target",
			Description: fmt.Sprintf(
				"Your emergency fund covers less than %.0f months of expenses. Topping it up by %.0f would reach the target.",
				emergencyFundMonths, target-fund),
			Impact:   models.ImpactMedium,
			Category: models.CategorySavings,
			Action:   "Top up the emergency fund before other goals",
		})
	}

	if name, share := topExpenseCategory(snap.Expenses, t.Expenses); share > topCategoryShare {
		insights = append(insights, models.Insight{
			ID:    "top-expense-category",
			Title: "One category dominates spending",
			Description: fmt.Sprintf(
				"%q accounts for %.0f%% of your total expenses.", name, share),
			Impact:   models.ImpactMedium,
			Category: models.CategoryExpense,
			Action:   fmt.Sprintf("Look for savings within %q first", name),
		})
	}

	if t.Savings > 0 && t.Investments == 0 {
		insights = append(insights, models.Insight{
			ID:          "no-investments",
			Title:       "Savings sitting idle",
			Description: "You have savings but no investments. Inflation erodes idle cash over time.",
			Impact:      models.ImpactMedium,
			Category:    models.CategoryInvestment,
			Action:      "Consider a diversified low-cost index fund",
		})
	}

	return insights
}

func emptySnapshot(snap models.FinancialSnapshot) bool {
	return len(snap.Incomes) == 0 && len(snap.Expenses) == 0 &&
		len(snap.Savings) == 0 && len(snap.Investments) == 0 &&
		len(snap.Debts) == 0 && len(snap.Assets) == 0 && len(snap.Liabilities) == 0
}

// sumTagged totals the annualized value of flow items carrying the tag.
func sumTagged(items []models.FinancialLineItem, tag models.Tag) float64 {
	var total float64
	for _, li := range items {
		if li.EffectiveTag() == tag {
			total += annualValue(li)
		}
	}
	return total
}

// emergencyFund returns the combined value of emergency-tagged savings and
// whether any such item exists.
func emergencyFund(savings []models.FinancialLineItem) (float64, bool) {
	var total float64
	found := false
	for _, li := range savings {
		if li.EffectiveTag() == models.TagEmergencyFund {
			total += li.Value.Float()
			found = true
		}
	}
	return total, found
}

// topExpenseCategory returns the display name and percentage share of the
// largest expense category. Share is 0 when there are no expenses.
func topExpenseCategory(expenses []models.FinancialLineItem, total float64) (string, float64) {
	if total <= 0 {
		return "", 0
	}
	sums := make(map[string]float64, len(expenses))
	order := make([]string, 0, len(expenses))
	for _, li := range expenses {
		if _, seen := sums[li.Category]; !seen {
			order = append(order, li.Category)
		}
		sums[li.Category] += annualValue(li)
	}
	var topName string
	var topSum float64
	for _, name := range order {
		if sums[name] > topSum {
			topName, topSum = name, sums[name]
		}
	}
	return topName, topSum / total * 100
}
