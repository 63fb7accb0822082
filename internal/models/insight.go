package models

// Impact ranks how much a finding matters.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// InsightCategory groups findings by the area of finances they concern.
type InsightCategory string

const (
	CategorySavings    InsightCategory = "savings"
	CategoryExpense    InsightCategory = "expense"
	CategoryIncome     InsightCategory = "income"
	CategoryInvestment InsightCategory = "investment"
	CategoryDebt       InsightCategory = "debt"
)

// Insight is a single rule-derived finding about a snapshot.
type Insight struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Impact           Impact          `json:"impact"`
	Category         InsightCategory `json:"category"`
	Action           string          `json:"action,omitempty"`
	PotentialSavings float64         `json:"potential_savings,omitempty"`
}

// Totals holds the aggregates shared by the insight rules and the health
// score. Income and Expenses are annualized; Savings, Investments, and
// Debts are point-in-time sums. Ratios are percentages with
// division-by-zero guarded to 0.
type Totals struct {
	Income            float64 `json:"income"`
	Expenses          float64 `json:"expenses"`
	Savings           float64 `json:"savings"`
	Investments       float64 `json:"investments"`
	Debts             float64 `json:"debts"`
	Balance           float64 `json:"balance"`
	SavingsRate       float64 `json:"savings_rate"`
	DebtToIncomeRatio float64 `json:"debt_to_income_ratio"`
}

// HealthAssessment is the aggregate 0-100 view of a snapshot.
type HealthAssessment struct {
	Score           int      `json:"score"`
	Status          string   `json:"status"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}
