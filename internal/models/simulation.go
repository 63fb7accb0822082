package models

// SimulationParameters configures a single projection run. All rate fields
// are percentages (5 means 5%).
type SimulationParameters struct {
	Name             string  `json:"name"`
	IncomeGrowth     float64 `json:"income_growth"`
	ExpenseReduction float64 `json:"expense_reduction"`
	SavingsRate      float64 `json:"savings_rate"`
	InvestmentReturn float64 `json:"investment_return"`
	InflationRate    float64 `json:"inflation_rate"`
	Years            int     `json:"years"`
}

// ProjectionResult holds parallel series indexed by simulation year.
// All slices have equal length and values are rounded to whole currency
// units at recording time.
type ProjectionResult struct {
	Years    []int     `json:"years"`
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
	Savings  []float64 `json:"savings"`
	NetWorth []float64 `json:"net_worth"`
}

// Scenario is a named, persisted parameter set belonging to a user.
type Scenario struct {
	ID         int64                `json:"id"`
	UserID     int64                `json:"user_id"`
	Parameters SimulationParameters `json:"parameters"`
	CreatedAt  string               `json:"created_at"`
	UpdatedAt  string               `json:"updated_at"`
}
