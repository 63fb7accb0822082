package engine

import (
	"math"

	"github.com/finwell/finance-service/internal/models"
)

// Seed figures for the quick simulation, which runs without a snapshot.
// Annual amounts.
const (
	quickSeedIncome   = 50000.0
	quickSeedExpenses = 40000.0
	quickSeedSavings  = 10000.0
)

// Years after which the quick simulation stops applying the expense
// reduction effort and lets inflation take over.
const quickReductionYears = 5

// Project simulates the baseline forward year by year under the given
// parameters. Income and expenses grow geometrically, surplus is split
// between cash and investments by the savings rate, the whole investment
// pool compounds, and a deficit drains cash before accruing as debt.
// Recorded values are rounded to whole currency units; internal state
// keeps full precision between iterations. Years <= 0 yields empty
// series. Project never panics on degenerate numeric input.
func Project(base Baseline, params models.SimulationParameters) models.ProjectionResult {
	res := emptyResult()
	if params.Years <= 0 {
		return res
	}

	income := sanitize(base.Income)
	expenses := sanitize(base.Expenses)
	cash := sanitize(base.Cash)
	investments := sanitize(base.Investments)
	debt := sanitize(base.Debt)

	incomeGrowth := sanitize(params.IncomeGrowth)
	expenseReduction := sanitize(params.ExpenseReduction)
	savingsRate := sanitize(params.SavingsRate)
	investmentReturn := sanitize(params.InvestmentReturn)
	inflationRate := sanitize(params.InflationRate)

	for year := 1; year <= params.Years; year++ {
		income *= 1 + incomeGrowth/100
		expenses *= 1 + (inflationRate-expenseReduction)/100

		surplus := income - expenses
		if surplus >= 0 {
			toInvestments := surplus * savingsRate / 100
			cash += surplus - toInvestments
			investments += toInvestments
			// The entire pool compounds, not just this year's contribution.
			investments *= 1 + investmentReturn/100
		} else {
			cash += surplus
			if cash < 0 {
				debt += -cash
				cash = 0
			}
		}

		netWorth := cash + investments - debt
		res.Years = append(res.Years, year)
		res.Income = append(res.Income, math.Round(income))
		res.Expenses = append(res.Expenses, math.Round(expenses))
		res.Savings = append(res.Savings, math.Round(cash))
		res.NetWorth = append(res.NetWorth, math.Round(netWorth))
	}
	return res
}

// QuickProject runs the seed-baseline variant used for parameter
// exploration without user data. It differs from Project deliberately:
// the expense reduction applies only for the first five years with
// inflation-only growth afterwards, and the investment return compounds
// only the portion of net worth beyond the cash savings figure. The two
// variants are kept as separate functions because they model different
// products, not because one is a draft of the other.
func QuickProject(params models.SimulationParameters) models.ProjectionResult {
	res := emptyResult()
	if params.Years <= 0 {
		return res
	}

	income := quickSeedIncome
	expenses := quickSeedExpenses
	savings := quickSeedSavings
	netWorth := savings

	incomeGrowth := sanitize(params.IncomeGrowth)
	expenseReduction := sanitize(params.ExpenseReduction)
	savingsRate := sanitize(params.SavingsRate)
	investmentReturn := sanitize(params.InvestmentReturn)
	inflationRate := sanitize(params.InflationRate)

	for year := 1; year <= params.Years; year++ {
		income *= 1 + incomeGrowth/100
		if year <= quickReductionYears {
			expenses *= 1 - expenseReduction/100
		} else {
			expenses *= 1 + inflationRate/100
		}

		surplus := income - expenses
		if surplus >= 0 {
			toInvested := surplus * savingsRate / 100
			savings += surplus - toInvested
			netWorth += surplus
		} else {
			savings += surplus
			if savings < 0 {
				savings = 0
			}
			netWorth += surplus
		}

		// Only the invested share beyond the cash figure earns the return.
		if invested := netWorth - savings; invested > 0 {
			netWorth = savings + invested*(1+investmentReturn/100)
		}

		res.Years = append(res.Years, year)
		res.Income = append(res.Income, math.Round(income))
		res.Expenses = append(res.Expenses, math.Round(expenses))
		res.Savings = append(res.Savings, math.Round(savings))
		res.NetWorth = append(res.NetWorth, math.Round(netWorth))
	}
	return res
}

func emptyResult() models.ProjectionResult {
	return models.ProjectionResult{
		Years:    []int{},
		Income:   []float64{},
		Expenses: []float64{},
		Savings:  []float64{},
		NetWorth: []float64{},
	}
}
