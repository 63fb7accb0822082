package engine

import (
	"math"

	"github.com/finwell/finance-service/internal/models"
)

// CompoundInterest grows a principal over the given number of years with a
// fixed contribution added at the end of every compounding period, after
// that period's growth has been applied. The ordering matters: a
// contribution earns nothing in the period it arrives. Frequency selects
// the number of compounding periods per year (monthly = 12, anything else
// yearly = 1). Degenerate input (non-finite values, years <= 0) returns
// the sanitized principal unchanged.
func CompoundInterest(principal, annualRatePercent float64, years int, contribution float64, freq models.Frequency) float64 {
	balance := sanitize(principal)
	if years <= 0 {
		return balance
	}

	periodsPerYear := 1
	if freq == models.FrequencyMonthly {
		periodsPerYear = 12
	}
	rate := sanitize(annualRatePercent) / 100 / float64(periodsPerYear)
	contribution = sanitize(contribution)

	for i := 0; i < years*periodsPerYear; i++ {
		balance = balance*(1+rate) + contribution
	}
	return balance
}

// LoanPayment returns the fixed monthly payment for a fully amortizing
// loan. A zero rate degenerates to straight division of the principal over
// the payment count; a non-positive term returns 0.
func LoanPayment(principal, annualRatePercent float64, years int) float64 {
	principal = sanitize(principal)
	payments := float64(years * 12)
	if payments <= 0 {
		return 0
	}

	monthlyRate := sanitize(annualRatePercent) / 100 / 12
	if monthlyRate == 0 {
		return principal / payments
	}

	factor := math.Pow(1+monthlyRate, payments)
	return principal * monthlyRate * factor / (factor - 1)
}
