package engine

import (
	"math"
	"testing"

	"github.com/finwell/finance-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundInterestReferenceValue(t *testing.T) {
	// Long-standing regression anchor for the annual schedule.
	got := CompoundInterest(1000, 5, 10, 100, models.FrequencyYearly)
	assert.InDelta(t, 2886.68, got, 0.01)
}

func TestCompoundInterestMonthlyMatchesClosedForm(t *testing.T) {
	got := CompoundInterest(1000, 5, 10, 100, models.FrequencyMonthly)

	r := 5.0 / 100 / 12
	growth := math.Pow(1+r, 120)
	want := 1000*growth + 100*(growth-1)/r
	assert.InDelta(t, want, got, 1e-6)
}

func TestCompoundInterestContributionAddedAfterGrowth(t *testing.T) {
	// A contribution earns nothing in the period it arrives.
	assert.Equal(t, 100.0, CompoundInterest(0, 10, 1, 100, models.FrequencyYearly))
	assert.InDelta(t, 110.0, CompoundInterest(100, 10, 1, 0, models.FrequencyYearly), 1e-9)
}

func TestCompoundInterestDegenerateInput(t *testing.T) {
	assert.Equal(t, 1000.0, CompoundInterest(1000, 5, 0, 100, models.FrequencyMonthly))
	assert.Equal(t, 1000.0, CompoundInterest(1000, 5, -3, 100, models.FrequencyMonthly))
	assert.Equal(t, 0.0, CompoundInterest(math.NaN(), 5, 1, 0, models.FrequencyYearly))
}

func TestLoanPaymentZeroRate(t *testing.T) {
	// Zero rate must not divide by zero.
	require.Equal(t, 100.0, LoanPayment(12000, 0, 10))
}

func TestLoanPaymentStandardAmortization(t *testing.T) {
	// 200k over 30 years at 6% is the textbook 1199.10/month.
	assert.InDelta(t, 1199.10, LoanPayment(200000, 6, 30), 0.01)
}

func TestLoanPaymentDegenerateTerm(t *testing.T) {
	assert.Equal(t, 0.0, LoanPayment(12000, 5, 0))
	assert.Equal(t, 0.0, LoanPayment(12000, 5, -1))
}
