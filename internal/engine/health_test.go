package engine

import (
	"testing"

	"github.com/finwell/finance-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessHealthNeutralOnEmptySnapshot(t *testing.T) {
	got := AssessHealth(models.FinancialSnapshot{}, AnalyzeOptions{})
	assert.Equal(t, 50, got.Score)
	assert.Equal(t, "Average", got.Status)
	assert.Empty(t, got.Strengths)
	assert.Empty(t, got.Weaknesses)
	assert.Empty(t, got.Recommendations)
}

func TestAssessHealthAllPositiveSignals(t *testing.T) {
	snap := models.FinancialSnapshot{
		Incomes: []models.FinancialLineItem{
			item(6000, "Salary", models.TagSalary),
			item(4000, "Dividends", models.TagOther),
		},
		Expenses: []models.FinancialLineItem{item(7000, "Living", models.TagOther)},
	}
	got := AssessHealth(snap, AnalyzeOptions{StressLevel: 2})

	// 50 +10 balance +15 savings rate +10 debt +5 stress.
	assert.Equal(t, 90, got.Score)
	assert.Equal(t, "Excellent", got.Status)
	assert.Len(t, got.Strengths, 4)
	assert.Empty(t, got.Weaknesses)
}

func TestAssessHealthAllNegativeSignals(t *testing.T) {
	snap := models.FinancialSnapshot{
		Incomes:  []models.FinancialLineItem{item(10000, "Salary", models.TagSalary)},
		Expenses: []models.FinancialLineItem{item(12000, "Living", models.TagOther)},
		Debts:    []models.FinancialLineItem{item(6000, "Cards", models.TagDebtPayment)},
	}
	got := AssessHealth(snap, AnalyzeOptions{StressLevel: 9})

	// 50 -15 balance -10 savings rate -15 debt -5 stress.
	assert.Equal(t, 5, got.Score)
	assert.Equal(t, "Critical", got.Status)
	assert.Len(t, got.Weaknesses, 4)
	assert.Empty(t, got.Strengths)
	assert.Len(t, got.Recommendations, 4)
}

func TestAssessHealthScoreStaysInBounds(t *testing.T) {
	snaps := []models.FinancialSnapshot{
		{},
		{Incomes: []models.FinancialLineItem{item(1, "a", models.TagOther)}},
		{
			Incomes:  []models.FinancialLineItem{item(100000, "Salary", models.TagSalary)},
			Expenses: []models.FinancialLineItem{item(1, "Living", models.TagOther)},
		},
		{
			Incomes:  []models.FinancialLineItem{item(1, "Salary", models.TagSalary)},
			Expenses: []models.FinancialLineItem{item(100000, "Living", models.TagOther)},
			Debts:    []models.FinancialLineItem{item(100000, "Cards", models.TagDebtPayment)},
		},
	}
	for _, snap := range snaps {
		for stress := 0; stress <= 10; stress++ {
			got := AssessHealth(snap, AnalyzeOptions{StressLevel: stress})
			assert.GreaterOrEqual(t, got.Score, 0)
			assert.LessOrEqual(t, got.Score, 100)
		}
	}
}

func TestAssessHealthStatusBreakpoints(t *testing.T) {
	cases := []struct {
		score  int
		status string
	}{
		{100, "Excellent"}, {80, "Excellent"},
		{79, "Good"}, {60, "Good"},
		{59, "Average"}, {40, "Average"},
		{39, "Weak"}, {20, "Weak"},
		{19, "Critical"}, {0, "Critical"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, healthStatus(tc.score), "score %d", tc.score)
	}
}

func TestAssessHealthClamping(t *testing.T) {
	assert.Equal(t, 0, clampScore(-20))
	assert.Equal(t, 100, clampScore(130))
	assert.Equal(t, 55, clampScore(55))
}

func TestAssessHealthIdempotent(t *testing.T) {
	snap := models.FinancialSnapshot{
		Incomes:  []models.FinancialLineItem{item(10000, "Salary", models.TagSalary)},
		Expenses: []models.FinancialLineItem{item(9000, "Living", models.TagOther)},
		Debts:    []models.FinancialLineItem{item(4000, "Loan", models.TagDebtPayment)},
	}
	first := AssessHealth(snap, AnalyzeOptions{StressLevel: 5})
	second := AssessHealth(snap, AnalyzeOptions{StressLevel: 5})
	require.Equal(t, first, second)
}
