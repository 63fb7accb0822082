package engine

import "github.com/finwell/finance-service/internal/models"

// Health score point model. The score starts neutral and moves by fixed
// deltas as ratio thresholds are crossed, clamped to [0,100].
const (
	healthBaseScore = 50

	deltaPositiveBalance = 10
	deltaNegativeBalance = -15
	deltaStrongSavings   = 15
	deltaWeakSavings     = -10
	deltaLowDebt         = 10
	deltaHighDebt        = -15
	deltaHighStress      = -5
	deltaLowStress       = 5

	lowDebtToIncome  = 30.0
	highDebtToIncome = 50.0
	lowStressLevel   = 3
)

// AssessHealth scores a snapshot on a 0-100 scale. Each evaluated
// dimension contributes to exactly one of strengths or weaknesses.
// Degenerate input (zero income, empty collections) leaves every dimension
// unevaluated and returns the neutral score of 50.
func AssessHealth(snap models.FinancialSnapshot, opts AnalyzeOptions) models.HealthAssessment {
	t := Aggregate(snap)

	score := healthBaseScore
	strengths := []string{}
	weaknesses := []string{}
	recommendations := []string{}

	if t.Balance > 0 {
		score += deltaPositiveBalance
		strengths = append(strengths, "Income covers your expenses")
	} else if t.Balance < 0 {
		score += deltaNegativeBalance
		weaknesses = append(weaknesses, "Expenses exceed income")
		recommendations = append(recommendations, "Cut spending or raise income to close the gap")
	}

	if t.Income > 0 {
		if t.SavingsRate > strongSavingsRate {
			score += deltaStrongSavings
			strengths = append(strengths, "Strong savings rate")
		} else if t.SavingsRate < lowSavingsRate {
			score += deltaWeakSavings
			weaknesses = append(weaknesses, "Savings rate below 10%")
			recommendations = append(recommendations, "Increase the share of income you set aside")
		}

		if t.DebtToIncomeRatio < lowDebtToIncome {
			score += deltaLowDebt
			strengths = append(strengths, "Debt burden is manageable")
		} else if t.DebtToIncomeRatio > highDebtToIncome {
			score += deltaHighDebt
			weaknesses = append(weaknesses, "Debt burden is heavy relative to income")
			recommendations = append(recommendations, "Pay down high-interest debt first")
		}
	}

	if opts.StressLevel > highStressLevel {
		score += deltaHighStress
		weaknesses = append(weaknesses, "High stress may drive impulsive spending")
		recommendations = append(recommendations, "Delay non-essential purchases while stressed")
	} else if opts.StressLevel > 0 && opts.StressLevel <= lowStressLevel {
		score += deltaLowStress
		strengths = append(strengths, "Low financial stress")
	}

	score = clampScore(score)
	return models.HealthAssessment{
		Score:           score,
		Status:          healthStatus(score),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func healthStatus(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Average"
	case score >= 20:
		return "Weak"
	default:
		return "Critical"
	}
}
