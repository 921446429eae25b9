package calculation

import (
	"time"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/shopspring/decimal"
)

// Intermediate runs the 4% safe withdrawal rule against 80% of current
// expenses, adding every guaranteed income stream to the portfolio draw.
func Intermediate(profile *domain.FinancialProfile) domain.RetirementAnalysis {
	return intermediateAnalysis(profile, time.Now())
}

func intermediateAnalysis(profile *domain.FinancialProfile, now time.Time) domain.RetirementAnalysis {
	totals := AggregateProfile(profile)

	required := totals.MonthlyExpenses.Mul(intermediateIncomeRatio)
	monthlyWithdrawal := totals.Assets.Mul(safeWithdrawalRate).Div(twelve)
	projected := monthlyWithdrawal.Add(totals.GuaranteedMonthlyIncome)
	score := capAtHundred(readinessPercent(projected, required))

	return domain.RetirementAnalysis{
		Method:                 domain.MethodIntermediate,
		ReadinessScore:         score,
		ProjectedMonthlyIncome: projected,
		RequiredMonthlyIncome:  required,
		Gap:                    required.Sub(projected),
		Recommendations:        intermediateRecommendations(score),
		CalculatedAt:           now,
	}
}

func intermediateRecommendations(score decimal.Decimal) []string {
	switch {
	case score.LessThan(decimal.NewFromInt(60)):
		return []string{
			"Significant savings gap detected - consider delaying retirement",
			"Increase annual contributions by at least 20%",
			"Review investment allocation for better returns",
		}
	case score.LessThan(decimal.NewFromInt(85)):
		return []string{
			"Close to target - maintain current savings rate",
			"Consider part-time work in early retirement",
			"Optimize Social Security claiming strategy",
		}
	default:
		return []string{
			"Excellent retirement readiness",
			"Consider tax-efficient withdrawal strategies",
			"Review estate planning options",
		}
	}
}
