package calculation

import (
	"time"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/shopspring/decimal"
)

// Basic runs the 70-80% rule: 75% of current expenses is needed for
// 30 years and savings are spread evenly over that horizon with no growth.
// Guaranteed income is deliberately ignored.
func Basic(profile *domain.FinancialProfile) domain.RetirementAnalysis {
	return basicAnalysis(profile, time.Now())
}

func basicAnalysis(profile *domain.FinancialProfile, now time.Time) domain.RetirementAnalysis {
	totals := AggregateProfile(profile)

	required := totals.MonthlyExpenses.Mul(basicIncomeRatio)
	totalNeeded := required.Mul(twelve).Mul(thirty)
	score := capAtHundred(readinessPercent(totals.Assets, totalNeeded))
	projected := totals.Assets.Div(thirty).Div(twelve)

	return domain.RetirementAnalysis{
		Method:                 domain.MethodBasic,
		ReadinessScore:         score,
		ProjectedMonthlyIncome: projected,
		RequiredMonthlyIncome:  required,
		Gap:                    required.Sub(projected),
		Recommendations:        basicRecommendations(score),
		CalculatedAt:           now,
	}
}

func basicRecommendations(score decimal.Decimal) []string {
	switch {
	case score.LessThan(decimal.NewFromInt(50)):
		return []string{
			"Consider increasing retirement contributions significantly",
			"Review and reduce discretionary expenses",
			"Explore additional income sources",
		}
	case score.LessThan(decimal.NewFromInt(75)):
		return []string{
			"You are on track but could benefit from increased savings",
			"Consider maximizing 401(k) contributions",
		}
	default:
		return []string{
			"You are well-positioned for retirement",
			"Consider diversifying your investment portfolio",
		}
	}
}
