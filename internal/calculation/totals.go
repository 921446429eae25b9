package calculation

import (
	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/shopspring/decimal"
)

// Fixed model parameters shared by the readiness methods
const (
	YearsInRetirement    = 30
	MonteCarloIterations = 1000
	monthsPerYear        = 12
)

var (
	basicIncomeRatio        = decimal.NewFromFloat(0.75)
	intermediateIncomeRatio = decimal.NewFromFloat(0.8)
	advancedIncomeRatio     = decimal.NewFromFloat(0.8)
	safeWithdrawalRate      = decimal.NewFromFloat(0.04)

	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(monthsPerYear)
	thirty  = decimal.NewFromInt(YearsInRetirement)
)

// ProfileTotals are the scalar sums every method works from
type ProfileTotals struct {
	Essential               decimal.Decimal
	Discretionary           decimal.Decimal
	MonthlyExpenses         decimal.Decimal
	Assets                  decimal.Decimal
	GuaranteedMonthlyIncome decimal.Decimal
}

// AggregateProfile reduces a profile to its totals. Absent optional
// income streams count as zero.
func AggregateProfile(profile *domain.FinancialProfile) ProfileTotals {
	essential := profile.Expenses.Essential.Total()
	discretionary := profile.Expenses.Discretionary.Total()
	return ProfileTotals{
		Essential:               essential,
		Discretionary:           discretionary,
		MonthlyExpenses:         essential.Add(discretionary),
		Assets:                  profile.Assets.Total(),
		GuaranteedMonthlyIncome: profile.IncomeSources.GuaranteedMonthly(),
	}
}

// readinessPercent returns numerator/denominator*100. A zero denominator
// yields 100 for a non-negative numerator and 0 otherwise.
func readinessPercent(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		if numerator.IsNegative() {
			return decimal.Zero
		}
		return hundred
	}
	return numerator.Div(denominator).Mul(hundred)
}

func capAtHundred(score decimal.Decimal) decimal.Decimal {
	return decimal.Min(hundred, score)
}
