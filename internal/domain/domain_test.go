package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestExpenseAndAssetTotals(t *testing.T) {
	expenses := MonthlyExpenses{
		Essential:     EssentialExpenses{Housing: dec(2000), Utilities: dec(300), Food: dec(600), Healthcare: dec(400), Insurance: dec(300), DebtPayments: dec(500)},
		Discretionary: DiscretionaryExpenses{Entertainment: dec(300), Travel: dec(400), Dining: dec(500), Hobbies: dec(200), Other: dec(300)},
	}
	assert.True(t, expenses.Essential.Total().Equal(dec(4100)))
	assert.True(t, expenses.Discretionary.Total().Equal(dec(1700)))
	assert.True(t, expenses.Total().Equal(dec(5800)))

	assets := Assets{Retirement401k: dec(500000), IRATraditional: dec(200000), IRARoth: dec(100000), Brokerage: dec(100000), Savings: dec(50000), RealEstate: dec(200000), Other: dec(50000)}
	assert.True(t, assets.Total().Equal(dec(1200000)))

	assert.True(t, MonthlyExpenses{}.Total().IsZero())
	assert.True(t, Assets{}.Total().IsZero())
}

func TestGuaranteedMonthly(t *testing.T) {
	income := IncomeSources{
		CurrentSalary:      dec(100000),
		SocialSecuritySelf: SocialSecurityClaim{ClaimAge: 67, MonthlyBenefit: dec(2000)},
	}
	assert.True(t, income.GuaranteedMonthly().Equal(dec(2000)), "salary is not guaranteed retirement income")

	pension, rental, other := dec(800), dec(500), dec(250)
	income.SocialSecuritySpouse = &SocialSecurityClaim{ClaimAge: 65, MonthlyBenefit: dec(1200)}
	income.Pension = &pension
	income.RentalIncome = &rental
	income.OtherIncome = &other
	assert.True(t, income.GuaranteedMonthly().Equal(dec(4750)))
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"basic", MethodBasic},
		{" Intermediate ", MethodIntermediate},
		{"ADVANCED", MethodAdvanced},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMethod("monte-carlo")
	assert.ErrorContains(t, err, "unknown analysis method")
}

func TestMethodTitle(t *testing.T) {
	assert.Equal(t, "Basic (70-80% Rule)", MethodBasic.Title())
	assert.Equal(t, "Intermediate (4% Rule)", MethodIntermediate.Title())
	assert.Equal(t, "Advanced (Monte Carlo)", MethodAdvanced.Title())
	assert.Equal(t, "custom", Method("custom").Title())
	assert.Equal(t, []Method{MethodBasic, MethodIntermediate, MethodAdvanced}, AllMethods())
}

func TestHasShortfall(t *testing.T) {
	assert.True(t, (&RetirementAnalysis{Gap: dec(10)}).HasShortfall())
	assert.False(t, (&RetirementAnalysis{Gap: dec(-10)}).HasShortfall())
	assert.False(t, (&RetirementAnalysis{}).HasShortfall())
}
