package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Method identifies one of the readiness calculation procedures
type Method string

const (
	MethodBasic        Method = "basic"
	MethodIntermediate Method = "intermediate"
	MethodAdvanced     Method = "advanced"
)

// AllMethods returns the methods in dashboard order
func AllMethods() []Method {
	return []Method{MethodBasic, MethodIntermediate, MethodAdvanced}
}

// ParseMethod converts user input into a Method
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodBasic:
		return MethodBasic, nil
	case MethodIntermediate:
		return MethodIntermediate, nil
	case MethodAdvanced:
		return MethodAdvanced, nil
	default:
		return "", fmt.Errorf("unknown analysis method %q (valid: basic, intermediate, advanced)", s)
	}
}

// Title returns the display name used in reports and the dashboard
func (m Method) Title() string {
	switch m {
	case MethodBasic:
		return "Basic (70-80% Rule)"
	case MethodIntermediate:
		return "Intermediate (4% Rule)"
	case MethodAdvanced:
		return "Advanced (Monte Carlo)"
	default:
		return string(m)
	}
}

// RetirementAnalysis is the result of running one method against a profile
type RetirementAnalysis struct {
	ID                     string           `json:"id,omitempty"`
	Method                 Method           `json:"method"`
	ReadinessScore         decimal.Decimal  `json:"readinessScore"`
	ProjectedMonthlyIncome decimal.Decimal  `json:"projectedMonthlyIncome"`
	RequiredMonthlyIncome  decimal.Decimal  `json:"requiredMonthlyIncome"`
	Gap                    decimal.Decimal  `json:"gap"` // positive = shortfall
	Recommendations        []string         `json:"recommendations"`
	CalculatedAt           time.Time        `json:"calculatedAt"`
	Simulation             *SimulationStats `json:"simulation,omitempty"`
}

// HasShortfall reports whether required income exceeds projected income
func (a *RetirementAnalysis) HasShortfall() bool {
	return a.Gap.GreaterThan(decimal.Zero)
}

// PercentileRanges holds the 10th-90th percentiles of a distribution
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// SimulationStats describes the Monte Carlo run behind an advanced analysis
type SimulationStats struct {
	Iterations          int              `json:"iterations"`
	Years               int              `json:"years"`
	Seed                int64            `json:"seed"`
	SuccessfulTrials    int              `json:"successfulTrials"`
	EndingBalances      PercentileRanges `json:"endingBalances"` // surviving trials only
	MeanReturnRate      decimal.Decimal  `json:"meanReturnRate"`
	ReturnRateStdDev    decimal.Decimal  `json:"returnRateStdDev"`
	MeanInflationRate   decimal.Decimal  `json:"meanInflationRate"`
	InflationRateStdDev decimal.Decimal  `json:"inflationRateStdDev"`
}
