package compare

import (
	"fmt"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/shopspring/decimal"
)

// divergenceThreshold is the score spread, in points, above which the
// methods are considered to disagree
var divergenceThreshold = decimal.NewFromInt(20)

// ComparisonResult is one method's outcome with its deltas from the base method
type ComparisonResult struct {
	Method   domain.Method              `json:"method"`
	Title    string                     `json:"title"`
	Analysis *domain.RetirementAnalysis `json:"-"`

	ReadinessScore         decimal.Decimal `json:"readinessScore"`
	ProjectedMonthlyIncome decimal.Decimal `json:"projectedMonthlyIncome"`
	RequiredMonthlyIncome  decimal.Decimal `json:"requiredMonthlyIncome"`
	Gap                    decimal.Decimal `json:"gap"`

	Simulation *domain.SimulationStats `json:"simulation,omitempty"`

	// Comparison to base
	ScoreDiffFromBase     decimal.Decimal `json:"scoreDiffFromBase"`
	ProjectedDiffFromBase decimal.Decimal `json:"projectedDiffFromBase"`
}

// ComparisonSet holds every method's result for one profile
type ComparisonSet struct {
	BaseMethod         domain.Method      `json:"baseMethod"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`

	ScoreSpread   decimal.Decimal `json:"scoreSpread"`
	HighestMethod domain.Method   `json:"highestMethod"`
	LowestMethod  domain.Method   `json:"lowestMethod"`

	Recommendations []string `json:"recommendations"`
	ProfilePath     string   `json:"profilePath,omitempty"`
}

// All returns the base result followed by the alternatives
func (cs *ComparisonSet) All() []ComparisonResult {
	out := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		out = append(out, *cs.BaseResult)
	}
	return append(out, cs.AlternativeResults...)
}

// Analyses returns the underlying analyses in the same order as All
func (cs *ComparisonSet) Analyses() []domain.RetirementAnalysis {
	var out []domain.RetirementAnalysis
	for _, r := range cs.All() {
		if r.Analysis != nil {
			out = append(out, *r.Analysis)
		}
	}
	return out
}

// NewComparisonResult extracts the display metrics from an analysis
func NewComparisonResult(a *domain.RetirementAnalysis) ComparisonResult {
	return ComparisonResult{
		Method:                 a.Method,
		Title:                  a.Method.Title(),
		Analysis:               a,
		ReadinessScore:         a.ReadinessScore,
		ProjectedMonthlyIncome: a.ProjectedMonthlyIncome,
		RequiredMonthlyIncome:  a.RequiredMonthlyIncome,
		Gap:                    a.Gap,
		Simulation:             a.Simulation,
	}
}

// CalculateComparison fills in the deltas of result relative to base
func CalculateComparison(result, base ComparisonResult) ComparisonResult {
	result.ScoreDiffFromBase = result.ReadinessScore.Sub(base.ReadinessScore)
	result.ProjectedDiffFromBase = result.ProjectedMonthlyIncome.Sub(base.ProjectedMonthlyIncome)
	return result
}

// summarize sets the spread and extremes across every result
func (cs *ComparisonSet) summarize() {
	all := cs.All()
	if len(all) == 0 {
		return
	}
	highest, lowest := all[0], all[0]
	for _, r := range all[1:] {
		if r.ReadinessScore.GreaterThan(highest.ReadinessScore) {
			highest = r
		}
		if r.ReadinessScore.LessThan(lowest.ReadinessScore) {
			lowest = r
		}
	}
	cs.HighestMethod = highest.Method
	cs.LowestMethod = lowest.Method
	cs.ScoreSpread = highest.ReadinessScore.Sub(lowest.ReadinessScore)
}

// GenerateRecommendations leads with cross-method observations and then
// lists each method's advice once, in method order
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}
	all := compSet.All()
	if len(all) == 0 {
		return recommendations
	}

	if len(all) > 1 {
		var highest, lowest ComparisonResult
		for _, r := range all {
			if r.Method == compSet.HighestMethod {
				highest = r
			}
			if r.Method == compSet.LowestMethod {
				lowest = r
			}
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Most optimistic: %s at %s%%", highest.Title, highest.ReadinessScore.StringFixed(1)),
			fmt.Sprintf("Most conservative: %s at %s%%", lowest.Title, lowest.ReadinessScore.StringFixed(1)))

		if compSet.ScoreSpread.GreaterThan(divergenceThreshold) {
			recommendations = append(recommendations,
				fmt.Sprintf("Methods disagree by %s points - plan against the conservative estimate",
					compSet.ScoreSpread.StringFixed(1)))
		}
	}

	shortfalls := 0
	for _, r := range all {
		if r.Gap.IsPositive() {
			shortfalls++
		}
	}
	if shortfalls == len(all) {
		recommendations = append(recommendations, "Every method projects a monthly income shortfall")
	}

	seen := map[string]bool{}
	for _, r := range all {
		if r.Analysis == nil {
			continue
		}
		for _, rec := range r.Analysis.Recommendations {
			if !seen[rec] {
				seen[rec] = true
				recommendations = append(recommendations, rec)
			}
		}
	}

	return recommendations
}
