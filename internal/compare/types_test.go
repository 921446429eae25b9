package compare

import (
	"testing"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisFor(method domain.Method, score, projected, required int64, recs ...string) *domain.RetirementAnalysis {
	p := decimal.NewFromInt(projected)
	r := decimal.NewFromInt(required)
	return &domain.RetirementAnalysis{
		Method:                 method,
		ReadinessScore:         decimal.NewFromInt(score),
		ProjectedMonthlyIncome: p,
		RequiredMonthlyIncome:  r,
		Gap:                    r.Sub(p),
		Recommendations:        recs,
	}
}

func buildSet(analyses ...*domain.RetirementAnalysis) *ComparisonSet {
	base := NewComparisonResult(analyses[0])
	set := &ComparisonSet{BaseMethod: base.Method, BaseResult: &base}
	for _, a := range analyses[1:] {
		set.AlternativeResults = append(set.AlternativeResults, CalculateComparison(NewComparisonResult(a), base))
	}
	set.summarize()
	set.Recommendations = GenerateRecommendations(set)
	return set
}

func TestCalculateComparison(t *testing.T) {
	base := NewComparisonResult(analysisFor(domain.MethodBasic, 60, 3000, 4000))
	alt := CalculateComparison(NewComparisonResult(analysisFor(domain.MethodIntermediate, 75, 3500, 4200)), base)

	assert.Equal(t, "Intermediate (4% Rule)", alt.Title)
	assert.True(t, alt.ScoreDiffFromBase.Equal(decimal.NewFromInt(15)))
	assert.True(t, alt.ProjectedDiffFromBase.Equal(decimal.NewFromInt(500)))
	assert.True(t, alt.Gap.Equal(decimal.NewFromInt(700)))
}

func TestComparisonSet_Summary(t *testing.T) {
	set := buildSet(
		analysisFor(domain.MethodBasic, 60, 3000, 4000),
		analysisFor(domain.MethodIntermediate, 90, 5000, 4200),
		analysisFor(domain.MethodAdvanced, 40, 2000, 4500),
	)

	assert.Equal(t, domain.MethodIntermediate, set.HighestMethod)
	assert.Equal(t, domain.MethodAdvanced, set.LowestMethod)
	assert.True(t, set.ScoreSpread.Equal(decimal.NewFromInt(50)))

	all := set.All()
	require.Len(t, all, 3)
	assert.Equal(t, domain.MethodBasic, all[0].Method)
	assert.Len(t, set.Analyses(), 3)
}

func TestGenerateRecommendations(t *testing.T) {
	t.Run("divergent methods", func(t *testing.T) {
		set := buildSet(
			analysisFor(domain.MethodBasic, 60, 3000, 4000, "save more", "cut travel"),
			analysisFor(domain.MethodAdvanced, 90, 5000, 4500, "save more", "stay diversified"),
		)

		assert.Equal(t, []string{
			"Most optimistic: Advanced (Monte Carlo) at 90.0%",
			"Most conservative: Basic (70-80% Rule) at 60.0%",
			"Methods disagree by 30.0 points - plan against the conservative estimate",
			"save more",
			"cut travel",
			"stay diversified",
		}, set.Recommendations)
	})

	t.Run("every method short", func(t *testing.T) {
		set := buildSet(
			analysisFor(domain.MethodBasic, 40, 2000, 4000),
			analysisFor(domain.MethodIntermediate, 45, 2500, 4200),
		)

		assert.Contains(t, set.Recommendations, "Every method projects a monthly income shortfall")
		assert.NotContains(t, set.Recommendations[2], "disagree")
	})

	t.Run("single method", func(t *testing.T) {
		set := buildSet(analysisFor(domain.MethodBasic, 80, 5000, 4000, "on track"))
		assert.Equal(t, []string{"on track"}, set.Recommendations)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))
	})
}
