package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/readyvault/internal/calculation"
	"github.com/rgehrsitz/readyvault/internal/config"
	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	engine.MonteCarlo.Seed = 42
	engine.MonteCarlo.Iterations = 200
	return engine
}

func TestCompare_AllMethods(t *testing.T) {
	ce := NewCompareEngine(seededEngine())
	profile := config.NewInputParser().CreateExampleProfile()

	set, err := ce.Compare(context.Background(), profile, CompareOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.MethodBasic, set.BaseMethod)
	require.NotNil(t, set.BaseResult)
	assert.Equal(t, domain.MethodBasic, set.BaseResult.Method)
	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, domain.MethodIntermediate, set.AlternativeResults[0].Method)
	assert.Equal(t, domain.MethodAdvanced, set.AlternativeResults[1].Method)

	for _, alt := range set.AlternativeResults {
		assert.True(t, alt.ScoreDiffFromBase.Equal(alt.ReadinessScore.Sub(set.BaseResult.ReadinessScore)))
	}
	assert.False(t, set.ScoreSpread.IsNegative())
	assert.NotEmpty(t, set.Recommendations)
}

func TestCompare_BaseNotInMethods(t *testing.T) {
	ce := NewCompareEngine(seededEngine())
	profile := config.NewInputParser().CreateExampleProfile()

	set, err := ce.Compare(context.Background(), profile, CompareOptions{
		BaseMethod: domain.MethodIntermediate,
		Methods:    []domain.Method{domain.MethodBasic},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MethodIntermediate, set.BaseResult.Method)
	require.Len(t, set.AlternativeResults, 1)
	assert.Equal(t, domain.MethodBasic, set.AlternativeResults[0].Method)
}

func TestCompare_Reproducible(t *testing.T) {
	profile := config.NewInputParser().CreateExampleProfile()
	opts := CompareOptions{Methods: []domain.Method{domain.MethodBasic, domain.MethodAdvanced}}

	first, err := NewCompareEngine(seededEngine()).Compare(context.Background(), profile, opts)
	require.NoError(t, err)
	second, err := NewCompareEngine(seededEngine()).Compare(context.Background(), profile, opts)
	require.NoError(t, err)

	assert.True(t, first.AlternativeResults[0].ReadinessScore.Equal(second.AlternativeResults[0].ReadinessScore))
}

func TestCompare_UnknownMethod(t *testing.T) {
	ce := NewCompareEngine(seededEngine())
	_, err := ce.Compare(context.Background(), config.NewInputParser().CreateExampleProfile(), CompareOptions{
		Methods: []domain.Method{"astrology"},
	})
	assert.ErrorContains(t, err, "failed to calculate astrology")
}

func TestCompare_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCompareEngine(seededEngine()).Compare(ctx, config.NewInputParser().CreateExampleProfile(), CompareOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
