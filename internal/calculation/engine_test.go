package calculation

import (
	"fmt"
	"testing"
	"time"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogger records every message for assertions
type TestLogger struct {
	Debug []string
	Info  []string
	Warn  []string
	Error []string
}

func (l *TestLogger) Debugf(format string, args ...interface{}) {
	l.Debug = append(l.Debug, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Infof(format string, args ...interface{}) {
	l.Info = append(l.Info, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Warnf(format string, args ...interface{}) {
	l.Warn = append(l.Warn, fmt.Sprintf(format, args...))
}
func (l *TestLogger) Errorf(format string, args ...interface{}) {
	l.Error = append(l.Error, fmt.Sprintf(format, args...))
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should default to no-op logger")
	assert.Equal(t, MonteCarloIterations, engine.MonteCarlo.Iterations)
	assert.Equal(t, YearsInRetirement, engine.MonteCarlo.Years)
	assert.Positive(t, engine.MonteCarlo.Workers)
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_Analyze(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	engine := NewEngine()
	engine.now = func() time.Time { return fixed }
	engine.MonteCarlo.Seed = 2024

	profile := createTestProfile()
	for _, method := range domain.AllMethods() {
		t.Run(string(method), func(t *testing.T) {
			result, err := engine.Analyze(profile, method)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, method, result.Method)
			assert.Equal(t, fixed, result.CalculatedAt)
			assert.NotEmpty(t, result.Recommendations)
			assert.True(t, result.Gap.Equal(result.RequiredMonthlyIncome.Sub(result.ProjectedMonthlyIncome)))
		})
	}
}

func TestEngine_Analyze_UnknownMethod(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Analyze(createTestProfile(), domain.Method("expert"))

	assert.Error(t, err, "Should error for unknown method")
	assert.Nil(t, result, "Should return nil result")
	assert.Contains(t, err.Error(), "unsupported analysis method")
}

func TestEngine_AnalyzeAll(t *testing.T) {
	engine := NewEngine()
	engine.MonteCarlo.Seed = 1

	results, err := engine.AnalyzeAll(createTestProfile())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, domain.MethodBasic, results[0].Method)
	assert.Equal(t, domain.MethodIntermediate, results[1].Method)
	assert.Equal(t, domain.MethodAdvanced, results[2].Method)
	assert.Nil(t, results[0].Simulation)
	assert.NotNil(t, results[2].Simulation)
}

func TestEngine_AdvancedUsesConfiguredModel(t *testing.T) {
	engine := NewEngine()
	engine.MonteCarlo = MonteCarloConfig{Iterations: 200, Years: 20, Seed: 5, Workers: 2}

	first, err := engine.Analyze(createTestProfile(), domain.MethodAdvanced)
	require.NoError(t, err)
	second, err := engine.Analyze(createTestProfile(), domain.MethodAdvanced)
	require.NoError(t, err)

	assert.Equal(t, 200, first.Simulation.Iterations)
	assert.Equal(t, 20, first.Simulation.Years)
	assert.True(t, first.ReadinessScore.Equal(second.ReadinessScore))
}

func TestEngine_Logging(t *testing.T) {
	logger := &TestLogger{}
	engine := NewEngine()
	engine.SetLogger(logger)
	engine.Debug = true
	engine.MonteCarlo.Seed = 3

	_, err := engine.AnalyzeAll(createTestProfile())
	require.NoError(t, err)

	assert.Len(t, logger.Info, 3)
	assert.Contains(t, logger.Info[0], "basic readiness")
	// three profile summaries plus the monte carlo trial count
	assert.Len(t, logger.Debug, 4)
	assert.Contains(t, logger.Debug[0], "expenses=5800.00")
	assert.Empty(t, logger.Error)
}

func TestParseMethod(t *testing.T) {
	m, err := domain.ParseMethod(" Advanced ")
	require.NoError(t, err)
	assert.Equal(t, domain.MethodAdvanced, m)

	_, err = domain.ParseMethod("expert")
	assert.Error(t, err)
}
