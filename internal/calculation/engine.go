package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/readyvault/internal/domain"
)

// Engine dispatches a profile to one of the readiness methods
type Engine struct {
	Logger     Logger
	MonteCarlo MonteCarloConfig
	Debug      bool

	now func() time.Time
}

// NewEngine creates an engine with the default Monte Carlo model and a no-op logger
func NewEngine() *Engine {
	return &Engine{
		Logger:     NopLogger{},
		MonteCarlo: DefaultMonteCarloConfig(),
		now:        time.Now,
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Analyze runs a single method. The only error is an unknown method.
func (e *Engine) Analyze(profile *domain.FinancialProfile, method domain.Method) (*domain.RetirementAnalysis, error) {
	now := e.now()
	if e.Debug {
		totals := AggregateProfile(profile)
		e.Logger.Debugf("analyze %s: expenses=%s assets=%s guaranteed=%s",
			method, totals.MonthlyExpenses.StringFixed(2), totals.Assets.StringFixed(2), totals.GuaranteedMonthlyIncome.StringFixed(2))
	}

	var analysis domain.RetirementAnalysis
	switch method {
	case domain.MethodBasic:
		analysis = basicAnalysis(profile, now)
	case domain.MethodIntermediate:
		analysis = intermediateAnalysis(profile, now)
	case domain.MethodAdvanced:
		analysis = advancedAnalysis(profile, e.MonteCarlo, now)
		e.Logger.Debugf("monte carlo: %d/%d trials survived (seed %d)",
			analysis.Simulation.SuccessfulTrials, analysis.Simulation.Iterations, analysis.Simulation.Seed)
	default:
		return nil, fmt.Errorf("unsupported analysis method: %q", method)
	}

	e.Logger.Infof("%s readiness %s%% (required %s, projected %s)", method,
		analysis.ReadinessScore.StringFixed(1),
		analysis.RequiredMonthlyIncome.StringFixed(2),
		analysis.ProjectedMonthlyIncome.StringFixed(2))

	return &analysis, nil
}

// AnalyzeAll runs every method in dashboard order
func (e *Engine) AnalyzeAll(profile *domain.FinancialProfile) ([]domain.RetirementAnalysis, error) {
	results := make([]domain.RetirementAnalysis, 0, len(domain.AllMethods()))
	for _, m := range domain.AllMethods() {
		a, err := e.Analyze(profile, m)
		if err != nil {
			return nil, fmt.Errorf("%s analysis failed: %w", m, err)
		}
		results = append(results, *a)
	}
	return results, nil
}
