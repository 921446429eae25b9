package calculation

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Uniform draws are recentred around these bases: returns span 4%-10%,
// inflation spans 2%-4%.
const (
	baseReturnRate    = 0.07
	returnRateSpread  = 0.06
	baseInflationRate = 0.03
	inflationSpread   = 0.02
)

// MonteCarloConfig controls a portfolio survival simulation
type MonteCarloConfig struct {
	Iterations int
	Years      int
	Seed       int64 // 0 picks a time-based seed per run
	Workers    int   // does not affect results for a fixed seed
}

// DefaultMonteCarloConfig returns the 1000-trial, 30-year model
func DefaultMonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{
		Iterations: MonteCarloIterations,
		Years:      YearsInRetirement,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// trialOutcome is the result of one simulated retirement
type trialOutcome struct {
	success       bool
	endingBalance float64
	returnRate    float64
	inflationRate float64
}

// Advanced runs the Monte Carlo method with the default configuration
func Advanced(profile *domain.FinancialProfile) domain.RetirementAnalysis {
	return advancedAnalysis(profile, DefaultMonteCarloConfig(), time.Now())
}

// AdvancedWithConfig runs the Monte Carlo method with a caller-supplied configuration
func AdvancedWithConfig(profile *domain.FinancialProfile, cfg MonteCarloConfig) domain.RetirementAnalysis {
	return advancedAnalysis(profile, cfg, time.Now())
}

func advancedAnalysis(profile *domain.FinancialProfile, cfg MonteCarloConfig, now time.Time) domain.RetirementAnalysis {
	cfg = normalizeMonteCarloConfig(cfg, now)
	totals := AggregateProfile(profile)

	required := totals.MonthlyExpenses.Mul(advancedIncomeRatio)
	annualWithdrawal := required.Mul(twelve).InexactFloat64()
	outcomes := runTrials(cfg, saturate(totals.Assets.InexactFloat64()), saturate(annualWithdrawal))

	successes := 0
	totalProjectedIncome := 0.0
	for _, o := range outcomes {
		if !o.success {
			continue
		}
		successes++
		totalProjectedIncome = saturate(totalProjectedIncome + o.endingBalance/float64(cfg.Years)/monthsPerYear)
	}

	iterations := decimal.NewFromInt(int64(cfg.Iterations))
	successRate := decimal.NewFromInt(int64(successes)).Div(iterations).Mul(hundred)
	// Failed trials contribute zero but still count in the divisor.
	avgProjected := decimal.NewFromFloat(totalProjectedIncome).Div(iterations)
	projected := avgProjected.Add(totals.GuaranteedMonthlyIncome)

	return domain.RetirementAnalysis{
		Method:                 domain.MethodAdvanced,
		ReadinessScore:         successRate,
		ProjectedMonthlyIncome: projected,
		RequiredMonthlyIncome:  required,
		Gap:                    required.Sub(projected),
		Recommendations:        advancedRecommendations(successRate),
		CalculatedAt:           now,
		Simulation:             summarizeTrials(outcomes, cfg, successes),
	}
}

func normalizeMonteCarloConfig(cfg MonteCarloConfig, now time.Time) MonteCarloConfig {
	if cfg.Iterations <= 0 {
		cfg.Iterations = MonteCarloIterations
	}
	if cfg.Years <= 0 {
		cfg.Years = YearsInRetirement
	}
	if cfg.Seed == 0 {
		cfg.Seed = now.UnixNano()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Workers > cfg.Iterations {
		cfg.Workers = cfg.Iterations
	}
	return cfg
}

// runTrials splits the trials into contiguous chunks, one goroutine per
// chunk. Trial i is reseeded with cfg.Seed+i, so a fixed seed reproduces
// the same outcomes for any worker count.
func runTrials(cfg MonteCarloConfig, initialBalance, annualWithdrawal float64) []trialOutcome {
	outcomes := make([]trialOutcome, cfg.Iterations)
	chunk := (cfg.Iterations + cfg.Workers - 1) / cfg.Workers

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		start := w * chunk
		if start >= cfg.Iterations {
			break
		}
		end := start + chunk
		if end > cfg.Iterations {
			end = cfg.Iterations
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(cfg.Seed))
			for i := start; i < end; i++ {
				rng.Seed(cfg.Seed + int64(i))
				outcomes[i] = simulateTrial(rng, cfg.Years, initialBalance, annualWithdrawal)
			}
		}(start, end)
	}
	wg.Wait()

	return outcomes
}

// simulateTrial grows the portfolio, withdraws, then inflates the next
// withdrawal. A negative balance in any year fails the trial.
func simulateTrial(rng *rand.Rand, years int, initialBalance, annualWithdrawal float64) trialOutcome {
	returnRate := baseReturnRate + (rng.Float64()-0.5)*returnRateSpread
	inflationRate := baseInflationRate + (rng.Float64()-0.5)*inflationSpread

	portfolio := initialBalance
	withdrawal := annualWithdrawal
	for year := 0; year < years; year++ {
		portfolio = saturate(saturate(portfolio*(1+returnRate)) - withdrawal)
		withdrawal = saturate(withdrawal * (1 + inflationRate))
		if portfolio < 0 {
			return trialOutcome{endingBalance: portfolio, returnRate: returnRate, inflationRate: inflationRate}
		}
	}

	return trialOutcome{success: true, endingBalance: portfolio, returnRate: returnRate, inflationRate: inflationRate}
}

// saturate clamps overflow to the largest finite float64 so balances stay
// convertible to decimal. NaN only arises from Inf-Inf and maps to zero.
func saturate(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

func summarizeTrials(outcomes []trialOutcome, cfg MonteCarloConfig, successes int) *domain.SimulationStats {
	returns := make([]float64, len(outcomes))
	inflation := make([]float64, len(outcomes))
	endings := make([]float64, 0, successes)
	for i, o := range outcomes {
		returns[i] = o.returnRate
		inflation[i] = o.inflationRate
		if o.success {
			endings = append(endings, o.endingBalance)
		}
	}
	sort.Float64s(endings)

	return &domain.SimulationStats{
		Iterations:          cfg.Iterations,
		Years:               cfg.Years,
		Seed:                cfg.Seed,
		SuccessfulTrials:    successes,
		EndingBalances:      percentileRanges(endings),
		MeanReturnRate:      decimal.NewFromFloat(stat.Mean(returns, nil)),
		ReturnRateStdDev:    decimal.NewFromFloat(stdDev(returns)),
		MeanInflationRate:   decimal.NewFromFloat(stat.Mean(inflation, nil)),
		InflationRateStdDev: decimal.NewFromFloat(stdDev(inflation)),
	}
}

// percentileRanges expects sorted input
func percentileRanges(sorted []float64) domain.PercentileRanges {
	if len(sorted) == 0 {
		return domain.PercentileRanges{}
	}
	q := func(p float64) decimal.Decimal {
		return decimal.NewFromFloat(stat.Quantile(p, stat.Empirical, sorted, nil)).Round(2)
	}
	return domain.PercentileRanges{
		P10: q(0.10),
		P25: q(0.25),
		P50: q(0.50),
		P75: q(0.75),
		P90: q(0.90),
	}
}

func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

func advancedRecommendations(successRate decimal.Decimal) []string {
	switch {
	case successRate.LessThan(decimal.NewFromInt(70)):
		return []string{
			"Monte Carlo analysis shows high risk of portfolio depletion",
			"Consider reducing expenses or increasing savings significantly",
			"Explore guaranteed income sources (annuities, pensions)",
			"Consider delaying retirement by 3-5 years",
		}
	case successRate.LessThan(decimal.NewFromInt(85)):
		return []string{
			"Moderate success probability - some adjustments recommended",
			"Build larger emergency fund for market downturns",
			"Consider more conservative asset allocation",
		}
	default:
		return []string{
			"Excellent probability of retirement success",
			"Portfolio should sustain through various market conditions",
			"Consider legacy planning and charitable giving",
		}
	}
}
