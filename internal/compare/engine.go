package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/readyvault/internal/calculation"
	"github.com/rgehrsitz/readyvault/internal/domain"
	"golang.org/x/sync/errgroup"
)

// CompareEngine runs several readiness methods against one profile
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseMethod domain.Method   // defaults to basic
	Methods    []domain.Method // defaults to every method
}

// Compare runs the requested methods concurrently and assembles a
// ComparisonSet. Results keep the order of opts.Methods.
func (ce *CompareEngine) Compare(ctx context.Context, profile *domain.FinancialProfile, opts CompareOptions) (*ComparisonSet, error) {
	methods := opts.Methods
	if len(methods) == 0 {
		methods = domain.AllMethods()
	}
	base := opts.BaseMethod
	if base == "" {
		base = domain.MethodBasic
	}

	baseIndex := -1
	for i, m := range methods {
		if m == base {
			baseIndex = i
		}
	}
	if baseIndex < 0 {
		methods = append([]domain.Method{base}, methods...)
		baseIndex = 0
	}

	analyses := make([]*domain.RetirementAnalysis, len(methods))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range methods {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := ce.CalcEngine.Analyze(profile, m)
			if err != nil {
				return fmt.Errorf("failed to calculate %s: %w", m, err)
			}
			analyses[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	baseResult := NewComparisonResult(analyses[baseIndex])
	alternatives := make([]ComparisonResult, 0, len(methods)-1)
	for i, a := range analyses {
		if i == baseIndex {
			continue
		}
		alternatives = append(alternatives, CalculateComparison(NewComparisonResult(a), baseResult))
	}

	compSet := &ComparisonSet{
		BaseMethod:         base,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.summarize()
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
