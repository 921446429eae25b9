// Package store persists profiles and analysis history per user.
package store

import (
	"context"
	"errors"

	"github.com/rgehrsitz/readyvault/internal/domain"
)

// ErrNotFound is returned when a user has no stored profile
var ErrNotFound = errors.New("not found")

// Store is implemented by the SQLite database, the offline cache and the
// fallback combination of both
type Store interface {
	SaveProfile(ctx context.Context, userID string, profile *domain.FinancialProfile) error
	LoadProfile(ctx context.Context, userID string) (*domain.FinancialProfile, error)
	// SaveAnalysis assigns an ID when the analysis has none and returns it
	SaveAnalysis(ctx context.Context, userID string, analysis *domain.RetirementAnalysis) (string, error)
	// ListAnalyses returns newest first; an empty method returns every method
	ListAnalyses(ctx context.Context, userID string, method domain.Method) ([]domain.RetirementAnalysis, error)
	DeleteUser(ctx context.Context, userID string) error
	Close() error
}
