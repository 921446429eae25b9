package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rs/zerolog"
)

// FallbackStore writes to both a primary store and a local cache. Reads go
// to the primary and fall back to the cache when the primary fails.
type FallbackStore struct {
	primary Store
	cache   Store
	log     zerolog.Logger
}

// NewFallbackStore combines primary and cache; either may be nil
func NewFallbackStore(primary, cache Store, log zerolog.Logger) *FallbackStore {
	return &FallbackStore{
		primary: primary,
		cache:   cache,
		log:     log.With().Str("store", "fallback").Logger(),
	}
}

func (f *FallbackStore) SaveProfile(ctx context.Context, userID string, profile *domain.FinancialProfile) error {
	return f.writeBoth("save profile", userID, func(s Store) error {
		return s.SaveProfile(ctx, userID, profile)
	})
}

func (f *FallbackStore) LoadProfile(ctx context.Context, userID string) (*domain.FinancialProfile, error) {
	if f.primary != nil {
		p, err := f.primary.LoadProfile(ctx, userID)
		if err == nil {
			return p, nil
		}
		if f.cache == nil {
			return nil, err
		}
		if !errors.Is(err, ErrNotFound) {
			f.log.Warn().Err(err).Str("user", userID).Msg("Primary store unavailable, reading profile from cache")
		}
	}
	if f.cache == nil {
		return nil, ErrNotFound
	}
	return f.cache.LoadProfile(ctx, userID)
}

func (f *FallbackStore) SaveAnalysis(ctx context.Context, userID string, analysis *domain.RetirementAnalysis) (string, error) {
	err := f.writeBoth("save analysis", userID, func(s Store) error {
		// the first store assigns the ID; the second reuses it
		_, err := s.SaveAnalysis(ctx, userID, analysis)
		return err
	})
	if err != nil {
		return "", err
	}
	return analysis.ID, nil
}

func (f *FallbackStore) ListAnalyses(ctx context.Context, userID string, method domain.Method) ([]domain.RetirementAnalysis, error) {
	if f.primary != nil {
		list, err := f.primary.ListAnalyses(ctx, userID, method)
		if err == nil || f.cache == nil {
			return list, err
		}
		f.log.Warn().Err(err).Str("user", userID).Msg("Primary store unavailable, reading history from cache")
	}
	if f.cache == nil {
		return nil, nil
	}
	return f.cache.ListAnalyses(ctx, userID, method)
}

func (f *FallbackStore) DeleteUser(ctx context.Context, userID string) error {
	var errs []error
	for _, s := range f.stores() {
		if err := s.DeleteUser(ctx, userID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *FallbackStore) Close() error {
	var errs []error
	for _, s := range f.stores() {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *FallbackStore) stores() []Store {
	var out []Store
	if f.primary != nil {
		out = append(out, f.primary)
	}
	if f.cache != nil {
		out = append(out, f.cache)
	}
	return out
}

// writeBoth succeeds when at least one store accepted the write
func (f *FallbackStore) writeBoth(op, userID string, write func(Store) error) error {
	var primaryErr, cacheErr error
	if f.primary != nil {
		if primaryErr = write(f.primary); primaryErr != nil {
			f.log.Warn().Err(primaryErr).Str("user", userID).Msgf("Primary store failed to %s", op)
		}
	}
	if f.cache != nil {
		if cacheErr = write(f.cache); cacheErr != nil {
			f.log.Warn().Err(cacheErr).Str("user", userID).Msgf("Cache failed to %s", op)
		}
	}

	switch {
	case f.primary == nil && f.cache == nil:
		return fmt.Errorf("failed to %s: no store configured", op)
	case f.primary != nil && primaryErr == nil, f.cache != nil && cacheErr == nil:
		return nil
	default:
		return fmt.Errorf("failed to %s: %w", op, errors.Join(primaryErr, cacheErr))
	}
}
