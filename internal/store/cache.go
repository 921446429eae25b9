package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/vmihailenco/msgpack/v5"
)

// cacheRecord is everything stored for one user
type cacheRecord struct {
	Profile   *domain.FinancialProfile    `msgpack:"profile"`
	Analyses  []domain.RetirementAnalysis `msgpack:"analyses"`
	UpdatedAt time.Time                   `msgpack:"updated_at"`
}

// CacheStore keeps one msgpack file per user in a local directory. It is
// the offline copy used when the database is unavailable.
type CacheStore struct {
	dir string
	mu  sync.Mutex
}

// NewCacheStore creates the cache directory if needed
func NewCacheStore(dir string) (*CacheStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &CacheStore{dir: dir}, nil
}

func (c *CacheStore) Close() error { return nil }

func (c *CacheStore) SaveProfile(_ context.Context, userID string, profile *domain.FinancialProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.read(userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	rec.Profile = profile
	return c.write(userID, rec)
}

func (c *CacheStore) LoadProfile(_ context.Context, userID string) (*domain.FinancialProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.read(userID)
	if err != nil {
		return nil, err
	}
	if rec.Profile == nil {
		return nil, ErrNotFound
	}
	return rec.Profile, nil
}

func (c *CacheStore) SaveAnalysis(_ context.Context, userID string, analysis *domain.RetirementAnalysis) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	rec, err := c.read(userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", err
	}
	rec.Analyses = append(rec.Analyses, *analysis)
	if err := c.write(userID, rec); err != nil {
		return "", err
	}
	return analysis.ID, nil
}

func (c *CacheStore) ListAnalyses(_ context.Context, userID string, method domain.Method) ([]domain.RetirementAnalysis, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.read(userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []domain.RetirementAnalysis
	for _, a := range rec.Analyses {
		if method == "" || a.Method == method {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CalculatedAt.After(out[j].CalculatedAt)
	})
	return out, nil
}

func (c *CacheStore) DeleteUser(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.path(userID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

func (c *CacheStore) path(userID string) string {
	// user IDs come from URLs and flags; keep them inside the cache dir
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(userID)
	return filepath.Join(c.dir, safe+".msgpack")
}

// read returns an empty record together with ErrNotFound for unknown users
func (c *CacheStore) read(userID string) (*cacheRecord, error) {
	data, err := os.ReadFile(c.path(userID))
	if os.IsNotExist(err) {
		return &cacheRecord{}, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var rec cacheRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return &rec, nil
}

func (c *CacheStore) write(userID string, rec *cacheRecord) error {
	rec.UpdatedAt = time.Now()
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	// write-then-rename so readers never see a partial file
	tmp := c.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := os.Rename(tmp, c.path(userID)); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
