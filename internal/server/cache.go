package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rgehrsitz/readyvault/internal/domain"
)

// AnalysisCache stores deterministic analyses keyed by profile content
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*domain.RetirementAnalysis, bool)
	Set(ctx context.Context, key string, analysis *domain.RetirementAnalysis) error
}

// Cacheable reports whether a method's result depends only on the profile.
// Advanced draws fresh random trials on every run.
func Cacheable(method domain.Method) bool {
	return method == domain.MethodBasic || method == domain.MethodIntermediate
}

// CacheKey hashes the profile's JSON encoding together with the method
func CacheKey(profile *domain.FinancialProfile, method domain.Method) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}
	sum := sha256.Sum256(data)
	return "readyvault:analysis:" + string(method) + ":" + hex.EncodeToString(sum[:]), nil
}

// MemoryCache is the process-local cache used when no Redis address is set
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string][]byte)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (*domain.RetirementAnalysis, bool) {
	m.mu.RLock()
	data, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return decodeCached(data)
}

func (m *MemoryCache) Set(_ context.Context, key string, analysis *domain.RetirementAnalysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = data
	m.mu.Unlock()
	return nil
}

// Len returns the number of cached entries
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// RedisCache shares cached analyses between server instances
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
	}
}

// Get treats any Redis error as a miss
func (r *RedisCache) Get(ctx context.Context, key string) (*domain.RetirementAnalysis, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return decodeCached(val)
}

func (r *RedisCache) Set(ctx context.Context, key string, analysis *domain.RetirementAnalysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// Ping checks connectivity
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

func decodeCached(data []byte) (*domain.RetirementAnalysis, bool) {
	var a domain.RetirementAnalysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, false
	}
	return &a, true
}
