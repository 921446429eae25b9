package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id    TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS analyses (
	id              TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL,
	method          TEXT NOT NULL,
	score           TEXT NOT NULL,
	projected       TEXT NOT NULL,
	required        TEXT NOT NULL,
	gap             TEXT NOT NULL,
	recommendations TEXT NOT NULL,
	simulation      TEXT,
	calculated_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_user ON analyses(user_id, calculated_at);
`

// timeLayout is fixed width so stored timestamps sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore keeps profiles and analysis history in a SQLite database
type SQLiteStore struct {
	conn *sql.DB
	path string
	log  zerolog.Logger
}

// NewSQLiteStore opens (creating if needed) the database at dbPath and
// applies the schema
func NewSQLiteStore(dbPath string, log zerolog.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	// SQLite allows a single writer
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteStore{
		conn: conn,
		path: dbPath,
		log:  log.With().Str("store", "sqlite").Logger(),
	}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// SaveProfile inserts or replaces the user's profile
func (s *SQLiteStore) SaveProfile(ctx context.Context, userID string, profile *domain.FinancialProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO profiles (user_id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, userID, string(payload), time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	s.log.Debug().Str("user", userID).Msg("Profile saved")
	return nil
}

// LoadProfile returns ErrNotFound when the user has no profile
func (s *SQLiteStore) LoadProfile(ctx context.Context, userID string) (*domain.FinancialProfile, error) {
	var payload string
	err := s.conn.QueryRowContext(ctx, `SELECT payload FROM profiles WHERE user_id = ?`, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile domain.FinancialProfile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

// SaveAnalysis appends an analysis to the user's history
func (s *SQLiteStore) SaveAnalysis(ctx context.Context, userID string, analysis *domain.RetirementAnalysis) (string, error) {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}

	recs, err := json.Marshal(analysis.Recommendations)
	if err != nil {
		return "", fmt.Errorf("failed to encode recommendations: %w", err)
	}
	var sim sql.NullString
	if analysis.Simulation != nil {
		b, err := json.Marshal(analysis.Simulation)
		if err != nil {
			return "", fmt.Errorf("failed to encode simulation: %w", err)
		}
		sim = sql.NullString{String: string(b), Valid: true}
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO analyses
		(id, user_id, method, score, projected, required, gap, recommendations, simulation, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		analysis.ID,
		userID,
		string(analysis.Method),
		analysis.ReadinessScore.String(),
		analysis.ProjectedMonthlyIncome.String(),
		analysis.RequiredMonthlyIncome.String(),
		analysis.Gap.String(),
		string(recs),
		sim,
		analysis.CalculatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert analysis: %w", err)
	}

	return analysis.ID, nil
}

// ListAnalyses returns the user's history, newest first
func (s *SQLiteStore) ListAnalyses(ctx context.Context, userID string, method domain.Method) ([]domain.RetirementAnalysis, error) {
	query := `
		SELECT id, method, score, projected, required, gap, recommendations, simulation, calculated_at
		FROM analyses WHERE user_id = ?`
	args := []interface{}{userID}
	if method != "" {
		query += ` AND method = ?`
		args = append(args, string(method))
	}
	query += ` ORDER BY calculated_at DESC`

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var analyses []domain.RetirementAnalysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}
	return analyses, nil
}

func scanAnalysis(rows *sql.Rows) (domain.RetirementAnalysis, error) {
	var (
		a                                  domain.RetirementAnalysis
		method, score, projected, required string
		gap, recs, calculatedAt            string
		sim                                sql.NullString
	)
	if err := rows.Scan(&a.ID, &method, &score, &projected, &required, &gap, &recs, &sim, &calculatedAt); err != nil {
		return a, fmt.Errorf("failed to scan analysis: %w", err)
	}

	a.Method = domain.Method(method)
	var err error
	for _, f := range []struct {
		src string
		dst *decimal.Decimal
	}{
		{score, &a.ReadinessScore},
		{projected, &a.ProjectedMonthlyIncome},
		{required, &a.RequiredMonthlyIncome},
		{gap, &a.Gap},
	} {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return a, fmt.Errorf("analysis %s: bad decimal %q: %w", a.ID, f.src, err)
		}
	}
	if err := json.Unmarshal([]byte(recs), &a.Recommendations); err != nil {
		return a, fmt.Errorf("analysis %s: failed to decode recommendations: %w", a.ID, err)
	}
	if sim.Valid {
		a.Simulation = &domain.SimulationStats{}
		if err := json.Unmarshal([]byte(sim.String), a.Simulation); err != nil {
			return a, fmt.Errorf("analysis %s: failed to decode simulation: %w", a.ID, err)
		}
	}
	if a.CalculatedAt, err = time.Parse(timeLayout, calculatedAt); err != nil {
		return a, fmt.Errorf("analysis %s: bad timestamp: %w", a.ID, err)
	}
	return a, nil
}

// DeleteUser removes the profile and every stored analysis for the user
func (s *SQLiteStore) DeleteUser(ctx context.Context, userID string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM analyses WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete analyses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return tx.Commit()
}
