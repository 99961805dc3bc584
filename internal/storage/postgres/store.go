// Package postgres provides Postgres-backed persistence for fetch
// records.
package postgres

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logofetch/logofetch/internal/logo"
)

var validTableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config controls the Postgres connection pool.
type Config struct {
	DSN             string
	Table           string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store writes fetch records into Postgres.
type Store struct {
	pool  querier
	table string
}

// New creates a Postgres-backed Store from config.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("db.dsn is required")
	}
	table := cfg.Table
	if table == "" {
		table = "logo_fetches"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &Store{pool: pool, table: table}, nil
}

// NewWithPool constructs a Store from an existing pool (primarily for
// testing).
func NewWithPool(pool querier, table string) (*Store, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	if table == "" {
		table = "logo_fetches"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &Store{pool: pool, table: table}, nil
}

// Close releases the underlying pool resources.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// RecordFetch inserts one fetch record.
func (s *Store) RecordFetch(ctx context.Context, rec logo.FetchRecord) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("store is not configured")
	}
	if rec.ID == "" {
		return fmt.Errorf("record id is required")
	}
	query := fmt.Sprintf(`
INSERT INTO %s (
	id,
	company,
	domain,
	confidence,
	source,
	source_url,
	format,
	size_bytes,
	success,
	error_text,
	fetched_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`, s.table)

	if _, err := s.pool.Exec(ctx, query,
		rec.ID,
		rec.Company,
		rec.Domain,
		string(rec.Confidence),
		rec.Source,
		rec.SourceURL,
		rec.Format,
		rec.SizeBytes,
		rec.Success,
		rec.Error,
		rec.FetchedAt,
	); err != nil {
		return fmt.Errorf("insert fetch record: %w", err)
	}
	return nil
}

// LatestFetch returns the most recent record for a company.
func (s *Store) LatestFetch(ctx context.Context, company string) (logo.FetchRecord, error) {
	if s == nil || s.pool == nil {
		return logo.FetchRecord{}, fmt.Errorf("store is not configured")
	}
	query := fmt.Sprintf(`
SELECT id, company, domain, confidence, source, source_url, format, size_bytes, success, error_text, fetched_at
FROM %s
WHERE company = $1
ORDER BY fetched_at DESC
LIMIT 1`, s.table)

	var (
		rec        logo.FetchRecord
		confidence string
	)
	err := s.pool.QueryRow(ctx, query, company).Scan(
		&rec.ID,
		&rec.Company,
		&rec.Domain,
		&confidence,
		&rec.Source,
		&rec.SourceURL,
		&rec.Format,
		&rec.SizeBytes,
		&rec.Success,
		&rec.Error,
		&rec.FetchedAt,
	)
	if err != nil {
		return logo.FetchRecord{}, fmt.Errorf("query latest fetch for %q: %w", company, err)
	}
	rec.Confidence = logo.Confidence(confidence)
	return rec, nil
}
