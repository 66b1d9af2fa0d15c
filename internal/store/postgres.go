// Package store provides Postgres-backed persistence for meet records.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/liftwatch/meet-sync/internal/meet"
)

var validTableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config controls the Postgres connection pool used for meet rows.
type Config struct {
	// URL is the store endpoint in DSN form, e.g.
	// "postgres://meetsync@db.example.com:5432/meets?sslmode=require".
	URL string
	// Password is the store access credential, kept out of the URL so it can
	// be supplied separately from the environment.
	Password string
	// Table is the meets table name; defaults to "meets".
	Table string
	// MaxConns bounds the pool. The syncer writes strictly sequentially, so
	// a small pool is plenty.
	MaxConns        int32
	MaxConnLifetime time.Duration
}

// pgxPool is the narrow slice of pgxpool.Pool the store needs. It lets
// pgxmock stand in during tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// MeetStore reads and writes meet rows in Postgres. Rows are uniquely keyed
// by name; the table's uniqueness constraint is the authoritative dedup
// guarantee, the store's lookup only an optimization in front of it.
type MeetStore struct {
	pool  pgxPool
	table string
}

// New connects a MeetStore to Postgres using the provided config.
func New(ctx context.Context, cfg Config) (*MeetStore, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("db.url is required")
	}
	table := cfg.Table
	if table == "" {
		table = "meets"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	if cfg.Password != "" {
		poolCfg.ConnConfig.Password = cfg.Password
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &MeetStore{pool: pool, table: table}, nil
}

// NewWithPool constructs a store from an existing pool (primarily for
// testing).
func NewWithPool(pool pgxPool, table string) (*MeetStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	if table == "" {
		table = "meets"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &MeetStore{pool: pool, table: table}, nil
}

// Close releases the underlying pool resources.
func (s *MeetStore) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// FindByName reports whether a meet row with the given name already exists.
func (s *MeetStore) FindByName(ctx context.Context, name string) (bool, error) {
	query := fmt.Sprintf(`SELECT name FROM %s WHERE name = $1 LIMIT 1`, s.table)

	var found string
	err := s.pool.QueryRow(ctx, query, name).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query meet by name: %w", err)
	}
	return true, nil
}

// Insert writes one meet row. The record's transient ExternalID is not part
// of the persisted shape and is deliberately omitted. A uniqueness violation
// on name surfaces as an error for the caller to log and move past.
func (s *MeetStore) Insert(ctx context.Context, rec meet.Record) error {
	query := fmt.Sprintf(`
INSERT INTO %s (
	name,
	venue_name,
	venue_street,
	venue_city,
	venue_state,
	venue_zip,
	time_zone,
	start_date,
	end_date,
	status
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10
)`, s.table)

	args := []any{
		rec.Name,
		rec.VenueName,
		rec.VenueStreet,
		rec.VenueCity,
		rec.VenueState,
		rec.VenueZip,
		rec.TimeZone,
		rec.StartDate,
		rec.EndDate,
		rec.Status,
	}
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert meet: %w", err)
	}
	return nil
}
