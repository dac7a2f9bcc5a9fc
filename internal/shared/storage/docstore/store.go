// Package docstore provides append-only document storage over Postgres.
// Named collections map to rows in a single JSONB-backed table, so inserts
// need no per-collection schema.
package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver

	"portfolio-backend/internal/shared/telemetry"
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
    id         UUID PRIMARY KEY,
    collection TEXT NOT NULL,
    doc        JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
)`

// Options controls pool and connectivity behavior.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

var openDB = sql.Open

// DefaultOptions returns defaults for long-running server processes.
func DefaultOptions() Options {
	return Options{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxIdleTime: 2 * time.Minute,
		ConnMaxLifetime: time.Hour,
		PingTimeout:     5 * time.Second,
	}
}

// OptionsFromEnv overrides defaults with DB_* env vars if present.
func OptionsFromEnv(defaults Options) Options {
	opts := defaults
	if v, ok := readEnvInt("DB_MAX_OPEN_CONNS"); ok {
		opts.MaxOpenConns = v
	}
	if v, ok := readEnvInt("DB_MAX_IDLE_CONNS"); ok {
		opts.MaxIdleConns = v
	}
	if v, ok := readEnvDuration("DB_CONN_MAX_LIFETIME"); ok {
		opts.ConnMaxLifetime = v
	}
	if v, ok := readEnvDuration("DB_CONN_MAX_IDLE_TIME"); ok {
		opts.ConnMaxIdleTime = v
	}
	if v, ok := readEnvDuration("DB_PING_TIMEOUT"); ok {
		opts.PingTimeout = v
	}
	return opts
}

// Store is a handle for appending documents to named collections. A Store
// may be degraded: the handle exists but the remote database was unreachable
// when it was opened, so individual inserts can still fail.
type Store struct {
	db          *sql.DB
	pingTimeout time.Duration
}

// Connect opens the pool and verifies connectivity with a bounded ping.
// An unreachable database does not fail the call: the store is returned in a
// degraded state and the condition is logged. Only a malformed URL or driver
// failure returns an error, in which case no handle was ever established.
func Connect(ctx context.Context, databaseURL string, opts Options) (*Store, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	db, err := openDB("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	applyOptions(db, opts)

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	store := &Store{db: db, pingTimeout: pingTimeout}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		telemetry.Error("docstore.connect_failed", map[string]any{"error": err.Error()})
		return store, nil
	}

	if _, err := db.ExecContext(ctx, createDocumentsTable); err != nil {
		telemetry.Error("docstore.bootstrap_failed", map[string]any{"error": err.Error()})
		return store, nil
	}

	telemetry.Info("docstore.connected", nil)
	return store, nil
}

// Insert appends one document to the named collection. The document is
// marshaled to JSON; callers on the request path treat failure as non-fatal.
func (s *Store) Insert(ctx context.Context, collection string, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document for %s: %w", collection, err)
	}

	const query = `
INSERT INTO documents (id, collection, doc, created_at)
VALUES ($1, $2, $3::jsonb, $4)`
	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), collection, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

// Ping reports whether the database is currently reachable.
func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()
	return s.db.PingContext(pingCtx)
}

// Close releases the pool. Called once at process shutdown.
func (s *Store) Close() error {
	return s.db.Close()
}

func applyOptions(db *sql.DB, opts Options) {
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = 10
	}
	if opts.MaxIdleConns <= 0 {
		opts.MaxIdleConns = 5
	}
	if opts.ConnMaxLifetime <= 0 {
		opts.ConnMaxLifetime = time.Hour
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	if opts.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
}

func readEnvInt(key string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("docstore env %s invalid int: %v", key, err)
		return 0, false
	}
	return val, true
}

func readEnvDuration(key string) (time.Duration, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("docstore env %s invalid duration: %v", key, err)
		return 0, false
	}
	return val, true
}
