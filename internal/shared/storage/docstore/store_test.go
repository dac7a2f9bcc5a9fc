package docstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func swapOpenDB(t *testing.T, db *sql.DB) {
	t.Helper()
	prev := openDB
	openDB = func(driverName, dsn string) (*sql.DB, error) {
		return db, nil
	}
	t.Cleanup(func() { openDB = prev })
}

func TestConnectBootstrapsSchema(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	swapOpenDB(t, db)

	mock.ExpectPing()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := Connect(context.Background(), "postgres://localhost/portfolio", DefaultOptions())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestConnectUnreachableDatabaseDegrades(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	swapOpenDB(t, db)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	store, err := Connect(context.Background(), "postgres://unreachable/portfolio", DefaultOptions())
	if err != nil {
		t.Fatalf("expected degraded store, got error: %v", err)
	}
	if store == nil {
		t.Fatal("expected a handle even when the database is unreachable")
	}
	t.Cleanup(func() { _ = store.Close() })

	// No schema bootstrap is attempted against an unreachable database.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestConnectEmptyURLFails(t *testing.T) {
	if _, err := Connect(context.Background(), "  ", DefaultOptions()); err == nil {
		t.Fatal("expected error for empty database url")
	}
}

func TestInsertAppendsDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &Store{db: db, pingTimeout: time.Second}

	doc := map[string]any{"name": "Jane", "email": "jane@example.com"}
	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), "contact_messages", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Insert(context.Background(), "contact_messages", doc); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestInsertSurfacesDatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &Store{db: db, pingTimeout: time.Second}

	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(errors.New("relation does not exist"))

	if err := store.Insert(context.Background(), "resume_requests", map[string]any{"name": "Jane"}); err == nil {
		t.Fatal("expected insert error")
	}
}

func TestInsertRejectsUnmarshalableDocument(t *testing.T) {
	store := &Store{pingTimeout: time.Second}
	if err := store.Insert(context.Background(), "resume_requests", map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestOptionsFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_PING_TIMEOUT", "2s")

	opts := OptionsFromEnv(DefaultOptions())
	if opts.MaxOpenConns != 3 {
		t.Errorf("expected MaxOpenConns 3, got %d", opts.MaxOpenConns)
	}
	if opts.PingTimeout != 2*time.Second {
		t.Errorf("expected PingTimeout 2s, got %s", opts.PingTimeout)
	}
	if opts.MaxIdleConns != DefaultOptions().MaxIdleConns {
		t.Errorf("expected untouched MaxIdleConns, got %d", opts.MaxIdleConns)
	}
}
