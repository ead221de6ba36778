package fuelcalc

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/rubiojr/fuelcalc/pkg/fuel"
)

// MemoryDSN opens a database that lives as long as the Storage does.
const MemoryDSN = ":memory:"

const (
	defaultCacheSize = -16 * 1024 // negative value for KiB
	busyTimeoutMs    = 10000
)

// Storage keeps the calculation history of every session in one SQLite
// database.
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

// Stats summarizes the stored calculations.
type Stats struct {
	Sessions     int `json:"sessions"`
	Calculations int `json:"calculations"`
}

func NewStorage(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Every connection to :memory: gets its own empty database, so the pool
	// is pinned to one connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := configureSQLitePragmas(ctx, db, defaultCacheSize); err != nil {
		db.Close()
		return nil, err
	}

	if err := createTables(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	logger.Debug("Calculations table created or verified", "dsn", dsn)
	return &Storage{db: db, log: logger}, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS calculations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		distance TEXT NOT NULL,
		fuel_filled TEXT NOT NULL,
		efficiency TEXT NOT NULL,
		total_cost TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(session_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_calculations_session_id ON calculations(session_id);
	`

	_, err := db.ExecContext(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("error creating table: %w", err)
	}
	return nil
}

func configureSQLitePragmas(ctx context.Context, db *sql.DB, cacheSize int) error {
	pragmas := []struct {
		stmt string
		what string
	}{
		{fmt.Sprintf("PRAGMA busy_timeout = %d;", busyTimeoutMs), "busy timeout"},
		{"PRAGMA temp_store = MEMORY;", "temp store"},
		{"PRAGMA synchronous = OFF;", "synchronous"},
		{fmt.Sprintf("PRAGMA cache_size = %d;", cacheSize), "cache size"},
	}

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p.stmt); err != nil {
			return fmt.Errorf("error setting %s: %w", p.what, err)
		}
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// AppendRecord stores r at the end of the session history.
func (s *Storage) AppendRecord(ctx context.Context, sessionID string, r fuel.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("rollback error: %v", err)
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO calculations (session_id, seq, distance, fuel_filled, efficiency, total_cost)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, r.Seq, r.Distance, r.FuelFilled, r.Efficiency, r.TotalCost)
	if err != nil {
		return fmt.Errorf("error inserting calculation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// Records returns the session history in insertion order.
func (s *Storage) Records(ctx context.Context, sessionID string) ([]fuel.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, distance, fuel_filled, efficiency, total_cost
		FROM calculations
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error querying calculations: %w", err)
	}
	defer rows.Close()

	var records []fuel.Record
	for rows.Next() {
		var r fuel.Record
		if err := rows.Scan(&r.Seq, &r.Distance, &r.FuelFilled, &r.Efficiency, &r.TotalCost); err != nil {
			return nil, fmt.Errorf("error scanning calculation: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %w", err)
	}
	return records, nil
}

func (s *Storage) CountRecords(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calculations WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting calculations: %w", err)
	}
	return count, nil
}

// DeleteRecords removes the whole history of a session.
func (s *Storage) DeleteRecords(ctx context.Context, sessionID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM calculations WHERE session_id = ?", sessionID)
	if err != nil {
		return 0, fmt.Errorf("error deleting calculations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading deleted rows: %w", err)
	}
	return n, nil
}

func (s *Storage) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT session_id), COUNT(*) FROM calculations").Scan(&st.Sessions, &st.Calculations)
	if err != nil {
		return Stats{}, fmt.Errorf("error querying stats: %w", err)
	}
	return st, nil
}

// SessionHistory returns a fuel.HistoryStore bound to one session.
func (s *Storage) SessionHistory(sessionID string) *SessionHistory {
	return &SessionHistory{storage: s, sessionID: sessionID}
}

// SessionHistory adapts Storage to fuel.HistoryStore for a single session.
type SessionHistory struct {
	storage   *Storage
	sessionID string
}

func (h *SessionHistory) Append(r fuel.Record) error {
	return h.storage.AppendRecord(context.Background(), h.sessionID, r)
}

func (h *SessionHistory) Records() ([]fuel.Record, error) {
	return h.storage.Records(context.Background(), h.sessionID)
}

func (h *SessionHistory) Len() (int, error) {
	return h.storage.CountRecords(context.Background(), h.sessionID)
}

func (h *SessionHistory) Clear() error {
	_, err := h.storage.DeleteRecords(context.Background(), h.sessionID)
	return err
}
