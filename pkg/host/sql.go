package host

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mindburn-Labs/ledgermark/pkg/event"
)

// SQLLog is an event log over database/sql. It supports both Postgres and
// SQLite via standard drivers; the caller supplies the open *sql.DB.
type SQLLog struct {
	db    *sql.DB
	clock func() time.Time
}

// NewSQLLog creates a SQLLog over db.
func NewSQLLog(db *sql.DB) *SQLLog {
	return &SQLLog{db: db, clock: time.Now}
}

const sqlLogSchema = `
CREATE TABLE IF NOT EXISTS contract_events (
	id TEXT PRIMARY KEY,
	seq BIGINT NOT NULL UNIQUE,
	topics TEXT NOT NULL,
	payload TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
`

// Init creates the backing table if it does not exist.
func (l *SQLLog) Init(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, sqlLogSchema)
	return err
}

// Events returns the log's publishing facility.
func (l *SQLLog) Events() Publisher { return l }

// Publish appends one event inside a transaction, assigning the next
// sequence number. Concurrent publishers racing for the same sequence fail
// on the unique constraint and roll back. On error nothing is appended.
func (l *SQLLog) Publish(ctx context.Context, topics []event.Topic, data [][]byte) error {
	topicsJSON, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("publish event: marshal topics: %w", err)
	}
	payloadJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("publish event: marshal payload: %w", err)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("publish event: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var seq uint64
	row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM contract_events`)
	if err := row.Scan(&seq); err != nil {
		return fmt.Errorf("publish event: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO contract_events (id, seq, topics, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New().String(), seq, string(topicsJSON), string(payloadJSON), l.clock().UTC(),
	)
	if err != nil {
		return fmt.Errorf("publish event: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("publish event: commit: %w", err)
	}
	return nil
}
