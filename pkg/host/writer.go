package host

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mindburn-Labs/ledgermark/pkg/event"
)

// WriterLog publishes events as JSON lines to an io.Writer.
type WriterLog struct {
	mu     sync.Mutex
	writer io.Writer
	clock  func() time.Time
}

// writerRecord is the line shape emitted for each event.
type writerRecord struct {
	ID        string      `json:"id"`
	Event     event.Event `json:"event"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewWriterLog creates a WriterLog writing to os.Stdout.
func NewWriterLog() *WriterLog {
	return NewWriterLogWithWriter(os.Stdout)
}

// NewWriterLogWithWriter creates a WriterLog writing to the given writer.
// This allows injection for testing and custom sinks.
func NewWriterLogWithWriter(w io.Writer) *WriterLog {
	if w == nil {
		w = os.Stdout
	}
	return &WriterLog{writer: w, clock: time.Now}
}

// Events returns the log's publishing facility.
func (l *WriterLog) Events() Publisher { return l }

// Publish writes one event record as a single JSON line.
func (l *WriterLog) Publish(ctx context.Context, topics []event.Topic, data [][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec := writerRecord{
		ID:        uuid.New().String(),
		Event:     event.New(topics, data),
		Timestamp: l.clock().UTC(),
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = l.writer.Write(append(line, '\n'))
	return err
}
