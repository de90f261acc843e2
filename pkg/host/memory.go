package host

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mindburn-Labs/ledgermark/pkg/event"
)

// Entry is an immutable, hash-chained record in a MemoryLog.
type Entry struct {
	ID          string      `json:"id"`
	Seq         uint64      `json:"seq"`
	Event       event.Event `json:"event"`
	ContentHash string      `json:"content_hash"`
	PrevHash    string      `json:"prev_hash"`
	Timestamp   time.Time   `json:"timestamp"`
}

// MemoryLog is an append-only, hash-chained in-memory event log.
//
// It implements both Env and Publisher, which makes it the default host for
// tests: construct one, hand it to the contract, then inspect Entries.
type MemoryLog struct {
	mu         sync.RWMutex
	entries    []Entry
	headHash   string
	clock      func() time.Time
	maxEntries int
}

// NewMemoryLog creates an empty log with no capacity limit.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{headHash: "genesis", clock: time.Now}
}

// WithClock overrides the clock for testing.
func (l *MemoryLog) WithClock(clock func() time.Time) *MemoryLog {
	l.clock = clock
	return l
}

// WithMaxEntries caps the log; appends past the cap fail with ErrLogFull.
// A non-positive limit means unlimited.
func (l *MemoryLog) WithMaxEntries(n int) *MemoryLog {
	l.maxEntries = n
	return l
}

// Events returns the log's publishing facility.
func (l *MemoryLog) Events() Publisher { return l }

// Publish appends one event to the log. On error nothing is appended.
func (l *MemoryLog) Publish(ctx context.Context, topics []event.Topic, data [][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.maxEntries > 0 && len(l.entries) >= l.maxEntries {
		return fmt.Errorf("publish event: %w", ErrLogFull)
	}

	seq := uint64(len(l.entries)) + 1
	// Copy the tuples so later caller mutations cannot reach the log.
	evt := event.New(topics, data).Clone()

	hashInput := struct {
		Seq      uint64      `json:"seq"`
		Event    event.Event `json:"event"`
		PrevHash string      `json:"prev"`
	}{seq, evt, l.headHash}

	raw, err := json.Marshal(hashInput)
	if err != nil {
		return fmt.Errorf("publish event: marshal entry: %w", err)
	}
	h := sha256.Sum256(raw)
	contentHash := "sha256:" + hex.EncodeToString(h[:])

	l.entries = append(l.entries, Entry{
		ID:          uuid.New().String(),
		Seq:         seq,
		Event:       evt,
		ContentHash: contentHash,
		PrevHash:    l.headHash,
		Timestamp:   l.clock().UTC(),
	})
	l.headHash = contentHash

	return nil
}

// Entries returns a snapshot of the log in append order. The snapshot shares
// no memory with the log; mutating it does not affect recorded entries.
func (l *MemoryLog) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	for i, entry := range l.entries {
		entry.Event = entry.Event.Clone()
		out[i] = entry
	}
	return out
}

// Head returns the current head hash.
func (l *MemoryLog) Head() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.headHash
}
