package host

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mindburn-Labs/ledgermark/pkg/event"
)

func TestMemoryLog_Publish(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	log := NewMemoryLog().WithClock(func() time.Time { return now })
	ctx := context.Background()

	payload := []byte(`{"v":1}`)
	require.NoError(t, log.Publish(ctx, []event.Topic{event.TopicInit}, [][]byte{payload}))

	entries := log.Entries()
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, uint64(1), entry.Seq)
	assert.Equal(t, []event.Topic{event.TopicInit}, entry.Event.Topics)
	assert.Equal(t, [][]byte{payload}, entry.Event.Data)
	assert.Equal(t, "genesis", entry.PrevHash)
	assert.Equal(t, now, entry.Timestamp)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, entry.ContentHash, log.Head())
}

func TestMemoryLog_HashChain(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	require.NoError(t, log.Publish(ctx, []event.Topic{"a"}, [][]byte{[]byte("1")}))
	require.NoError(t, log.Publish(ctx, []event.Topic{"b"}, [][]byte{[]byte("2")}))

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(1), entries[0].Seq)
	assert.Equal(t, uint64(2), entries[1].Seq)
	assert.Equal(t, entries[0].ContentHash, entries[1].PrevHash)
	assert.Equal(t, entries[1].ContentHash, log.Head())
	assert.NotEqual(t, entries[0].ContentHash, entries[1].ContentHash)
}

func TestMemoryLog_MaxEntries(t *testing.T) {
	log := NewMemoryLog().WithMaxEntries(1)
	ctx := context.Background()

	require.NoError(t, log.Publish(ctx, []event.Topic{"a"}, [][]byte{[]byte("1")}))

	err := log.Publish(ctx, []event.Topic{"b"}, [][]byte{[]byte("2")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogFull)

	// The failed publish must leave no partial effect.
	assert.Len(t, log.Entries(), 1)
}

func TestMemoryLog_ContextCancelled(t *testing.T) {
	log := NewMemoryLog()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := log.Publish(ctx, []event.Topic{"a"}, [][]byte{[]byte("1")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, log.Entries())
}

func TestMemoryLog_EntriesShareNoMemory(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	payload := []byte{0x01, 0x02, 0x03}
	require.NoError(t, log.Publish(ctx, []event.Topic{event.TopicInit}, [][]byte{payload}))

	// Mutating the caller's payload after publish must not reach the log.
	payload[0] = 0xFF

	// Neither must mutating a snapshot.
	snapshot := log.Entries()
	snapshot[0].Event.Data[0][1] = 0xFF
	snapshot[0].Event.Topics[0] = "tampered"

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, entries[0].Event.Data[0])
	assert.Equal(t, []event.Topic{event.TopicInit}, entries[0].Event.Topics)
}

func TestMemoryLog_EntriesSnapshot(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	require.NoError(t, log.Publish(ctx, []event.Topic{"a"}, [][]byte{[]byte("1")}))

	snapshot := log.Entries()
	require.NoError(t, log.Publish(ctx, []event.Topic{"b"}, [][]byte{[]byte("2")}))

	assert.Len(t, snapshot, 1)
	assert.Len(t, log.Entries(), 2)
}
