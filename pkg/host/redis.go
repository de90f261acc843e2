package host

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Mindburn-Labs/ledgermark/pkg/event"
)

// RedisLog appends events to a Redis stream via XADD. Redis streams are
// append-only, which matches the host event-log contract.
type RedisLog struct {
	client *redis.Client
	stream string
}

// NewRedisLog creates a RedisLog publishing to the named stream.
func NewRedisLog(addr, password string, db int, stream string) *RedisLog {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisLog{client: rdb, stream: stream}
}

// NewRedisLogWithClient creates a RedisLog over an existing client.
func NewRedisLogWithClient(client *redis.Client, stream string) *RedisLog {
	return &RedisLog{client: client, stream: stream}
}

// Events returns the log's publishing facility.
func (l *RedisLog) Events() Publisher { return l }

// Publish appends one event to the stream.
func (l *RedisLog) Publish(ctx context.Context, topics []event.Topic, data [][]byte) error {
	topicsJSON, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("publish event: marshal topics: %w", err)
	}
	payloadJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("publish event: marshal payload: %w", err)
	}

	err = l.client.XAdd(ctx, &redis.XAddArgs{
		Stream: l.stream,
		Values: map[string]interface{}{
			"topics":  string(topicsJSON),
			"payload": string(payloadJSON),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish event: xadd: %w", err)
	}
	return nil
}

// Close releases the underlying client connection.
func (l *RedisLog) Close() error {
	return l.client.Close()
}
