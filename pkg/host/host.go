// Package host models the ledger host environment as injected capabilities.
//
// The contract never touches ambient global state: it receives an Env and
// publishes through it. The implementations in this package are the host
// side of that contract — append-only event logs over memory, an io.Writer,
// Postgres, or a Redis stream. Each Publish appends exactly one entry or
// fails with no partial effect.
package host

import (
	"context"
	"errors"

	"github.com/Mindburn-Labs/ledgermark/pkg/event"
)

// ErrLogFull indicates the host refused the append due to a resource limit.
var ErrLogFull = errors.New("event log is full")

// Publisher appends events to the current invocation's event log.
type Publisher interface {
	Publish(ctx context.Context, topics []event.Topic, data [][]byte) error
}

// Env is the environment handle a contract invocation receives.
type Env interface {
	Events() Publisher
}
