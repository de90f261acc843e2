// Package contract implements the ledgermark events contract.
//
// The contract has a single entrypoint, Init, which records the given admin
// identity by publishing one "init" event to the host event log. It owns no
// state of its own: each call is independent and there is no restriction on
// calling Init more than once — every call appends a new event.
package contract

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Mindburn-Labs/ledgermark/pkg/event"
	"github.com/Mindburn-Labs/ledgermark/pkg/host"
	"github.com/Mindburn-Labs/ledgermark/pkg/identity"
)

const tracerName = "github.com/Mindburn-Labs/ledgermark/pkg/contract"

// EventsContract binds the entrypoint to an injected host environment.
type EventsContract struct {
	env host.Env
}

// New creates an EventsContract over the given host environment.
func New(env host.Env) *EventsContract {
	return &EventsContract{env: env}
}

// Init records the admin identity by publishing exactly one event with topic
// ("init",) and payload (encode(admin),).
//
// Success is silent. If the host refuses the publish the error propagates to
// the caller and no event is recorded; the contract does not retry.
func (c *EventsContract) Init(ctx context.Context, admin identity.Identity) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "contract.init")
	defer span.End()
	span.SetAttributes(attribute.String("identity.kind", string(admin.Kind())))

	encoded, err := identity.Encode(admin)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode admin identity")
		return fmt.Errorf("init: encode admin identity: %w", err)
	}

	err = c.env.Events().Publish(ctx, []event.Topic{event.TopicInit}, [][]byte{encoded})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish init event")
		return fmt.Errorf("init: publish event: %w", err)
	}
	return nil
}
