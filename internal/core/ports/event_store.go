// Package ports defines the contracts between the application core and
// infrastructure. These interfaces establish the dependency inversion
// boundary: use cases depend on them, adapters implement them.
package ports

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"
)

// ErrStreamNotFound is returned by Append when the target stream does not
// exist. Appending never creates streams implicitly.
var ErrStreamNotFound = errors.New("event stream not found")

// StreamPackage is one sealed entry of an event stream as stored: its
// position, type, hash-chain links and decoded payload.
type StreamPackage struct {
	// Seq is the 1-based position of the package within its stream.
	Seq int64

	// EventType names the kind of event the payload carries.
	EventType string

	// Hash is the content hash of the package's canonical bytes.
	Hash []byte

	// PrevHash is the hash of the preceding package, nil for the first one.
	PrevHash []byte

	// Value is the decoded event payload.
	Value strata.Value
}

// EventStore defines the persistence contract for append-only, hash-chained
// event streams. One stream holds the full history of one aggregate.
type EventStore interface {
	// EnsureStream creates the stream if it does not exist yet.
	// Calling it for an existing stream is a no-op; the kind of an
	// existing stream is never rewritten.
	EnsureStream(ctx context.Context, streamID kernel.UUID, kind string) error

	// Append seals a new package at the head of the stream and returns its
	// content hash. The stream head is locked for the duration of the
	// write, so concurrent appends to one stream serialize and each
	// package links to the real previous head. Returns ErrStreamNotFound
	// if the stream was never created.
	Append(ctx context.Context, streamID kernel.UUID, eventType string, value strata.Value) ([]byte, error)

	// ReadOrdered returns every package of the stream in ascending
	// sequence order with payloads decoded. An unknown stream yields an
	// empty slice, not an error.
	ReadOrdered(ctx context.Context, streamID kernel.UUID) ([]StreamPackage, error)
}
