package queries

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrVerifyStreamQueryIsNotConstructed = errors.New(
	"VerifyStreamQuery must be created via NewVerifyStreamQuery constructor",
)

// VerifyStreamQuery audits one stream's hash chain.
type VerifyStreamQuery struct {
	streamID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyStreamQuery creates a query to audit a stream.
func NewVerifyStreamQuery(streamID kernel.UUID) (VerifyStreamQuery, error) {
	if err := streamID.Validate(); err != nil {
		return VerifyStreamQuery{}, err
	}

	return VerifyStreamQuery{
		streamID: streamID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q VerifyStreamQuery) Validate() error {
	return q.guard.Validate(ErrVerifyStreamQueryIsNotConstructed)
}

// StreamID returns the stream to audit.
func (q VerifyStreamQuery) StreamID() kernel.UUID {
	return q.streamID
}

// StreamVerificationResponse is the audit report for one stream.
// A healthy stream has OK true and no violations.
type StreamVerificationResponse struct {
	StreamID     kernel.UUID
	PackageCount int
	Violations   []string
	OK           bool
}
