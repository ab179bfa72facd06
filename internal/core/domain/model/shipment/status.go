package shipment

import (
	"fmt"

	"github.com/Emagjby/LogiPack/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned on shipment creation.
	New

	// Accepted indicates the shipment was accepted at an office.
	Accepted

	// Processed indicates the shipment was processed and is ready to move.
	Processed

	// InTransit indicates the shipment is moving between offices.
	// This is the only status a shipment may change offices into.
	InTransit

	// Delivered is a terminal status: the shipment reached its recipient.
	Delivered

	// Cancelled is a terminal status: the shipment was cancelled.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		New:       "NEW",
		Accepted:  "ACCEPTED",
		Processed: "PROCESSED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "NEW",
		Accepted:  "ACCEPTED",
		Processed: "PROCESSED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the persisted wire form back to a Status.
// Unrecognized input is an error, never silently mapped to a default:
// a snapshot row holding an unparseable status is corrupt data and must
// surface as such.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the persisted wire form of the status.
// Implements fmt.Stringer; safe on any value, invalid ones read "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are permitted out of s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
