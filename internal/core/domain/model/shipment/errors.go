package shipment

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminalState is the unwrap target for TerminalStateError.
	ErrTerminalState = errors.New("terminal state transition")

	// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrOfficeHopNotAllowed is the unwrap target for OfficeHopNotAllowedError.
	ErrOfficeHopNotAllowed = errors.New("office hop not allowed")
)

// TerminalStateError indicates an attempted transition out of a terminal state.
type TerminalStateError struct {
	From Status
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("terminal state transition from %s", e.From)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// InvalidTransitionError indicates a from/to pair the status machine does not allow.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// OfficeHopNotAllowedError indicates an office change on a transition that is
// not into InTransit.
type OfficeHopNotAllowedError struct {
	From Status
	To   Status
}

func (e *OfficeHopNotAllowedError) Error() string {
	return fmt.Sprintf("office hop not allowed from %s to %s", e.From, e.To)
}

func (e *OfficeHopNotAllowedError) Unwrap() error {
	return ErrOfficeHopNotAllowed
}
