package shipment

type statusPair struct {
	from Status
	to   Status
}

// allowedTransitions is the complete set of legal lifecycle moves:
// the forward progression plus cancellation from any non-terminal state.
var allowedTransitions = map[statusPair]struct{}{
	{New, Accepted}:        {},
	{Accepted, Processed}:  {},
	{Processed, InTransit}: {},
	{InTransit, Delivered}: {},

	{New, Cancelled}:       {},
	{Accepted, Cancelled}:  {},
	{Processed, Cancelled}: {},
	{InTransit, Cancelled}: {},
}

// ValidateTransition decides whether a status change is legal.
//
// Rules, in order:
//  1. nothing leaves a terminal state, the same state included
//  2. an office change may only accompany a transition into InTransit
//  3. the pair must be one of the explicitly allowed transitions
//
// Pure function with no hidden state; callable without any storage.
func ValidateTransition(from, to Status, officeChanged bool) error {
	if from.IsTerminal() {
		return &TerminalStateError{From: from}
	}

	if officeChanged && to != InTransit {
		return &OfficeHopNotAllowedError{From: from, To: to}
	}

	if _, ok := allowedTransitions[statusPair{from, to}]; !ok {
		return &InvalidTransitionError{From: from, To: to}
	}

	return nil
}
