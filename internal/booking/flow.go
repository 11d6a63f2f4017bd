package booking

import "fmt"

// StepRedirectError reports a failed step guard. It carries the step the
// client must fall back to; the session is never modified when it is
// returned. This is the whole error-recovery story of the flow.
type StepRedirectError struct {
	Redirect Step
}

func (e *StepRedirectError) Error() string {
	return fmt.Sprintf("booking step prerequisites not met, redirect to %s", e.Redirect)
}

// CurrentStep derives the furthest step a session may enter from its state
// alone. The step is never stored; it is always recomputed, so stale or
// hand-crafted session state cannot skip ahead.
func CurrentStep(d *BookingDetails) Step {
	switch {
	case d == nil || !d.HasEventAndDate():
		return StepDetail
	case d.IsConfirmed():
		return StepTicket
	case d.HasSeats():
		return StepSummary
	default:
		return StepSelectSeats
	}
}

// guardSelectSeats gates the seat selection step on a completed Detail step
func guardSelectSeats(d *BookingDetails) error {
	if d == nil || !d.HasEventAndDate() {
		return &StepRedirectError{Redirect: StepDetail}
	}
	return nil
}

// guardSummary additionally requires a non-empty selection. The original
// storefront sends a seatless summary visit all the way back to Detail,
// not to seat selection, and that behavior is kept.
func guardSummary(d *BookingDetails) error {
	if d == nil || !d.HasEventAndDate() || !d.HasSeats() {
		return &StepRedirectError{Redirect: StepDetail}
	}
	return nil
}

// guardTicket gates the terminal step on a confirmed payment
func guardTicket(d *BookingDetails) error {
	if d == nil || d.Event.ID == "" || !d.IsConfirmed() {
		return &StepRedirectError{Redirect: StepSummary}
	}
	return nil
}
