package booking

import "github.com/fsw-barber/booking-api/internal/httperr"

// ===============================
// Submission attempt FSM
// ===============================

// State of one submission attempt:
//
//	Idle -> Submitting -> Confirmed | Failed |
//	                      RejectedUnauthenticated | RejectedIncomplete
//
// Every terminal state returns to Idle via Reset, which also clears
// the selection.
type State string

const (
	StateIdle                    State = "idle"
	StateSubmitting              State = "submitting"
	StateConfirmed               State = "confirmed"
	StateFailed                  State = "failed"
	StateRejectedUnauthenticated State = "rejected_unauthenticated"
	StateRejectedIncomplete      State = "rejected_incomplete"
)

func (s State) Terminal() bool {
	switch s {
	case StateConfirmed, StateFailed, StateRejectedUnauthenticated, StateRejectedIncomplete:
		return true
	}
	return false
}

// Attempt is the explicit value object tracking one booking
// submission. Submitting doubles as the busy flag: Begin refuses to
// run while a previous call is still outstanding.
type Attempt struct {
	State     State
	Selection Selection
}

func NewAttempt(sel Selection) *Attempt {
	return &Attempt{
		State:     StateIdle,
		Selection: sel,
	}
}

func (a *Attempt) Begin() error {
	if a.State == StateSubmitting {
		return httperr.ErrBusiness(CodeSubmissionInProgress)
	}
	if a.State != StateIdle {
		return httperr.ErrBusiness(CodeInvalidState)
	}

	a.State = StateSubmitting
	return nil
}

func (a *Attempt) Finish(outcome State) error {
	if a.State != StateSubmitting || !outcome.Terminal() {
		return httperr.ErrBusiness(CodeInvalidState)
	}

	a.State = outcome
	return nil
}

// Reset returns the attempt to Idle and drops the selection, matching
// the cleared date/slot after any outcome.
func (a *Attempt) Reset() {
	a.State = StateIdle
	a.Selection = Selection{}
}
