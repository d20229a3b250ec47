// Package wizard holds the questionnaire state machine: step navigation,
// validation-gated forward motion, the review phase and the submission
// lifecycle.
package wizard

import "fmt"

// Phase is the coarse position of a session in its lifecycle.
type Phase int

const (
	// PhaseActive is ordinary step-by-step editing.
	PhaseActive Phase = iota
	// PhaseAwaitingFinalReview shows the notes panel once more before sending.
	// The step index stays one before the last step.
	PhaseAwaitingFinalReview
	// PhaseSubmitting means a submission is in flight.
	PhaseSubmitting
	// PhaseSubmitted is terminal until Reset.
	PhaseSubmitted
	// PhaseFailed holds the last submission error; the user may resubmit.
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "Active"
	case PhaseAwaitingFinalReview:
		return "AwaitingFinalReview"
	case PhaseSubmitting:
		return "Submitting"
	case PhaseSubmitted:
		return "Submitted"
	case PhaseFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the whole wizard state of one session. LastError is empty
// unless Phase is PhaseFailed.
type State struct {
	StepIndex int
	Phase     Phase
	LastError string
}

// Start is the state of a fresh session.
func Start() State {
	return State{StepIndex: 0, Phase: PhaseActive}
}

// EventKind enumerates the inputs to Reduce.
type EventKind int

const (
	EventAdvance EventKind = iota
	EventRetreat
	EventJump
	EventBack
	EventSubmitStarted
	EventSubmitSucceeded
	EventSubmitFailed
	EventReset
)

// Event is a transition request. Validation has already happened by the
// time an event reaches Reduce: Target is only meaningful for EventJump and
// Err only for EventSubmitFailed.
type Event struct {
	Kind   EventKind
	Target int
	Err    string
}

// Reduce applies ev to s for a catalog whose last step index is last.
// Events that are not allowed in the current state return s unchanged.
func Reduce(s State, ev Event, last int) State {
	switch ev.Kind {
	case EventAdvance:
		if s.Phase != PhaseActive || s.StepIndex >= last {
			return s
		}
		if s.StepIndex == last-1 {
			s.Phase = PhaseAwaitingFinalReview
			return s
		}
		s.StepIndex++

	case EventRetreat:
		if s.Phase != PhaseActive || s.StepIndex <= 0 {
			return s
		}
		s.StepIndex--

	case EventJump:
		if s.Phase != PhaseActive || ev.Target < 0 || ev.Target > last {
			return s
		}
		s.StepIndex = ev.Target

	case EventBack:
		if s.Phase != PhaseAwaitingFinalReview && s.Phase != PhaseFailed {
			return s
		}
		s.Phase = PhaseActive
		s.StepIndex = max(last-1, 0)
		s.LastError = ""

	case EventSubmitStarted:
		if !Submittable(s.Phase) {
			return s
		}
		s.Phase = PhaseSubmitting
		s.LastError = ""

	case EventSubmitSucceeded:
		if s.Phase != PhaseSubmitting {
			return s
		}
		s.Phase = PhaseSubmitted

	case EventSubmitFailed:
		if s.Phase != PhaseSubmitting {
			return s
		}
		s.Phase = PhaseFailed
		s.LastError = ev.Err

	case EventReset:
		if s.Phase != PhaseSubmitted && s.Phase != PhaseFailed {
			return s
		}
		return Start()
	}
	return s
}

// Submittable reports whether a submission may start from phase p.
func Submittable(p Phase) bool {
	return p == PhaseActive || p == PhaseAwaitingFinalReview || p == PhaseFailed
}
