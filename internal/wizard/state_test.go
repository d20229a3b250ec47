package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	const last = 4

	tests := []struct {
		name string
		in   State
		ev   Event
		want State
	}{
		{
			name: "advance increments",
			in:   State{StepIndex: 1, Phase: PhaseActive},
			ev:   Event{Kind: EventAdvance},
			want: State{StepIndex: 2, Phase: PhaseActive},
		},
		{
			name: "advance before last opens review",
			in:   State{StepIndex: last - 1, Phase: PhaseActive},
			ev:   Event{Kind: EventAdvance},
			want: State{StepIndex: last - 1, Phase: PhaseAwaitingFinalReview},
		},
		{
			name: "advance on last is a no-op",
			in:   State{StepIndex: last, Phase: PhaseActive},
			ev:   Event{Kind: EventAdvance},
			want: State{StepIndex: last, Phase: PhaseActive},
		},
		{
			name: "advance during review is a no-op",
			in:   State{StepIndex: last - 1, Phase: PhaseAwaitingFinalReview},
			ev:   Event{Kind: EventAdvance},
			want: State{StepIndex: last - 1, Phase: PhaseAwaitingFinalReview},
		},
		{
			name: "retreat decrements",
			in:   State{StepIndex: 3, Phase: PhaseActive},
			ev:   Event{Kind: EventRetreat},
			want: State{StepIndex: 2, Phase: PhaseActive},
		},
		{
			name: "retreat at zero is a no-op",
			in:   Start(),
			ev:   Event{Kind: EventRetreat},
			want: Start(),
		},
		{
			name: "jump in bounds",
			in:   State{StepIndex: 0, Phase: PhaseActive},
			ev:   Event{Kind: EventJump, Target: last},
			want: State{StepIndex: last, Phase: PhaseActive},
		},
		{
			name: "jump out of bounds",
			in:   State{StepIndex: 2, Phase: PhaseActive},
			ev:   Event{Kind: EventJump, Target: last + 1},
			want: State{StepIndex: 2, Phase: PhaseActive},
		},
		{
			name: "jump negative",
			in:   State{StepIndex: 2, Phase: PhaseActive},
			ev:   Event{Kind: EventJump, Target: -1},
			want: State{StepIndex: 2, Phase: PhaseActive},
		},
		{
			name: "back from review",
			in:   State{StepIndex: last - 1, Phase: PhaseAwaitingFinalReview},
			ev:   Event{Kind: EventBack},
			want: State{StepIndex: last - 1, Phase: PhaseActive},
		},
		{
			name: "back from failed clears error",
			in:   State{StepIndex: last - 1, Phase: PhaseFailed, LastError: "boom"},
			ev:   Event{Kind: EventBack},
			want: State{StepIndex: last - 1, Phase: PhaseActive},
		},
		{
			name: "back while active is a no-op",
			in:   State{StepIndex: 2, Phase: PhaseActive},
			ev:   Event{Kind: EventBack},
			want: State{StepIndex: 2, Phase: PhaseActive},
		},
		{
			name: "submit from review",
			in:   State{StepIndex: last - 1, Phase: PhaseAwaitingFinalReview},
			ev:   Event{Kind: EventSubmitStarted},
			want: State{StepIndex: last - 1, Phase: PhaseSubmitting},
		},
		{
			name: "resubmit from failed clears error",
			in:   State{StepIndex: last - 1, Phase: PhaseFailed, LastError: "boom"},
			ev:   Event{Kind: EventSubmitStarted},
			want: State{StepIndex: last - 1, Phase: PhaseSubmitting},
		},
		{
			name: "submit never re-enters submitting",
			in:   State{StepIndex: last - 1, Phase: PhaseSubmitting},
			ev:   Event{Kind: EventSubmitStarted},
			want: State{StepIndex: last - 1, Phase: PhaseSubmitting},
		},
		{
			name: "submit after submitted is a no-op",
			in:   State{StepIndex: last - 1, Phase: PhaseSubmitted},
			ev:   Event{Kind: EventSubmitStarted},
			want: State{StepIndex: last - 1, Phase: PhaseSubmitted},
		},
		{
			name: "success keeps index",
			in:   State{StepIndex: last - 1, Phase: PhaseSubmitting},
			ev:   Event{Kind: EventSubmitSucceeded},
			want: State{StepIndex: last - 1, Phase: PhaseSubmitted},
		},
		{
			name: "failure stores error",
			in:   State{StepIndex: last - 1, Phase: PhaseSubmitting},
			ev:   Event{Kind: EventSubmitFailed, Err: "boom"},
			want: State{StepIndex: last - 1, Phase: PhaseFailed, LastError: "boom"},
		},
		{
			name: "outcome outside submitting is ignored",
			in:   State{StepIndex: 1, Phase: PhaseActive},
			ev:   Event{Kind: EventSubmitFailed, Err: "late"},
			want: State{StepIndex: 1, Phase: PhaseActive},
		},
		{
			name: "navigation is frozen while submitted",
			in:   State{StepIndex: 2, Phase: PhaseSubmitted},
			ev:   Event{Kind: EventRetreat},
			want: State{StepIndex: 2, Phase: PhaseSubmitted},
		},
		{
			name: "reset from submitted",
			in:   State{StepIndex: last - 1, Phase: PhaseSubmitted},
			ev:   Event{Kind: EventReset},
			want: Start(),
		},
		{
			name: "reset from failed",
			in:   State{StepIndex: last - 1, Phase: PhaseFailed, LastError: "boom"},
			ev:   Event{Kind: EventReset},
			want: Start(),
		},
		{
			name: "reset while active is a no-op",
			in:   State{StepIndex: 3, Phase: PhaseActive},
			ev:   Event{Kind: EventReset},
			want: State{StepIndex: 3, Phase: PhaseActive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.in, tt.ev, last))
		})
	}
}

func TestReduce_IndexStaysInBounds(t *testing.T) {
	const last = 3
	events := []Event{
		{Kind: EventAdvance}, {Kind: EventAdvance}, {Kind: EventAdvance}, {Kind: EventAdvance},
		{Kind: EventBack}, {Kind: EventAdvance}, {Kind: EventBack}, {Kind: EventJump, Target: 3},
		{Kind: EventRetreat}, {Kind: EventRetreat}, {Kind: EventRetreat}, {Kind: EventRetreat},
		{Kind: EventJump, Target: 99},
	}

	s := Start()
	for i, ev := range events {
		s = Reduce(s, ev, last)
		assert.GreaterOrEqual(t, s.StepIndex, 0, "event %d", i)
		assert.LessOrEqual(t, s.StepIndex, last, "event %d", i)
	}
	assert.Equal(t, Start(), s)
}

func TestReduce_RetreatIsUnconditional(t *testing.T) {
	const last = 5
	for i := 0; i < last; i++ {
		got := Reduce(State{StepIndex: i + 1, Phase: PhaseActive}, Event{Kind: EventRetreat}, last)
		assert.Equal(t, i, got.StepIndex)
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "AwaitingFinalReview", PhaseAwaitingFinalReview.String())
	assert.Equal(t, "Phase(42)", Phase(42).String())
}
