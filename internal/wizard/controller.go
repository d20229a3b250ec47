package wizard

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/mark3labs/voiceintake/internal/logger"
	"github.com/mark3labs/voiceintake/internal/submit"
)

var (
	// ErrInvalidRecord is returned by Submit when the record fails validation.
	ErrInvalidRecord = errors.New("form has invalid or missing answers")
	// ErrSubmitInFlight is returned when a submission is already running.
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrNotSubmittable is returned when the phase does not allow submitting.
	ErrNotSubmittable = errors.New("form cannot be submitted in its current state")
)

// Registry is the part of the field registry the controller needs.
type Registry interface {
	Values() form.Record
	Validate(keys []string) bool
	IsValid() bool
}

// Submitter performs the network half of a submission.
type Submitter interface {
	Probe(ctx context.Context) error
	Send(ctx context.Context, record map[string]any, sendEmail bool) (submit.Response, error)
}

// Controller owns the State of one session and is the only thing that
// changes it. It is driven from a single goroutine; only Dispatch may run
// elsewhere, since it touches nothing but the submitter.
type Controller struct {
	catalog   *form.Catalog
	registry  Registry
	submitter Submitter
	sendEmail bool
	onChange  func(prev, next State)

	state   State
	session string
}

// Option configures a Controller.
type Option func(*Controller)

// WithSendEmail sets the sendEmail flag posted with every record.
func WithSendEmail(send bool) Option {
	return func(c *Controller) {
		c.sendEmail = send
	}
}

// WithOnChange registers a callback invoked after every state change.
// The rendering layer uses it to reset scroll position.
func WithOnChange(fn func(prev, next State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// NewController creates a controller in the start state.
func NewController(catalog *form.Catalog, registry Registry, submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		catalog:   catalog,
		registry:  registry,
		submitter: submitter,
		sendEmail: true,
		state:     Start(),
		session:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Session returns the id of the current session. Reset starts a new one.
func (c *Controller) Session() string { return c.session }

// Catalog returns the step catalog.
func (c *Controller) Catalog() *form.Catalog { return c.catalog }

// Current returns the current step index.
func (c *Controller) Current() int { return c.state.StepIndex }

// Total returns the number of steps.
func (c *Controller) Total() int { return c.catalog.Len() }

// Titles returns the step titles in order.
func (c *Controller) Titles() []string { return c.catalog.Titles() }

// Advance validates the current step and moves forward. From the step
// before the last it opens the review phase instead of moving.
func (c *Controller) Advance() bool {
	s := c.state
	if s.Phase != PhaseActive || s.StepIndex >= c.catalog.Last() {
		return false
	}
	if !c.registry.Validate(c.catalog.Step(s.StepIndex).Keys()) {
		logger.Debug("Advance blocked on step %d", s.StepIndex)
		return false
	}
	return c.apply(Event{Kind: EventAdvance})
}

// Retreat moves back one step without validation.
func (c *Controller) Retreat() bool {
	return c.apply(Event{Kind: EventRetreat})
}

// JumpTo moves to target. Every step up to the current one is validated
// first so its errors show; only forward jumps are blocked by them.
func (c *Controller) JumpTo(target int) bool {
	s := c.state
	if s.Phase != PhaseActive || target < 0 || target > c.catalog.Last() || target == s.StepIndex {
		return false
	}
	valid := c.registry.Validate(c.catalog.KeysThrough(s.StepIndex))
	if target > s.StepIndex && !valid {
		logger.Debug("Jump from %d to %d blocked", s.StepIndex, target)
		return false
	}
	return c.apply(Event{Kind: EventJump, Target: target})
}

// BackFromReview leaves the review or failed screen for the step before
// the last, clearing any error.
func (c *Controller) BackFromReview() bool {
	return c.apply(Event{Kind: EventBack})
}

// BeginSubmit checks the preconditions of a submission, enters
// PhaseSubmitting and returns a snapshot of the record to send.
func (c *Controller) BeginSubmit() (form.Record, error) {
	switch {
	case c.state.Phase == PhaseSubmitting:
		return nil, ErrSubmitInFlight
	case !Submittable(c.state.Phase):
		return nil, ErrNotSubmittable
	}
	if !c.registry.IsValid() {
		c.registry.Validate(c.catalog.AllKeys())
		logger.Debug("Submit blocked: record invalid")
		return nil, ErrInvalidRecord
	}
	c.apply(Event{Kind: EventSubmitStarted})
	return c.registry.Values(), nil
}

// Dispatch probes the endpoint and posts rec. The returned error is a
// *submit.Error. Dispatch does not touch the controller state.
func (c *Controller) Dispatch(ctx context.Context, rec form.Record) error {
	if err := c.submitter.Probe(ctx); err != nil {
		logger.Error("Backend probe failed: %v", err)
		return submit.Unavailable(err)
	}

	resp, err := c.submitter.Send(ctx, rec, c.sendEmail)
	if err != nil {
		logger.Error("Submission failed: %v", err)
		return submit.NetworkFailure(err)
	}
	if !resp.OK() {
		logger.Error("Submission rejected: %d %s", resp.StatusCode, resp.Status)
		return submit.Rejected(resp)
	}
	logger.Info("Submission accepted for session %s", c.session)
	return nil
}

// CompleteSubmit records the outcome of Dispatch.
func (c *Controller) CompleteSubmit(err error) State {
	if err != nil {
		c.apply(Event{Kind: EventSubmitFailed, Err: err.Error()})
	} else {
		c.apply(Event{Kind: EventSubmitSucceeded})
	}
	return c.state
}

// Submit runs a whole submission synchronously. Precondition failures are
// returned without a state change; a failed submission leaves the
// controller in PhaseFailed and returns the *submit.Error.
func (c *Controller) Submit(ctx context.Context) error {
	rec, err := c.BeginSubmit()
	if err != nil {
		return err
	}
	err = c.Dispatch(ctx, rec)
	c.CompleteSubmit(err)
	return err
}

// Reset returns a submitted or failed session to the first step. Registry
// values are left alone.
func (c *Controller) Reset() bool {
	if !c.apply(Event{Kind: EventReset}) {
		return false
	}
	c.session = uuid.NewString()
	return true
}

// apply runs the reducer and reports whether the state changed.
func (c *Controller) apply(ev Event) bool {
	prev := c.state
	next := Reduce(prev, ev, c.catalog.Last())
	if next == prev {
		return false
	}
	c.state = next
	logger.Debug("Wizard %s/%d -> %s/%d", prev.Phase, prev.StepIndex, next.Phase, next.StepIndex)
	if c.onChange != nil {
		c.onChange(prev, next)
	}
	return true
}
