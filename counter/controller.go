package counter

import (
	"log/slog"
	"strconv"

	"github.com/AnatoleLucet/rxcounter"
)

// Controller owns the active counter and routes UI actions to it.
type Controller struct {
	display Display
	labels  Labels
	logger  *slog.Logger

	// parent of every session owner, catches display panics
	root    *rxcounter.Owner
	session *session
}

// session is one counter: its subject, the observers wired to it and its value.
type session struct {
	owner   *rxcounter.Owner
	counter *rxcounter.Subject[int]

	value int
	phase Phase
}

// New creates a controller rendering to display. No counter exists until StartNewCounter.
func New(display Display, opts ...Option) *Controller {
	o := options{
		labels: English,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	c := &Controller{
		display: display,
		labels:  o.labels,
		logger:  o.logger,
		root:    rxcounter.NewOwner(),
	}

	c.root.OnError(func(r any) {
		c.logger.Error("display panicked while rendering", "panic", r)
	})

	return c
}

// StartNewCounter abandons the current counter, whatever its phase, and starts
// a new one: the status slot gets the started label and 0 is emitted to both views.
func (c *Controller) StartNewCounter() {
	if c.session != nil {
		c.session.owner.Dispose()
	}

	s := &session{phase: PhaseActive}
	_ = c.root.Run(func() error {
		s.owner = rxcounter.NewOwner()
		s.counter = rxcounter.NewSubject[int]()
		return nil
	})
	c.session = s

	c.display.SetStatus(c.labels.Started)

	_ = s.owner.Run(func() error {
		evens := rxcounter.Filter[int](s.counter, isEven)

		s.counter.Subscribe(rxcounter.Observer[int]{
			Next: func(v int) {
				c.display.SetCurrentCount(strconv.Itoa(v))
			},
			Error: func(err error) {
				c.display.SetStatus(err.Error())
			},
			Complete: func() {
				c.display.SetStatus(c.labels.Completed)
			},
		})

		evens.Subscribe(rxcounter.Observer[int]{
			Next: func(v int) {
				c.display.SetEvenCount(strconv.Itoa(v))
			},
		})

		return nil
	})

	c.logger.Debug("counter started")

	s.counter.Next(s.value)
}

// Increment adds one to the active counter and emits the new value.
func (c *Controller) Increment() {
	s := c.active("increment")
	if s == nil {
		return
	}

	s.value++
	s.counter.Next(s.value)
}

// RaiseError terminates the active counter with message, or with the
// error fallback label when message is empty.
func (c *Controller) RaiseError(message string) {
	s := c.active("raise error")
	if s == nil {
		return
	}

	if message == "" {
		message = c.labels.ErrorFallback
	}

	s.phase = PhaseErrored
	s.counter.Error(&RaisedError{Message: message})

	c.logger.Debug("counter terminated", "phase", s.phase, "value", s.value)
}

// Complete terminates the active counter normally.
func (c *Controller) Complete() {
	s := c.active("complete")
	if s == nil {
		return
	}

	s.phase = PhaseCompleted
	s.counter.Complete()

	c.logger.Debug("counter terminated", "phase", s.phase, "value", s.value)
}

// Dispatch routes a UI action to the matching operation.
func (c *Controller) Dispatch(a Action) {
	switch a.Kind {
	case ActionStart:
		c.StartNewCounter()
	case ActionIncrement:
		c.Increment()
	case ActionRaiseError:
		c.RaiseError(a.Message)
	case ActionComplete:
		c.Complete()
	default:
		c.logger.Warn("dropping unknown action", "kind", int(a.Kind))
	}
}

// State returns the phase and value of the current counter.
func (c *Controller) State() State {
	if c.session == nil {
		return State{Phase: PhaseUninitialized}
	}

	return State{
		Phase: c.session.phase,
		Value: c.session.value,
		Err:   c.session.counter.Err(),
	}
}

// Labels returns the texts the controller writes to the status slot.
func (c *Controller) Labels() Labels {
	return c.labels
}

func (c *Controller) active(action string) *session {
	if c.session == nil || c.session.phase.Terminal() {
		c.logger.Debug("no active counter, ignoring action", "action", action)
		return nil
	}

	return c.session
}

func isEven(v int) bool {
	return v%2 == 0
}
