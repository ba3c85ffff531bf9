package ui

import (
	"errors"
	"fmt"
	"log"

	"github.com/OpticalFlyer/grog/native"
)

// ErrLoopRunning is returned by Run when the loop is already running.
var ErrLoopRunning = errors.New("application loop already running")

// WorkUnit is a deferred piece of loop work. Returning again == true
// queues the unit once more for a later iteration; returning a non-nil
// error stops the loop and makes Run return that error.
type WorkUnit func() (again bool, err error)

// ApplicationLoop runs the application: it pumps native events, broadcasts
// them to registered handlers and executes queued work units.
type ApplicationLoop interface {
	EventProducer

	// AddWorkUnit queues wu for execution.
	AddWorkUnit(wu WorkUnit)

	// Run blocks until Stop is called or a handler or work unit fails.
	Run() error

	// Stop requests a running loop to return once the event being
	// handled is done.
	Stop()
}

// EventSource is the native side of the loop: a blocking queue of backend
// events that also carries the loop's own wake-up notifications.
type EventSource interface {
	// WaitEvent blocks until the next event is available.
	WaitEvent() native.Event

	// PushEvent queues ev, waking WaitEvent.
	PushEvent(ev native.Event)

	// TakeMotion removes the motion events pending at the head of the
	// queue.
	TakeMotion() []native.Motion
}

// Loop is the ApplicationLoop over an EventSource. Every method but Run
// must be called from the goroutine running Run, or before Run starts.
type Loop struct {
	handlers

	source  EventSource
	units   []WorkUnit
	running bool
	logger  *log.Logger
}

var _ ApplicationLoop = (*Loop)(nil)

// NewLoop creates a loop with an empty work unit queue reading from
// source.
func NewLoop(source EventSource) *Loop {
	return &Loop{
		source: source,
		logger: log.Default(),
	}
}

// SetLogger sets the logger loop lifecycle messages are written to.
func (l *Loop) SetLogger(logger *log.Logger) {
	l.logger = logger
}

// AddWorkUnit queues wu and pushes one WorkPending notification, so each
// queued unit is matched by exactly one wake-up of Run.
func (l *Loop) AddWorkUnit(wu WorkUnit) {
	l.units = append(l.units, wu)
	l.source.PushEvent(native.WorkPending{})
}

// Pending returns the number of queued work units.
func (l *Loop) Pending() int {
	return len(l.units)
}

// Running reports whether Run is executing and no Stop was requested.
func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) Run() error {
	if l.running {
		return ErrLoopRunning
	}
	l.running = true
	defer func() { l.running = false }()

	l.logger.Printf("application loop started")
	for l.running {
		if err := l.handle(l.source.WaitEvent()); err != nil {
			l.logger.Printf("application loop aborted: %v", err)
			return err
		}
	}
	l.logger.Printf("application loop stopped")
	return nil
}

func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) handle(ev native.Event) error {
	switch e := ev.(type) {
	case native.Motion:
		return l.handleMotion(consolidateMotion(e, l.source.TakeMotion()))
	case native.Button:
		return l.handleButton(toButtonEvent(e))
	case native.Quit:
		l.Stop()
	case native.WorkPending:
		return l.processWorkUnit()
	}
	return nil
}

func (l *Loop) processWorkUnit() error {
	if len(l.units) == 0 {
		return nil
	}
	wu := l.units[0]
	l.units[0] = nil
	l.units = l.units[1:]

	again, err := wu()
	if err != nil {
		return fmt.Errorf("work unit: %w", err)
	}
	if again {
		l.AddWorkUnit(wu)
	}
	return nil
}
