package dispatch

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/queue"
)

// Mode controls whether Submit waits for the event to be handled.
type Mode int

const (
	NonBlocking Mode = iota
	Blocking
)

func (m Mode) String() string {
	switch m {
	case NonBlocking:
		return "non-blocking"
	case Blocking:
		return "blocking"
	default:
		return "unknown"
	}
}

// Event is a unit of work for the owning goroutine.
type Event interface {
	// Op names the operation carried by the event.
	Op() string
}

// Handler processes events on the owning goroutine.
type Handler interface {
	HandleEvent(ev Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev Event)

func (f HandlerFunc) HandleEvent(ev Event) {
	f(ev)
}

type envelope struct {
	event Event
	// done is closed once the event was handled. nil for NonBlocking events.
	done chan struct{}
}

// barrier is handled by the dispatcher itself and never reaches the handler.
type barrier struct{}

func (barrier) Op() string { return "barrier" }

type Dispatcher struct {
	handler Handler
	queue   queue.Queue[envelope]
	logger  *log.Logger

	started  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
	stopped  chan struct{}

	processed atomic.Uint64
	panicked  atomic.Uint64
}

// NewDispatcherOptions contains options for creating a new Dispatcher.
type NewDispatcherOptions struct {
	Handler Handler
	Logger  *log.Logger
}

// NewDispatcher creates a new Dispatcher. The dispatcher does not handle events
// until Start is called, but it accepts submissions right away. Its queue is
// unbounded, so Submit only fails once the dispatcher stopped.
func NewDispatcher(opts NewDispatcherOptions) (*Dispatcher, error) {
	if opts.Handler == nil {
		return nil, fmt.Errorf("handler is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.With("dispatch")
	}
	return &Dispatcher{
		handler: opts.Handler,
		queue:   queue.NewInMemoryQueue[envelope](0),
		logger:  logger,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}, nil
}

// Submit queues ev for the owning goroutine.
// In Blocking mode it returns once the handler returned for ev.
// Submitting a nil event is a programming error and panics.
func (d *Dispatcher) Submit(ev Event, mode Mode) error {
	if ev == nil {
		panic("dispatch: nil event submitted")
	}

	env := envelope{event: ev}
	if mode == Blocking {
		env.done = make(chan struct{})
	}

	if err := d.queue.Enqueue(env); err != nil {
		if errors.Is(err, queue.ErrQueueClosed) {
			return ErrStopped
		}
		return fmt.Errorf("failed to enqueue %s event: %w", ev.Op(), err)
	}
	d.logger.Trace("Submitted %s event (%s)", ev.Op(), mode)

	if mode != Blocking {
		return nil
	}

	select {
	case <-env.done:
		return nil
	case <-d.stopped:
		// the loop drains the queue before exiting, so the event may have run
		select {
		case <-env.done:
			return nil
		default:
			return ErrStopped
		}
	}
}

// Sync blocks until every event submitted before the call has been handled.
func (d *Dispatcher) Sync() error {
	return d.Submit(barrier{}, Blocking)
}

// Start runs the event loop on the calling goroutine until ctx is done or Stop is
// called. Events still queued at that point are handled before Start returns.
func (d *Dispatcher) Start(ctx context.Context) error {
	if !d.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer close(d.stopped)

	d.logger.Debug("Dispatcher started")
	for {
		d.drain()
		select {
		case <-ctx.Done():
			d.shutdown()
			return nil
		case <-d.stop:
			d.shutdown()
			return nil
		case <-d.queue.Ready():
		}
	}
}

// Stop ends the event loop. It does not wait; use Done for that.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
		if d.started.CompareAndSwap(false, true) {
			// never started: nothing will drain the queue
			d.queue.Close()
			close(d.stopped)
		}
	})
}

// Done is closed after the event loop exited.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.stopped
}

// Pending returns the number of queued events.
func (d *Dispatcher) Pending() int {
	return d.queue.Size()
}

// Processed returns the number of events handled so far.
func (d *Dispatcher) Processed() uint64 {
	return d.processed.Load()
}

func (d *Dispatcher) shutdown() {
	d.queue.Close()
	d.drain()
	d.logger.Debug("Dispatcher stopped after %d events (%d panicked)", d.processed.Load(), d.panicked.Load())
}

func (d *Dispatcher) drain() {
	for {
		env, ok := d.queue.TryDequeue()
		if !ok {
			return
		}
		d.dispatch(env)
	}
}

func (d *Dispatcher) dispatch(env envelope) {
	defer func() {
		if r := recover(); r != nil {
			d.panicked.Add(1)
			d.logger.Error("Recovered panic while handling %s event: %v\n%s", env.event.Op(), r, debug.Stack())
		}
		if env.done != nil {
			close(env.done)
		}
	}()

	if _, ok := env.event.(barrier); !ok {
		d.handler.HandleEvent(env.event)
	}
	d.processed.Add(1)
}
