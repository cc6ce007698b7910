package queue

import "errors"

var (
	// ErrQueueFull is returned by Enqueue when a bounded queue is at capacity.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueClosed is returned by Enqueue after Close.
	ErrQueueClosed = errors.New("queue is closed")
)

// Queue is a FIFO queue with any number of producers and a single consumer.
// Implementations must be thread-safe.
type Queue[T any] interface {
	// Enqueue adds an item to the end of the queue without blocking.
	Enqueue(item T) error
	// TryDequeue removes and returns the item at the front of the queue.
	TryDequeue() (T, bool)
	// Ready is signalled after an Enqueue on an empty queue and on Close.
	Ready() <-chan struct{}
	// Size returns the number of pending items.
	Size() int
	// ReadAllMessages removes and returns all pending items.
	ReadAllMessages() []T
	// Close stops accepting new items. Pending items can still be dequeued.
	Close()
}
