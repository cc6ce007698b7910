package queue

import "sync"

// InMemoryQueue implements an in-memory queue.
// A capacity of zero or less makes the queue unbounded.
type InMemoryQueue[T any] struct {
	lock     sync.Mutex
	items    []T
	capacity int
	closed   bool
	ready    chan struct{}
}

// NewInMemoryQueue creates a new queue.
func NewInMemoryQueue[T any](capacity int) *InMemoryQueue[T] {
	return &InMemoryQueue[T]{
		capacity: capacity,
		ready:    make(chan struct{}, 1),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	q.lock.Lock()
	defer q.lock.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	if q.capacity > 0 && len(q.items) >= q.capacity {
		return ErrQueueFull
	}

	q.items = append(q.items, item)
	q.signal()
	return nil
}

// TryDequeue removes and returns the item from the front of the queue.
func (q *InMemoryQueue[T]) TryDequeue() (T, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, true
}

// Ready returns a channel that receives a value when items may be available.
func (q *InMemoryQueue[T]) Ready() <-chan struct{} {
	return q.ready
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.items)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue[T]) ReadAllMessages() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	messages := q.items
	q.items = nil
	return messages
}

// Close closes the queue for writing.
func (q *InMemoryQueue[T]) Close() {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.signal()
}

// signal must be called with the lock held.
func (q *InMemoryQueue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
