package containers

import "fmt"

// Queue is a singly linked FIFO.
type Queue[T any] struct {
	head, tail *link[T]
	size       int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue appends v at the tail. Complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	l := &link[T]{value: v}
	if q.tail != nil {
		q.tail.next = l
	}
	q.tail = l
	if q.head == nil {
		q.head = l
	}
	q.size++
}

// Dequeue removes and returns the head. Returns ErrEmptyContainer when empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, fmt.Errorf("%w: dequeue from empty queue", ErrEmptyContainer)
	}
	v := q.head.value
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	return v, nil
}

// Peek returns the head without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, fmt.Errorf("%w: peek on empty queue", ErrEmptyContainer)
	}

	return q.head.value, nil
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool { return q.head == nil }

// Clear empties the queue in O(1) by dropping the head and tail references.
func (q *Queue[T]) Clear() {
	q.head, q.tail = nil, nil
	q.size = 0
}
