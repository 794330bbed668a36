package containers

import "errors"

// ErrEmptyContainer is returned when removing or peeking from an empty container.
var ErrEmptyContainer = errors.New("containers: container is empty")

// link is one cell of the singly linked Queue and Stack.
type link[T any] struct {
	value T
	next  *link[T]
}
