package containers

import "fmt"

// Stack is a singly linked LIFO.
type Stack[T any] struct {
	top  *link[T]
	size int
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// Push places v on top. Complexity: O(1).
func (s *Stack[T]) Push(v T) {
	s.top = &link[T]{value: v, next: s.top}
	s.size++
}

// Pop removes and returns the top value. Returns ErrEmptyContainer when empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, fmt.Errorf("%w: pop from empty stack", ErrEmptyContainer)
	}
	v := s.top.value
	s.top = s.top.next
	s.size--

	return v, nil
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, fmt.Errorf("%w: peek on empty stack", ErrEmptyContainer)
	}

	return s.top.value, nil
}

// Len returns the number of stacked values.
func (s *Stack[T]) Len() int { return s.size }

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return s.top == nil }

// Clear empties the stack in O(1).
func (s *Stack[T]) Clear() {
	s.top = nil
	s.size = 0
}
