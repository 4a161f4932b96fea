// Package stack implements a parameterized Last-In-First-Out (LIFO) container.
package stack

import "github.com/samber/mo"

// Stack is an unbounded LIFO container. The zero value is an empty stack ready for use.
// A Stack is meant for a single owner and performs no locking.
type Stack[T any] struct {
	items []T
}

// New returns a stack seeded with values, the last value ending up on top.
func New[T any](values ...T) *Stack[T] {
	items := make([]T, len(values))
	copy(items, values)
	return &Stack[T]{items: items}
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Push appends a new element to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the topmost element; returns mo.None if the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}

	idx := len(s.items) - 1
	item := s.items[idx]

	// release the slot so popped values can be collected
	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]

	return mo.Some(item)
}

// Top returns the topmost element without removing it; returns mo.None if the stack is empty.
func (s *Stack[T]) Top() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// Len returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the elements ordered from top to bottom.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[len(s.items)-1-i] = item
	}
	return out
}

// Clear removes all elements from the stack, resetting it to an empty state.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
