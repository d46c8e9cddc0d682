package structure

import "custdb/pkg/common"

// Stack is a LIFO container over singly linked nodes. It exists as a
// linear-scan baseline: Search costs O(n) no matter what, which is the
// point of the comparison against the tree index.
type Stack[T any] struct {
	top  *link[T]
	size int
}

type link[T any] struct {
	value T
	next  *link[T]
}

func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

func (s *Stack[T]) Len() int      { return s.size }
func (s *Stack[T]) IsEmpty() bool { return s.top == nil }

// Push adds v on top in O(1).
func (s *Stack[T]) Push(v T) {
	s.top = &link[T]{value: v, next: s.top}
	s.size++
}

// Pop removes and returns the top value. Popping an empty stack returns
// common.ErrEmptyContainer.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, common.ErrEmptyContainer
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.size--
	return n.value, nil
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, common.ErrEmptyContainer
	}
	return s.top.value, nil
}

// Search scans every element and returns the matches in push order.
// The walk itself runs top-down, so matches are collected reversed and
// flipped before returning; the stack's contents and order are exactly
// as before the call.
func (s *Stack[T]) Search(pred func(T) bool) []T {
	var out []T
	for n := s.top; n != nil; n = n.next {
		if pred(n.value) {
			out = append(out, n.value)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
