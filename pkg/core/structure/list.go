package structure

import "iter"

// Node is one element of a List. Links are owned by the list; callers
// hold node references only to walk or to remove in O(1).
type Node[T any] struct {
	Value T
	next  *Node[T]
	prev  *Node[T]
}

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly linked list. It is the canonical record container:
// sorts reorder it by relinking nodes in place, never by copying values.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

func NewList[T any]() *List[T] { return &List[T]{} }

func (l *List[T]) Len() int       { return l.size }
func (l *List[T]) IsEmpty() bool  { return l.head == nil }
func (l *List[T]) Head() *Node[T] { return l.head }
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Append adds v at the tail in O(1) and returns the new node.
func (l *List[T]) Append(v T) *Node[T] {
	n := &Node[T]{Value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
	return n
}

// Prepend adds v at the head in O(1) and returns the new node.
func (l *List[T]) Prepend(v T) *Node[T] {
	n := &Node[T]{Value: v}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.size++
	return n
}

// Remove unlinks n from the list in O(1). n must belong to this list.
func (l *List[T]) Remove(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next, n.prev = nil, nil
	l.size--
}

// RemoveFunc unlinks the first node whose value matches, in O(n).
// Reports whether a node was removed.
func (l *List[T]) RemoveFunc(match func(T) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if match(n.Value) {
			l.Remove(n)
			return true
		}
	}
	return false
}

// All iterates values head to tail. The sequence is lazy and can be
// restarted; an empty list yields nothing.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward iterates values tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Clear drops every node.
func (l *List[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}
