package structure

import "custdb/pkg/common"

// Queue is a FIFO container over singly linked nodes with O(1) enqueue
// and dequeue. Like Stack it serves as the order-preserving linear-scan
// baseline; the tree's level-order traversal also runs on it.
type Queue[T any] struct {
	head *link[T]
	tail *link[T]
	size int
}

func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

func (q *Queue[T]) Len() int      { return q.size }
func (q *Queue[T]) IsEmpty() bool { return q.head == nil }

// Enqueue adds v at the tail in O(1).
func (q *Queue[T]) Enqueue(v T) {
	n := &link[T]{value: v}
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Dequeue removes and returns the head value. Dequeuing an empty queue
// returns common.ErrEmptyContainer.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, common.ErrEmptyContainer
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.size--
	return n.value, nil
}

// Search scans every element front to back and returns the matches in
// enqueue order. The queue is unchanged after the call.
func (q *Queue[T]) Search(pred func(T) bool) []T {
	var out []T
	for n := q.head; n != nil; n = n.next {
		if pred(n.value) {
			out = append(out, n.value)
		}
	}
	return out
}
