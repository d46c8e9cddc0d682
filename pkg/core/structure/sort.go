package structure

// Sorting for List works on the node chain directly: nodes are relinked,
// never reallocated, so node identity and value addresses survive a sort.
// Both routines take a three-way comparator and leave equal elements
// deterministic: MergeSort is stable, QuickSort keeps equal keys in
// encounter order around a fixed-position pivot.

// MergeSort orders the list with a stable O(n log n) merge sort.
func (l *List[T]) MergeSort(cmp func(a, b T) int) {
	if l.size < 2 {
		return
	}
	head := l.head
	l.head, l.tail = nil, nil
	l.relink(mergeSortNodes(head, cmp))
}

// QuickSort orders the list with a three-way quicksort. The pivot is
// the first node of each range; already-sorted input degrades to
// O(n^2), which is accepted for deterministic behavior.
func (l *List[T]) QuickSort(cmp func(a, b T) int) {
	if l.size < 2 {
		return
	}
	head := l.head
	l.head, l.tail = nil, nil
	l.relink(quickSortNodes(head, cmp))
}

// relink rebuilds prev links, head and tail from a forward chain. The
// node count is unchanged by sorting, so size is left alone.
func (l *List[T]) relink(head *Node[T]) {
	l.head = head
	var prev *Node[T]
	for n := head; n != nil; n = n.next {
		n.prev = prev
		prev = n
	}
	l.tail = prev
}

func mergeSortNodes[T any](head *Node[T], cmp func(a, b T) int) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	// Slow/fast split; slow ends the first half.
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil

	left := mergeSortNodes(head, cmp)
	right := mergeSortNodes(mid, cmp)
	return mergeNodes(left, right, cmp)
}

// mergeNodes splices two sorted chains. Ties take from the left chain,
// which is what makes the sort stable.
func mergeNodes[T any](a, b *Node[T], cmp func(a, b T) int) *Node[T] {
	var head, tail *Node[T]
	appendNode := func(n *Node[T]) {
		if tail == nil {
			head, tail = n, n
		} else {
			tail.next = n
			tail = n
		}
	}
	for a != nil && b != nil {
		if cmp(a.Value, b.Value) <= 0 {
			next := a.next
			a.next = nil
			appendNode(a)
			a = next
		} else {
			next := b.next
			b.next = nil
			appendNode(b)
			b = next
		}
	}
	if a != nil {
		appendNode(a)
		for tail.next != nil {
			tail = tail.next
		}
	}
	if b != nil {
		appendNode(b)
		for tail.next != nil {
			tail = tail.next
		}
	}
	return head
}

func quickSortNodes[T any](head *Node[T], cmp func(a, b T) int) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	pivot := head.Value
	var lessH, lessT, equalH, equalT, greaterH, greaterT *Node[T]
	push := func(h, t **Node[T], n *Node[T]) {
		if *t == nil {
			*h, *t = n, n
		} else {
			(*t).next = n
			*t = n
		}
	}

	for n := head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		switch c := cmp(n.Value, pivot); {
		case c < 0:
			push(&lessH, &lessT, n)
		case c > 0:
			push(&greaterH, &greaterT, n)
		default:
			push(&equalH, &equalT, n)
		}
		n = next
	}

	lessH = quickSortNodes(lessH, cmp)
	greaterH = quickSortNodes(greaterH, cmp)
	return concatChains(lessH, concatChains(equalH, greaterH))
}

func concatChains[T any](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	tail := a
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = b
	return a
}
