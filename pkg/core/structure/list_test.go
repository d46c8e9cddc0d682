package structure

import (
	"testing"
)

func collect[T any](l *List[T]) []T {
	var out []T
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func TestListAppendPrepend(t *testing.T) {
	l := NewList[int]()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Fatalf("new list not empty: len=%d", l.Len())
	}

	l.Append(2)
	l.Append(3)
	l.Prepend(1)

	if l.Len() != 3 {
		t.Fatalf("len=%d, want 3", l.Len())
	}
	got := collect(l)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("forward order %v, want %v", got, want)
		}
	}

	var back []int
	for v := range l.Backward() {
		back = append(back, v)
	}
	wantBack := []int{3, 2, 1}
	for i := range wantBack {
		if back[i] != wantBack[i] {
			t.Fatalf("backward order %v, want %v", back, wantBack)
		}
	}
}

func TestListRemove(t *testing.T) {
	l := NewList[string]()
	a := l.Append("a")
	b := l.Append("b")
	c := l.Append("c")

	l.Remove(b)
	if l.Len() != 2 {
		t.Fatalf("len=%d after remove, want 2", l.Len())
	}
	if l.Head() != a || l.Tail() != c {
		t.Fatal("head/tail wrong after middle remove")
	}
	if a.Next() != c || c.Prev() != a {
		t.Fatal("links not spliced after middle remove")
	}

	l.Remove(a)
	l.Remove(c)
	if !l.IsEmpty() || l.Head() != nil || l.Tail() != nil {
		t.Fatal("list not empty after removing everything")
	}
}

func TestListRemoveFunc(t *testing.T) {
	l := NewList[int]()
	for _, v := range []int{1, 2, 3, 2} {
		l.Append(v)
	}
	if !l.RemoveFunc(func(v int) bool { return v == 2 }) {
		t.Fatal("expected a removal")
	}
	got := collect(l)
	want := []int{1, 3, 2} // only the first match goes
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if l.RemoveFunc(func(v int) bool { return v == 99 }) {
		t.Fatal("unexpected removal for absent value")
	}
}

func TestListEmptyIteration(t *testing.T) {
	l := NewList[int]()
	for range l.All() {
		t.Fatal("empty list yielded a value")
	}
	for range l.Backward() {
		t.Fatal("empty list yielded a value backward")
	}
}

func TestListIterationRestartable(t *testing.T) {
	l := NewList[int]()
	l.Append(1)
	l.Append(2)

	seq := l.All()
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != 2 || second != 2 {
		t.Fatalf("restarted iteration saw %d then %d values, want 2 and 2", first, second)
	}
}
