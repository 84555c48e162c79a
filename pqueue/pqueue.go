package pqueue

// Queue is an array-backed binary heap ordered by a less function: the
// root is the least item under that ordering. Push and Pop are O(log n),
// Peek is O(1).
//
// The zero Queue is not usable; create queues with New.
type Queue[T any] struct {
	less  func(a, b T) bool
	items []T
}

// New creates an empty queue ordered by less.
func New[T any](less func(a, b T) bool) *Queue[T] {
	assert(less != nil, "pqueue.New requires an ordering function")
	return &Queue[T]{less: less}
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue has no items.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Push adds an item to the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// Peek returns the root item without removing it. An empty queue returns
// ok=false.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if len(q.items) == 0 {
		var none T
		return none, false
	}
	return q.items[0], true
}

// Pop removes and returns the root item. An empty queue returns ok=false.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if len(q.items) == 0 {
		var none T
		return none, false
	}
	n := len(q.items) - 1
	root := q.items[0]
	q.items[0] = q.items[n]
	var none T
	q.items[n] = none // release for element types holding references
	q.items = q.items[:n]
	q.siftDown(0)
	return root, true
}

// Items returns the backing slice in heap order.
//
// The slice is a view, not a copy. Callers must treat it as read-only and
// must not hold on to it across queue mutations.
func (q *Queue[T]) Items() []T {
	return q.items
}

func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i], q.items[parent]) {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && q.less(q.items[right], q.items[child]) {
			child = right
		}
		if !q.less(q.items[child], q.items[i]) {
			break
		}
		q.items[i], q.items[child] = q.items[child], q.items[i]
		i = child
	}
}
