package medianheap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/medianheap/pqueue"
	"golang.org/x/exp/constraints"
)

// Number is the element constraint for NewOrdered: any integer or float
// type, ordered by < and averaged by the arithmetic mean.
type Number interface {
	constraints.Integer | constraints.Float
}

// Config configures a median heap for an element type.
//
// Less must be a strict ordering that is total over all elements ever
// pushed. The heap does not verify this; an unlawful ordering leaves the
// partition between the two halves, and with it the reported median,
// undefined.
//
// Average combines the two middlemost elements into the reported median
// when the element count is even. It receives the maximum of the lower
// half and the minimum of the upper half, in that order, and must return
// a value of the element type. The stored elements are not modified.
type Config[T any] struct {
	Less    func(a, b T) bool
	Average func(a, b T) T
}

func (cfg Config[T]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: ordering is required", ErrInvalidConfig)
	}
	if cfg.Average == nil {
		return fmt.Errorf("%w: averager is required", ErrInvalidConfig)
	}
	return nil
}

// MedianHeap partitions its elements into two binary heaps: a max-oriented
// lower half and a min-oriented upper half. Every element of the lower
// half orders at or below every element of the upper half, the half sizes
// never differ by more than one, and the lower half holds the extra
// element when the count is odd. Push restores all of this after each
// insertion, so Median only ever inspects the two heap roots.
//
// The zero MedianHeap is not usable; create heaps with New or NewOrdered.
type MedianHeap[T any] struct {
	cfg   Config[T]
	lower *pqueue.Queue[T] // max-oriented, holds the extra element on odd counts
	upper *pqueue.Queue[T] // min-oriented
}

// New creates an empty median heap with validated configuration.
func New[T any](cfg Config[T]) (*MedianHeap[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	less := cfg.Less
	return &MedianHeap[T]{
		cfg:   cfg,
		lower: pqueue.New(func(a, b T) bool { return less(b, a) }),
		upper: pqueue.New(less),
	}, nil
}

// NewOrdered creates an empty median heap over a numeric element type,
// ordered naturally and averaged by the arithmetic mean (a+b)/2. For
// integer element types the mean truncates towards zero.
func NewOrdered[T Number]() *MedianHeap[T] {
	h, err := New(Config[T]{
		Less:    func(a, b T) bool { return a < b },
		Average: func(a, b T) T { return (a + b) / 2 },
	})
	assert(err == nil, "NewOrdered: cannot construct median heap")
	return h
}

// Len returns the number of elements in the heap.
func (h *MedianHeap[T]) Len() int {
	return h.lower.Len() + h.upper.Len()
}

// IsEmpty reports whether the heap has no elements.
func (h *MedianHeap[T]) IsEmpty() bool {
	return h.lower.IsEmpty() && h.upper.IsEmpty()
}

// Push adds an element to the heap.
//
// The element goes into the lower half if it does not order above the
// current lower maximum, otherwise into the upper half. A rebalancing
// step then restores the size invariant. Elements comparing equal to the
// lower maximum may end up in either half; no stability is guaranteed.
func (h *MedianHeap[T]) Push(item T) {
	max, ok := h.lower.Peek()
	if !ok || !h.cfg.Less(max, item) {
		h.lower.Push(item)
	} else {
		h.upper.Push(item)
	}
	h.rebalance()
}

// rebalance moves at most one element between the halves so that
// 0 ≤ len(lower)−len(upper) ≤ 1 holds again. Moving pops from one half
// and pushes onto the other; an element is never held by both.
func (h *MedianHeap[T]) rebalance() {
	switch {
	case h.lower.Len() > h.upper.Len()+1:
		item, ok := h.lower.Pop()
		assert(ok, "rebalance: lower half unexpectedly empty")
		h.upper.Push(item)
		tracer().Debugf("median heap re-balanced towards upper half, sizes=%d|%d", h.lower.Len(), h.upper.Len())
	case h.upper.Len() > h.lower.Len():
		item, ok := h.upper.Pop()
		assert(ok, "rebalance: upper half unexpectedly empty")
		h.lower.Push(item)
		tracer().Debugf("median heap re-balanced towards lower half, sizes=%d|%d", h.lower.Len(), h.upper.Len())
	}
}

// Median returns the current median of all pushed elements.
//
// For an odd element count this is the maximum of the lower half. For an
// even, non-zero count the configured averager combines the two
// middlemost elements into a single synthesized value. An empty heap
// returns ok=false. The query inspects only the two heap roots and never
// mutates the heap.
func (h *MedianHeap[T]) Median() (median T, ok bool) {
	max, ok := h.lower.Peek()
	if !ok {
		var none T
		return none, false
	}
	if h.lower.Len() == h.upper.Len() {
		min, ok := h.upper.Peek()
		assert(ok, "median: halves are balanced but upper half is empty")
		return h.cfg.Average(max, min), true
	}
	return max, true
}
