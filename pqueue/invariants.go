package pqueue

import (
	"errors"
	"fmt"
)

// ErrHeapOrder signals a violated heap-order invariant, as detected by Check.
var ErrHeapOrder = errors.New("pqueue: heap order violated")

// Check validates the internal heap order.
//
// This checker is meant for tests; it visits every parent/child pair.
func (q *Queue[T]) Check() error {
	if q == nil || q.less == nil {
		return errors.New("pqueue: queue is not initialized")
	}
	for i := 1; i < len(q.items); i++ {
		parent := (i - 1) / 2
		if q.less(q.items[i], q.items[parent]) {
			return fmt.Errorf("%w: item %d orders below its parent %d", ErrHeapOrder, i, parent)
		}
	}
	return nil
}
