package medianheap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Check validates the heap invariants.
//
// This checker is intentionally strict and meant for tests: it re-verifies
// each half's internal heap order and scans the full cross-half partition
// instead of trusting the heap roots. It is O(n²) and must not be called
// on hot paths.
func (h *MedianHeap[T]) Check() error {
	if h == nil || h.lower == nil || h.upper == nil {
		return fmt.Errorf("%w: heap is not initialized", ErrInvalidConfig)
	}
	diff := h.lower.Len() - h.upper.Len()
	if diff < 0 || diff > 1 {
		return fmt.Errorf("%w: half sizes %d|%d out of balance",
			ErrInvariantViolated, h.lower.Len(), h.upper.Len())
	}
	if err := h.lower.Check(); err != nil {
		return fmt.Errorf("%w: lower half: %v", ErrInvariantViolated, err)
	}
	if err := h.upper.Check(); err != nil {
		return fmt.Errorf("%w: upper half: %v", ErrInvariantViolated, err)
	}
	for i, lo := range h.lower.Items() {
		for j, up := range h.upper.Items() {
			if h.cfg.Less(up, lo) {
				return fmt.Errorf("%w: lower[%d] orders above upper[%d]",
					ErrInvariantViolated, i, j)
			}
		}
	}
	return nil
}
