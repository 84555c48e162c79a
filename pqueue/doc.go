/*
Package pqueue provides a generic array-backed binary priority queue.

The package is intentionally not a full-featured heap container. It is
specialized for the needs of the median heap: push, pop and peek at the
root, sized inspection, and an invariant checker for tests. There is no
removal at arbitrary positions and no in-place re-ordering.

Orientation is not a property of the type. A min-oriented queue is created
with a natural less function, a max-oriented queue with the inverted
comparison; the median heap uses one of each over the same element type.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pqueue

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
