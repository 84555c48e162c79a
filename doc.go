/*
Package medianheap maintains the running median of a growing collection.

Median Heaps

A median heap answers the question “what is the median of everything seen
so far?” without ever re-sorting the collection. It partitions the inserted
elements into two halves: a lower half, organized so its maximum is always
at hand, and an upper half, organized so its minimum is always at hand.
The two roots bracket the median. Insertion costs amortized O(log n), the
median query costs O(1).

The classic construction uses two binary heaps of opposite orientation and
keeps their sizes balanced within one element, with the lower half holding
the extra element when the total count is odd:

	count odd   →  median = max(lower half)
	count even  →  median = average(max(lower half), min(upper half))
	count zero  →  no median

When the count is even the two middlemost elements are combined into a
single synthesized value by an averaging function supplied at construction
time; the stored elements themselves are never modified. Element types
only need a strict ordering plus that averaging operation — numeric types
get both for free via NewOrdered.

The structure is grow-only: there is no removal operation. The balance
between the two halves is enforced procedurally by Push; any future
mutating operation has to revisit both rebalancing branches or it will
silently break the partition invariant (Check validates it in tests).

The container is not safe for concurrent use. Callers sharing a heap
across goroutines must serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package medianheap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is an alias for T for use inside generic methods, where the
// receiver's type parameter T shadows the function name.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
