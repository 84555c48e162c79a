package medianheap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Heap2Dot outputs the internal structure of a MedianHeap in Graphviz DOT
// format (for debugging purposes). Each half is rendered as a cluster with
// its implicit binary-tree edges.
func Heap2Dot[T any](heap *MedianHeap[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	dotHalf(w, "lower", heap.lower.Items())
	dotHalf(w, "upper", heap.upper.Items())
	io.WriteString(w, "}\n")
}

func dotHalf[T any](w io.Writer, name string, items []T) {
	fmt.Fprintf(w, "\tsubgraph cluster_%s {\n", name)
	fmt.Fprintf(w, "\t\tlabel=\"%s\";\n", name)
	for i, item := range items {
		fmt.Fprintf(w, "\t\t\"%s%d\" [label=\"%v\"];\n", name, i, item)
	}
	for i := range items {
		if left := 2*i + 1; left < len(items) {
			fmt.Fprintf(w, "\t\t\"%s%d\" -> \"%s%d\";\n", name, i, name, left)
		}
		if right := 2*i + 2; right < len(items) {
			fmt.Fprintf(w, "\t\t\"%s%d\" -> \"%s%d\";\n", name, i, name, right)
		}
	}
	io.WriteString(w, "\t}\n")
}

var lowerHalfColor = color.New(color.FgGreen)
var upperHalfColor = color.New(color.FgCyan)

// Heap2Console writes a short colored dump of the heap halves to w, lower
// half first. Items appear in heap order, not sorted order. Colors degrade
// to plain text on non-terminal writers.
func Heap2Console[T any](heap *MedianHeap[T], w io.Writer) {
	lowerHalfColor.Fprintf(w, "lower %v\n", heap.lower.Items())
	upperHalfColor.Fprintf(w, "upper %v\n", heap.upper.Items())
	if median, ok := heap.Median(); ok {
		fmt.Fprintf(w, "median %v\n", median)
	} else {
		fmt.Fprintln(w, "median (none)")
	}
}
