package linesort

import "fmt"

// MergeSort sorts the inclusive range [first, last] of lines in place, using
// scratch as working space for every merge. scratch must be able to hold index
// last; its contents are overwritten before they are read.
func MergeSort(lines Collection, first, last int, scratch Collection) {
	if first >= last {
		return
	}
	if len(scratch) <= last {
		panic(fmt.Sprintf("linesort: scratch buffer of %d entries cannot hold index %d", len(scratch), last))
	}
	mergeSort(lines, first, last, scratch)
}

func mergeSort(lines Collection, first, last int, scratch Collection) {
	if first >= last {
		return
	}
	middle := (first + last) / 2
	mergeSort(lines, first, middle, scratch)
	mergeSort(lines, middle+1, last, scratch)
	merge(lines, first, middle, last, scratch)
}

// merge combines the sorted halves [first, middle] and [middle+1, last].
// The strict Less test means that on ties the right-hand element is taken
// first.
func merge(lines Collection, first, middle, last int, scratch Collection) {
	left, right := first, middle+1
	out := first

	for left <= middle && right <= last {
		if Less(lines[left], lines[right]) {
			scratch[out] = lines[left]
			left++
		} else {
			scratch[out] = lines[right]
			right++
		}
		out++
	}

	out += copy(scratch[out:], lines[left:middle+1])
	copy(scratch[out:], lines[right:last+1])

	copy(lines[first:last+1], scratch[first:last+1])
}

// MergeSortAll sorts every line of the collection. The scratch buffer lives
// only for the duration of the call.
func MergeSortAll(lines Collection) {
	if len(lines) < 2 {
		return
	}
	scratch := make(Collection, len(lines))
	MergeSort(lines, 0, len(lines)-1, scratch)
}
