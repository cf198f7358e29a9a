package linesort

// span is an inclusive index range waiting to be partitioned.
type span struct {
	left, right int
}

// QuickSort sorts the inclusive range [left, right] of lines in place.
//
// Pending ranges are kept on an explicit stack and the smaller side of every
// split is processed first, so the stack never holds more than about log2(n)
// entries. The pivot is always the leftmost element, which makes already
// sorted and reverse sorted input quadratic in time.
func QuickSort(lines Collection, left, right int) {
	var stack []span
	cur := span{left, right}
	for {
		for cur.left < cur.right {
			split := Partition(lines, cur.left, cur.right)
			if split-cur.left < cur.right-split {
				stack = append(stack, span{split + 1, cur.right})
				cur.right = split - 1
			} else {
				stack = append(stack, span{cur.left, split - 1})
				cur.left = split + 1
			}
		}
		if len(stack) == 0 {
			return
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
}

// Partition applies a Hoare partition to [left, right] using lines[left] as
// the pivot and returns the pivot's final position. Afterwards every line in
// [left, split-1] sorts at or before the pivot and every line in
// [split+1, right] sorts at or after it.
//
// The backward scan has no explicit lower bound: the pivot stays at left for
// the whole scan and never compares greater than itself, so j stops there.
func Partition(lines Collection, left, right int) int {
	pivot := left
	i, j := left, right+1

	for {
		for i != right {
			i++
			if !Less(lines[i], lines[pivot]) {
				break
			}
		}
		for {
			j--
			if !Greater(lines[j], lines[pivot]) {
				break
			}
		}
		lines.Swap(i, j)
		if i >= j {
			break
		}
	}

	// The last swap happened after the cursors crossed; undo it.
	lines.Swap(i, j)
	lines.Swap(pivot, j)
	return j
}

// QuickSortAll sorts every line of the collection.
func QuickSortAll(lines Collection) {
	if len(lines) < 2 {
		return
	}
	QuickSort(lines, 0, len(lines)-1)
}
