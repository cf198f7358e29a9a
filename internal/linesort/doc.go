// Package linesort holds the two in-place sorting engines used by the
// pipeline (merge sort and Hoare-partition quicksort) and the case-insensitive
// comparison they share.
//
// Both engines operate on an inclusive index range of a Collection and order
// it non-descending under Compare. Neither is stable. Ranges outside the
// collection are programmer errors and panic the same way a bad slice index
// does.
package linesort
