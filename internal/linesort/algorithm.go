package linesort

// Algorithm names a sorting engine that orders a whole collection in place.
type Algorithm struct {
	Name string
	Sort func(Collection)
}

const (
	MergeSortName = "mergesort"
	QuickSortName = "quicksort"
)

var algorithms = []Algorithm{
	{Name: MergeSortName, Sort: MergeSortAll},
	{Name: QuickSortName, Sort: QuickSortAll},
}

// Algorithms returns the available engines, merge sort first.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}
