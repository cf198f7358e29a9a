package linesort

// Collection is an ordered, indexable sequence of text lines. Its length is
// the count of valid entries; there is no unused tail to guard.
type Collection []string

// Len returns the number of lines in the collection.
func (c Collection) Len() int { return len(c) }

// Swap exchanges the lines at positions i and j.
func (c Collection) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Clone returns an independent copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}
