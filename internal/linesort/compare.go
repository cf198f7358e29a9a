package linesort

// foldByte lowers a single ASCII upper-case letter. All other bytes, including
// every byte of a multi-byte UTF-8 sequence, are returned unchanged.
func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Compare orders a and b as if both had been lowercased first. It returns a
// negative number when a sorts before b, zero when they fold to the same
// string and a positive number otherwise. Neither argument is copied or
// modified.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := foldByte(a[i]), foldByte(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// Greater reports whether a sorts strictly after b.
func Greater(a, b string) bool { return Compare(a, b) > 0 }

// IsSorted reports whether lines is in non-descending case-insensitive order.
func IsSorted(lines Collection) bool {
	for i := 1; i < len(lines); i++ {
		if Less(lines[i], lines[i-1]) {
			return false
		}
	}
	return true
}
