package match

// LPSTable returns the KMP failure function for pattern, for callers
// that want to inspect it.
func LPSTable(pattern string) []int {
	return longestPrefixSuffix(pattern)
}

// BadCharEntry is one row of the Boyer-Moore bad-character table.
type BadCharEntry struct {
	Char byte
	Last int
}

// BadCharEntries returns the bad-character table restricted to bytes
// that occur in pattern, in byte order.
func BadCharEntries(pattern string) []BadCharEntry {
	last := badCharTable(pattern)
	var entries []BadCharEntry
	for c := 0; c < 256; c++ {
		if last[c] >= 0 {
			entries = append(entries, BadCharEntry{Char: byte(c), Last: last[c]})
		}
	}
	return entries
}
