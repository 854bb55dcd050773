package match

// KMP scans the text once, using the pattern's failure function to
// resume after a mismatch without re-reading matched text. O(n+m).
func KMP(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return emptyPattern(n)
	}
	if m > n {
		return nil
	}

	lps := longestPrefixSuffix(pattern)

	var positions []int
	i, j := 0, 0
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				positions = append(positions, i-j)
				// Continue as after a mismatch so overlapping
				// occurrences are found too.
				j = lps[j-1]
			}
		} else if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return positions
}

// longestPrefixSuffix builds the KMP failure function: lps[i] is the
// length of the longest proper prefix of pattern[:i+1] that is also a
// suffix of it.
func longestPrefixSuffix(pattern string) []int {
	lps := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
		} else if length != 0 {
			length = lps[length-1]
		} else {
			lps[i] = 0
			i++
		}
	}
	return lps
}
