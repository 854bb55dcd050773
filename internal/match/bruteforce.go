package match

// BruteForce checks every alignment of pattern against text.
// Worst case O((n-m+1)*m) comparisons, no preprocessing.
func BruteForce(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return emptyPattern(n)
	}
	if m > n {
		return nil
	}

	var positions []int
	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			positions = append(positions, i)
		}
	}
	return positions
}
