package match

// BoyerMoore compares right-to-left and skips ahead using the
// bad-character rule only. Sub-linear on average, worst case O(n*m)
// without the good-suffix rule.
func BoyerMoore(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return emptyPattern(n)
	}
	if m > n {
		return nil
	}

	last := badCharTable(pattern)

	var positions []int
	s := 0
	for s <= n-m {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}
		if j < 0 {
			positions = append(positions, s)
			if s+m < n {
				s += m - last[text[s+m]]
			} else {
				s++
			}
		} else {
			shift := j - last[text[s+j]]
			if shift < 1 {
				shift = 1
			}
			s += shift
		}
	}
	return positions
}

// badCharTable maps each byte to the index of its last occurrence in
// pattern, or -1 for bytes that never occur.
func badCharTable(pattern string) [256]int {
	var last [256]int
	for i := range last {
		last[i] = -1
	}
	for i := 0; i < len(pattern); i++ {
		last[pattern[i]] = i
	}
	return last
}
