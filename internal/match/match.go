// Package match implements exact string matching algorithms.
//
// Each matcher finds all occurrences of a pattern in a text, including
// overlapping ones, and returns the 0-based start positions in ascending
// order. All matchers share the same edge-case policy: an empty pattern
// matches at every position 0..len(text), and a pattern longer than the
// text yields no matches. The matchers are pure functions and safe for
// concurrent use.
package match

// SearchFunc finds all start positions of pattern in text.
type SearchFunc func(text, pattern string) []int

// Algorithm pairs a matcher with its display name.
type Algorithm struct {
	Name   string
	Search SearchFunc
}

// Algorithms returns all registered matchers in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "Brute Force", Search: BruteForce},
		{Name: "KMP", Search: KMP},
		{Name: "Boyer-Moore", Search: BoyerMoore},
	}
}

// ByName returns the matcher with the given name, matched
// case-insensitively against the registered names and the short
// aliases "bf", "kmp" and "bm".
func ByName(name string) (Algorithm, bool) {
	switch normalizeName(name) {
	case "bruteforce", "bf", "brute":
		return Algorithm{Name: "Brute Force", Search: BruteForce}, true
	case "kmp":
		return Algorithm{Name: "KMP", Search: KMP}, true
	case "boyermoore", "bm":
		return Algorithm{Name: "Boyer-Moore", Search: BoyerMoore}, true
	}
	return Algorithm{}, false
}

func normalizeName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c >= 'a' && c <= 'z':
			out = append(out, c)
		}
	}
	return string(out)
}

// emptyPattern implements the shared empty-pattern convention: a match
// at every position, including one past the last character.
func emptyPattern(n int) []int {
	positions := make([]int, n+1)
	for i := range positions {
		positions[i] = i
	}
	return positions
}
