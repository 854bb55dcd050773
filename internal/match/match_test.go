package match

import (
	"math/rand"
	"slices"
	"testing"
)

func TestSearchAllAlgorithms(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pattern  string
		expected []int
	}{
		{"single match", "hello world", "world", []int{6}},
		{"match at start", "abcabc", "abc", []int{0, 3}},
		{"overlapping", "aaaa", "aa", []int{0, 1, 2}},
		{"self match", "pattern", "pattern", []int{0}},
		{"no match", "abcabc", "xyz", nil},
		{"single char", "banana", "a", []int{1, 3, 5}},
		{"pattern longer than text", "ab", "abc", nil},
		{"empty text empty pattern", "", "", []int{0}},
		{"empty pattern", "abc", "", []int{0, 1, 2, 3}},
		{"repeated prefix", "aabaabaab", "aab", []int{0, 3, 6}},
		{"match at end", "xxxab", "ab", []int{3}},
	}

	for _, algo := range Algorithms() {
		for _, tt := range tests {
			got := algo.Search(tt.text, tt.pattern)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("%s: %s: got %v, want %v", algo.Name, tt.name, got, tt.expected)
			}
		}
	}
}

func TestCrossAlgorithmEquivalence(t *testing.T) {
	// Small alphabet forces frequent partial matches, which is where
	// KMP fallback and Boyer-Moore shifting can diverge if wrong.
	rng := rand.New(rand.NewSource(42))
	alphabet := "ab"

	randomString := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(b)
	}

	for trial := 0; trial < 200; trial++ {
		text := randomString(1 + rng.Intn(200))
		pattern := randomString(1 + rng.Intn(6))

		want := BruteForce(text, pattern)
		if got := KMP(text, pattern); !slices.Equal(got, want) {
			t.Fatalf("KMP(%q, %q) = %v, want %v", text, pattern, got, want)
		}
		if got := BoyerMoore(text, pattern); !slices.Equal(got, want) {
			t.Fatalf("BoyerMoore(%q, %q) = %v, want %v", text, pattern, got, want)
		}
	}
}

func TestSearchDeterminism(t *testing.T) {
	text, pattern := "the quick brown fox jumps over the lazy dog", "the"
	for _, algo := range Algorithms() {
		first := algo.Search(text, pattern)
		for i := 0; i < 3; i++ {
			if got := algo.Search(text, pattern); !slices.Equal(got, first) {
				t.Errorf("%s: repeated call returned %v, want %v", algo.Name, got, first)
			}
		}
	}
}

func TestLongestPrefixSuffix(t *testing.T) {
	tests := []struct {
		pattern  string
		expected []int
	}{
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abcd", []int{0, 0, 0, 0}},
		{"abab", []int{0, 0, 1, 2}},
		{"a", []int{0}},
	}

	for _, tt := range tests {
		got := longestPrefixSuffix(tt.pattern)
		if !slices.Equal(got, tt.expected) {
			t.Errorf("longestPrefixSuffix(%q) = %v, want %v", tt.pattern, got, tt.expected)
		}
	}
}

func TestBadCharTable(t *testing.T) {
	last := badCharTable("abcab")

	tests := []struct {
		char     byte
		expected int
	}{
		{'a', 3}, // later occurrence wins
		{'b', 4},
		{'c', 2},
		{'x', -1}, // absent byte
	}

	for _, tt := range tests {
		if got := last[tt.char]; got != tt.expected {
			t.Errorf("badCharTable(\"abcab\")[%q] = %d, want %d", tt.char, got, tt.expected)
		}
	}
}

func TestBadCharEntries(t *testing.T) {
	entries := BadCharEntries("abcab")
	expected := []BadCharEntry{{'a', 3}, {'b', 4}, {'c', 2}}

	if len(entries) != len(expected) {
		t.Fatalf("got %d entries, want %d", len(entries), len(expected))
	}
	for i, e := range entries {
		if e != expected[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, expected[i])
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		found    bool
	}{
		{"kmp", "KMP", true},
		{"KMP", "KMP", true},
		{"bf", "Brute Force", true},
		{"brute-force", "Brute Force", true},
		{"boyer-moore", "Boyer-Moore", true},
		{"bm", "Boyer-Moore", true},
		{"aho-corasick", "", false},
	}

	for _, tt := range tests {
		algo, ok := ByName(tt.input)
		if ok != tt.found {
			t.Errorf("ByName(%q) found = %v, want %v", tt.input, ok, tt.found)
			continue
		}
		if ok && algo.Name != tt.expected {
			t.Errorf("ByName(%q) = %s, want %s", tt.input, algo.Name, tt.expected)
		}
	}
}
