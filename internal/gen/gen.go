// Package gen produces randomized texts and patterns for benchmarks
// and verification runs.
package gen

import "math/rand"

// DefaultAlphabet matches the lowercase alphabet the benchmarks use.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Generator produces random inputs from a seeded source. It owns its
// own rand state, so fixed seeds give reproducible runs and separate
// generators never interfere.
type Generator struct {
	rng      *rand.Rand
	alphabet string
}

// New creates a generator with the default lowercase alphabet.
func New(seed int64) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		alphabet: DefaultAlphabet,
	}
}

// NewWithAlphabet creates a generator over a custom alphabet.
// An empty alphabet falls back to the default.
func NewWithAlphabet(seed int64, alphabet string) *Generator {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		alphabet: alphabet,
	}
}

// Text returns a random string of length n over the alphabet.
func (g *Generator) Text(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = g.alphabet[g.rng.Intn(len(g.alphabet))]
	}
	return string(b)
}

// Pattern returns a random pattern of length m over the alphabet.
// There is no guarantee it occurs in any particular text.
func (g *Generator) Pattern(m int) string {
	return g.Text(m)
}

// PresentPattern samples a length-m substring of text, so at least one
// occurrence is guaranteed. It panics if m > len(text); callers size
// their inputs.
func (g *Generator) PresentPattern(text string, m int) string {
	start := g.rng.Intn(len(text) - m + 1)
	return text[start : start+m]
}

// AbsentPattern returns a pattern of length m that cannot occur in any
// text drawn from the alphabet: its last byte is outside the alphabet.
func (g *Generator) AbsentPattern(m int) string {
	b := []byte(g.Text(m))
	b[m-1] = '#'
	return string(b)
}

// Intn exposes the underlying source for callers that need auxiliary
// random sizes within the same reproducible stream.
func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}
