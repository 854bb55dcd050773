// Package verify cross-checks the matching algorithms against each
// other on fixed and randomized inputs.
package verify

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"harshagw/strmatch/internal/gen"
	"harshagw/strmatch/internal/match"
)

// Config controls a verification run.
type Config struct {
	Trials        int
	Seed          int64
	MaxTextLen    int
	MaxPatternLen int
}

// DefaultConfig keeps pattern lengths short relative to texts so
// partial matches are common.
func DefaultConfig() Config {
	return Config{
		Trials:        500,
		Seed:          1,
		MaxTextLen:    300,
		MaxPatternLen: 8,
	}
}

// Mismatch records one disagreement with the brute-force baseline.
type Mismatch struct {
	Algorithm string
	Text      string
	Pattern   string
	Got       []int
	Want      []int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s(%q, %q) = %v, want %v", m.Algorithm, m.Text, m.Pattern, m.Got, m.Want)
}

// Summary aggregates the outcome of a run.
type Summary struct {
	Cases      int
	Passed     int
	Mismatches []Mismatch
}

// OK reports whether every case agreed.
func (s Summary) OK() bool { return len(s.Mismatches) == 0 }

// positionSet is a bitmap view of a MatchSet for cheap equality over
// many trials.
type positionSet struct {
	bm     *roaring.Bitmap
	sorted bool
}

func newPositionSet(positions []int) positionSet {
	bm := roaring.New()
	sorted := true
	for i, p := range positions {
		bm.Add(uint32(p))
		if i > 0 && positions[i-1] >= p {
			sorted = false
		}
	}
	return positionSet{bm: bm, sorted: sorted}
}

func (ps positionSet) equals(other positionSet) bool {
	return ps.sorted && other.sorted && ps.bm.Equals(other.bm)
}

// Check runs every registered algorithm on one input pair and returns
// any disagreements with the brute-force baseline. Identical duplicate
// positions or out-of-order output count as disagreement.
func Check(text, pattern string) []Mismatch {
	want := match.BruteForce(text, pattern)
	wantSet := newPositionSet(want)

	var mismatches []Mismatch
	for _, algo := range match.Algorithms() {
		if algo.Name == "Brute Force" {
			continue
		}
		got := algo.Search(text, pattern)
		if !newPositionSet(got).equals(wantSet) {
			mismatches = append(mismatches, Mismatch{
				Algorithm: algo.Name,
				Text:      text,
				Pattern:   pattern,
				Got:       got,
				Want:      want,
			})
		}
	}
	return mismatches
}

// fixedCases are the known edge cases every run always covers.
func fixedCases() [][2]string {
	return [][2]string{
		{"aaaa", "aa"},            // overlapping occurrences
		{"hello world", "world"},  // single occurrence
		{"hello world", "hello"},  // occurrence at start
		{"abcabc", "xyz"},         // no occurrence
		{"pattern", "pattern"},    // self match
		{"ab", "abc"},             // pattern longer than text
		{"abc", ""},               // empty pattern
		{"", ""},                  // both empty
		{"aabaaabaaaab", "aaab"},  // fallback-heavy pattern
		{"zzzzzzzzzzzz", "zz"},    // maximal overlap
	}
}

// Run executes the fixed cases plus cfg.Trials random trials.
func Run(cfg Config) Summary {
	var summary Summary

	record := func(text, pattern string) {
		summary.Cases++
		if ms := Check(text, pattern); len(ms) > 0 {
			summary.Mismatches = append(summary.Mismatches, ms...)
		} else {
			summary.Passed++
		}
	}

	for _, c := range fixedCases() {
		record(c[0], c[1])
	}

	// Random trials over a two-letter alphabet: small alphabets
	// maximize partial matches and overlap.
	g := gen.NewWithAlphabet(cfg.Seed, "ab")
	for i := 0; i < cfg.Trials; i++ {
		text := g.Text(1 + g.Intn(cfg.MaxTextLen))
		m := 1 + g.Intn(cfg.MaxPatternLen)

		pattern := g.Pattern(m)
		if m <= len(text) && g.Intn(2) == 0 {
			pattern = g.PresentPattern(text, m)
		}
		record(text, pattern)
	}

	return summary
}
