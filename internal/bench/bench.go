// Package bench times the matching algorithms across a sweep of text
// sizes and collects the results into a serializable report.
package bench

import (
	"fmt"
	"sort"
	"time"

	"harshagw/strmatch/internal/gen"
	"harshagw/strmatch/internal/match"
)

// Config describes one benchmark run.
type Config struct {
	Sizes      []int
	PatternLen int
	Iterations int
	Warmup     int
	Seed       int64

	// Algorithms to benchmark. Empty means all registered matchers.
	Algorithms []match.Algorithm

	// Text, when non-empty, is used instead of generated input: each
	// size is taken as a prefix of it. It must cover the largest size.
	Text string

	// Pattern, when non-empty, overrides random pattern generation.
	Pattern string
}

// DefaultConfig mirrors the classic sweep: lowercase texts from 100 to
// 100k characters in steps of 500, a 10-character pattern.
func DefaultConfig() Config {
	return Config{
		Sizes:      SizeRange(100, 100000, 500),
		PatternLen: 10,
		Iterations: 20,
		Warmup:     3,
		Seed:       1,
	}
}

// SizeRange returns start, start+step, ... up to but not including stop.
func SizeRange(start, stop, step int) []int {
	var sizes []int
	for s := start; s < stop; s += step {
		sizes = append(sizes, s)
	}
	return sizes
}

// Point is one measurement: the average time of a single search over a
// text of the given size, and how many occurrences it found.
type Point struct {
	Size     int   `json:"size"`
	AvgNanos int64 `json:"avg_ns"`
	Matches  int   `json:"matches"`
}

// Series holds all points for one algorithm, ordered by size.
type Series struct {
	Algorithm string  `json:"algorithm"`
	Points    []Point `json:"points"`
}

// Report is the result of one benchmark run.
type Report struct {
	CreatedAt  time.Time `json:"created_at"`
	Seed       int64     `json:"seed"`
	PatternLen int       `json:"pattern_len"`
	Iterations int       `json:"iterations"`
	Sizes      []int     `json:"sizes"`
	Series     []Series  `json:"series"`
}

// Runner executes benchmark runs. It owns all accumulation state, so
// concurrent runs with separate runners do not interfere.
type Runner struct {
	cfg Config
}

// NewRunner creates a runner for the given config.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run executes the full sweep and returns the report.
func (r *Runner) Run() (*Report, error) {
	cfg := r.cfg
	if len(cfg.Sizes) == 0 {
		return nil, fmt.Errorf("no text sizes configured")
	}
	if cfg.Iterations < 1 {
		return nil, fmt.Errorf("iterations must be at least 1, got %d", cfg.Iterations)
	}
	if cfg.PatternLen < 1 && cfg.Pattern == "" {
		return nil, fmt.Errorf("pattern length must be at least 1, got %d", cfg.PatternLen)
	}

	algos := cfg.Algorithms
	if len(algos) == 0 {
		algos = match.Algorithms()
	}

	sizes := append([]int(nil), cfg.Sizes...)
	sort.Ints(sizes)

	g := gen.New(cfg.Seed)

	pattern := cfg.Pattern
	if pattern == "" {
		pattern = g.Pattern(cfg.PatternLen)
	}

	maxSize := sizes[len(sizes)-1]
	if cfg.Text != "" && len(cfg.Text) < maxSize {
		return nil, fmt.Errorf("text has %d characters, largest size is %d", len(cfg.Text), maxSize)
	}

	report := &Report{
		CreatedAt:  time.Now(),
		Seed:       cfg.Seed,
		PatternLen: len(pattern),
		Iterations: cfg.Iterations,
		Sizes:      sizes,
		Series:     make([]Series, len(algos)),
	}
	for i, algo := range algos {
		report.Series[i] = Series{
			Algorithm: algo.Name,
			Points:    make([]Point, 0, len(sizes)),
		}
	}

	for _, size := range sizes {
		var text string
		if cfg.Text != "" {
			text = cfg.Text[:size]
		} else {
			text = g.Text(size)
		}

		for i, algo := range algos {
			point := measure(algo.Search, text, pattern, cfg.Iterations, cfg.Warmup)
			point.Size = size
			report.Series[i].Points = append(report.Series[i].Points, point)
		}
	}

	return report, nil
}

func measure(search match.SearchFunc, text, pattern string, iterations, warmup int) Point {
	var matches int
	for i := 0; i < warmup; i++ {
		matches = len(search(text, pattern))
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		matches = len(search(text, pattern))
	}
	elapsed := time.Since(start)

	return Point{
		AvgNanos: elapsed.Nanoseconds() / int64(iterations),
		Matches:  matches,
	}
}
