// Playground for trying out the string matchers.
//
// Run with: go run ./cmd/playground
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"harshagw/strmatch/internal/bench"
	"harshagw/strmatch/internal/corpus"
	"harshagw/strmatch/internal/gen"
	"harshagw/strmatch/internal/match"
	"harshagw/strmatch/internal/report"
)

func main() {
	fmt.Println("=== String Matcher Playground ===")
	fmt.Println()

	// Search a few fixed examples with every algorithm.
	examples := []struct {
		text    string
		pattern string
	}{
		{"the quick brown fox jumps over the lazy dog", "the"},
		{"mississippi", "issi"},
		{"aaaaaaaaaa", "aaa"},
		{"hello world", "xyz"},
	}

	fmt.Println("--- Searches ---")
	for _, ex := range examples {
		fmt.Printf("text=%q pattern=%q\n", ex.text, ex.pattern)
		for _, algo := range match.Algorithms() {
			fmt.Printf("  %-12s %v\n", algo.Name, algo.Search(ex.text, ex.pattern))
		}
		fmt.Println()
	}

	// Peek at the preprocessing tables.
	fmt.Println("--- Preprocessing ---")
	pattern := "aabaaab"
	fmt.Printf("LPS table for %q: %v\n", pattern, match.LPSTable(pattern))
	fmt.Printf("Bad-character table for %q:\n", pattern)
	for _, e := range match.BadCharEntries(pattern) {
		fmt.Printf("  %q -> %d\n", e.Char, e.Last)
	}
	fmt.Println()

	// Cache a generated corpus, reload it, and build its vocabulary.
	fmt.Println("--- Corpus ---")
	dir, err := os.MkdirTemp("", "strmatch-playground-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	text := gen.New(time.Now().UnixNano()).Text(50000)
	cachePath := filepath.Join(dir, "corpus.smc")
	if err := corpus.WriteCache(cachePath, text); err != nil {
		log.Fatal(err)
	}
	reloaded, err := corpus.ReadCache(cachePath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Cached and reloaded %d chars (round trip ok: %v)\n", len(reloaded), reloaded == text)

	vocab, err := corpus.BuildVocab("the cat sat on the mat")
	if err != nil {
		log.Fatal(err)
	}
	count, _ := vocab.Lookup("the")
	fmt.Printf("Vocabulary of a tiny text: %d tokens, \"the\" occurs %d times\n", vocab.Len(), count)
	fmt.Println()

	// A quick benchmark sweep.
	fmt.Println("--- Benchmark ---")
	cfg := bench.Config{
		Sizes:      bench.SizeRange(1000, 20000, 2000),
		PatternLen: 10,
		Iterations: 10,
		Warmup:     2,
		Seed:       1,
	}
	rep, err := bench.NewRunner(cfg).Run()
	if err != nil {
		log.Fatal(err)
	}
	report.WriteTable(os.Stdout, rep)
}
