// Cross-checks the matching algorithms against the brute-force
// baseline on fixed cases and randomized inputs.
//
// Run with: go run ./cmd/verify [-trials N] [-seed S]
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"harshagw/strmatch/internal/match"
	"harshagw/strmatch/internal/verify"
)

// TestCase is a search with a known expected MatchSet.
type TestCase struct {
	Text     string
	Pattern  string
	Expected []int
}

// Category groups related test cases.
type Category struct {
	Name  string
	Cases []TestCase
}

func main() {
	trials := flag.Int("trials", 1000, "number of random trials")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	fmt.Println("String Matcher Verification")
	fmt.Println("===========================")

	passed := 0
	failed := 0

	for _, category := range getTestCategories() {
		fmt.Printf("\n%s\n", category.Name)
		fmt.Println(strings.Repeat("-", len(category.Name)))

		for _, tc := range category.Cases {
			if runTestCase(tc) {
				passed++
			} else {
				failed++
			}
		}
	}

	fmt.Println("\nRandom trials")
	fmt.Println("-------------")
	summary := verify.Run(verify.Config{
		Trials:        *trials,
		Seed:          *seed,
		MaxTextLen:    300,
		MaxPatternLen: 8,
	})
	for _, m := range summary.Mismatches {
		fmt.Printf("  ✗ %s\n", m)
	}
	fmt.Printf("  %d of %d cases agree (seed %d)\n", summary.Passed, summary.Cases, *seed)
	passed += summary.Passed
	failed += summary.Cases - summary.Passed

	fmt.Println()
	fmt.Println("========================================")
	fmt.Printf("Results: %d passed, %d failed, %d total\n", passed, failed, passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
	fmt.Println("\nAll tests passed!")
}

func runTestCase(tc TestCase) bool {
	ok := true
	for _, algo := range match.Algorithms() {
		got := algo.Search(tc.Text, tc.Pattern)
		if !slices.Equal(got, tc.Expected) {
			fmt.Printf("  ✗ %s(%q, %q)\n", algo.Name, tc.Text, tc.Pattern)
			fmt.Printf("    Expected: %v\n", tc.Expected)
			fmt.Printf("    Got:      %v\n", got)
			ok = false
		}
	}
	if ok {
		fmt.Printf("  ✓ search(%q, %q) = %v\n", tc.Text, tc.Pattern, tc.Expected)
	}
	return ok
}

// getTestCategories returns the deterministic test cases every run
// covers before the random trials.
func getTestCategories() []Category {
	return []Category{
		{
			Name: "Basic occurrences",
			Cases: []TestCase{
				{"hello world", "world", []int{6}},
				{"hello world", "hello", []int{0}},
				{"abcabcabc", "abc", []int{0, 3, 6}},
				{"banana", "a", []int{1, 3, 5}},
				{"pattern", "pattern", []int{0}},
			},
		},
		{
			Name: "Overlapping occurrences",
			Cases: []TestCase{
				{"aaaa", "aa", []int{0, 1, 2}},
				{"aabaabaa", "aa", []int{0, 3, 6}},
				{"abababa", "aba", []int{0, 2, 4}},
			},
		},
		{
			Name: "No occurrences",
			Cases: []TestCase{
				{"abcabc", "xyz", nil},
				{"short", "longer pattern", nil},
				{"ab", "abc", nil},
			},
		},
		{
			Name: "Edge cases",
			Cases: []TestCase{
				{"abc", "", []int{0, 1, 2, 3}},
				{"", "", []int{0}},
				{"", "a", nil},
				{"x", "x", []int{0}},
			},
		},
	}
}
