// Interactive shell for the string matchers.
//
// Run with: go run ./cmd/strmatch
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"

	"harshagw/strmatch/internal/corpus"
	"harshagw/strmatch/internal/gen"
	"harshagw/strmatch/internal/match"
	"harshagw/strmatch/internal/verify"
)

// REPL holds the working text and its vocabulary between commands.
type REPL struct {
	text  string
	vocab *corpus.Vocab
}

func main() {
	fmt.Println("String Matcher REPL")
	fmt.Println()
	printHelp()
	fmt.Println()

	r := &REPL{}

	p := prompt.New(
		r.executor,
		func(d prompt.Document) []prompt.Suggest { return nil },
		prompt.OptionPrefix("strmatch >> "),
		prompt.OptionTitle("strmatch"),
	)
	p.Run()
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  text <string>              - Set the working text")
	fmt.Println("  gen <n> [seed]             - Generate a random working text of n chars")
	fmt.Println("  load <file>                - Load working text from a file (mmap)")
	fmt.Println("  search <algo> <pattern>    - Find all occurrences (algo: bf, kmp, bm)")
	fmt.Println("  compare <pattern>          - Run all algorithms, check they agree")
	fmt.Println("  lps <pattern>              - Show the KMP LPS table")
	fmt.Println("  badchar <pattern>          - Show the Boyer-Moore bad-character table")
	fmt.Println("  vocab [limit]              - Show tokens of the working text")
	fmt.Println("  help                       - Show this help")
	fmt.Println("  quit                       - Exit")
}

func (r *REPL) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case "text":
		r.cmdText(input)
	case "gen":
		r.cmdGen(parts[1:])
	case "load":
		r.cmdLoad(parts[1:])
	case "search":
		r.cmdSearch(parts[1:])
	case "compare":
		r.cmdCompare(parts[1:])
	case "lps":
		r.cmdLPS(parts[1:])
	case "badchar":
		r.cmdBadChar(parts[1:])
	case "vocab":
		r.cmdVocab(parts[1:])
	case "help":
		printHelp()
	case "quit", "exit":
		fmt.Println("Goodbye!")
		os.Exit(0)
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
	}
}

// setText installs a new working text and rebuilds its vocabulary.
func (r *REPL) setText(text, source string) {
	r.text = text
	r.vocab = nil

	vocab, err := corpus.BuildVocab(text)
	if err != nil {
		fmt.Printf("Warning: could not build vocabulary: %v\n", err)
	} else {
		r.vocab = vocab
	}

	fmt.Printf("Working text set from %s (%d chars, %d distinct tokens)\n",
		source, len(text), vocabLen(r.vocab))
}

func vocabLen(v *corpus.Vocab) int {
	if v == nil {
		return 0
	}
	return v.Len()
}

func (r *REPL) cmdText(input string) {
	parts := strings.SplitN(input, " ", 2)
	if len(parts) < 2 {
		fmt.Println("Usage: text <string>")
		return
	}
	r.setText(parts[1], "input")
}

func (r *REPL) cmdGen(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: gen <n> [seed]")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Printf("Invalid length: %s\n", args[0])
		return
	}
	seed := time.Now().UnixNano()
	if len(args) >= 2 {
		s, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Printf("Invalid seed: %s\n", args[1])
			return
		}
		seed = s
	}
	r.setText(gen.New(seed).Text(n), fmt.Sprintf("generator (seed %d)", seed))
}

func (r *REPL) cmdLoad(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: load <file>")
		return
	}

	c, err := corpus.Open(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	text := c.Text()
	c.Close()

	r.setText(text, args[0])
}

func (r *REPL) requireText() bool {
	if r.text == "" {
		fmt.Println("No working text. Use 'text', 'gen' or 'load' first.")
		return false
	}
	return true
}

func (r *REPL) cmdSearch(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: search <algo> <pattern>")
		return
	}
	if !r.requireText() {
		return
	}

	algo, ok := match.ByName(args[0])
	if !ok {
		fmt.Printf("Unknown algorithm: %s (try bf, kmp or bm)\n", args[0])
		return
	}
	pattern := strings.Join(args[1:], " ")

	start := time.Now()
	positions := algo.Search(r.text, pattern)
	elapsed := time.Since(start)

	fmt.Printf("%s found %d occurrence(s) in %v\n", algo.Name, len(positions), elapsed)
	printPositions(r.text, pattern, positions)
}

func printPositions(text, pattern string, positions []int) {
	const maxShown = 20
	for i, p := range positions {
		if i == maxShown {
			fmt.Printf("  ... and %d more\n", len(positions)-maxShown)
			return
		}
		fmt.Printf("  %6d  %s\n", p, excerpt(text, p, len(pattern)))
	}
}

// excerpt shows the match with a little surrounding context.
func excerpt(text string, pos, m int) string {
	const context = 10
	start := pos - context
	if start < 0 {
		start = 0
	}
	end := pos + m + context
	if end > len(text) {
		end = len(text)
	}
	return fmt.Sprintf("...%s[%s]%s...", text[start:pos], text[pos:pos+m], text[pos+m:end])
}

func (r *REPL) cmdCompare(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: compare <pattern>")
		return
	}
	if !r.requireText() {
		return
	}
	pattern := strings.Join(args, " ")

	for _, algo := range match.Algorithms() {
		start := time.Now()
		positions := algo.Search(r.text, pattern)
		elapsed := time.Since(start)
		fmt.Printf("  %-12s %6d occurrence(s)  %v\n", algo.Name, len(positions), elapsed)
	}

	if ms := verify.Check(r.text, pattern); len(ms) > 0 {
		fmt.Println("MISMATCH:")
		for _, m := range ms {
			fmt.Printf("  %s\n", m)
		}
	} else {
		fmt.Println("All algorithms agree.")
	}
}

func (r *REPL) cmdLPS(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: lps <pattern>")
		return
	}
	pattern := strings.Join(args, " ")
	lps := match.LPSTable(pattern)

	fmt.Printf("  pattern: %s\n", pattern)
	fmt.Printf("  lps:     %v\n", lps)
}

func (r *REPL) cmdBadChar(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: badchar <pattern>")
		return
	}
	pattern := strings.Join(args, " ")

	fmt.Printf("  pattern: %s\n", pattern)
	for _, e := range match.BadCharEntries(pattern) {
		fmt.Printf("  %q -> %d\n", e.Char, e.Last)
	}
}

func (r *REPL) cmdVocab(args []string) {
	if !r.requireText() {
		return
	}
	if r.vocab == nil {
		fmt.Println("No vocabulary available for the working text.")
		return
	}

	limit := 20
	if len(args) >= 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Printf("Invalid limit: %s\n", args[0])
			return
		}
		limit = n
	}

	tokens, counts, err := r.vocab.Tokens(limit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for i, token := range tokens {
		fmt.Printf("  %-20s %d\n", token, counts[i])
	}
	if r.vocab.Len() > len(tokens) {
		fmt.Printf("  ... %d more tokens\n", r.vocab.Len()-len(tokens))
	}
}
