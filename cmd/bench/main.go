// Benchmark runner for the string matchers.
//
// Run with: go run ./cmd/bench [run|list|show|delete|export] [flags]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"harshagw/strmatch/internal/bench"
	"harshagw/strmatch/internal/corpus"
	"harshagw/strmatch/internal/match"
	"harshagw/strmatch/internal/report"
	"harshagw/strmatch/internal/store"
)

const defaultStoreDir = ".history"

func main() {
	args := os.Args[1:]
	cmd := "run"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "run":
		runCmd(args)
	case "list":
		listCmd(args)
	case "show":
		showCmd(args)
	case "delete":
		deleteCmd(args)
	case "export":
		exportCmd(args)
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Commands:")
	fmt.Println("  run [flags]          - Run a benchmark sweep (default)")
	fmt.Println("  list                 - List saved runs")
	fmt.Println("  show <id> [flags]    - Show a saved run")
	fmt.Println("  delete <id>          - Delete a saved run")
	fmt.Println("  export <id> -csv F   - Export a saved run as CSV")
	fmt.Println()
	fmt.Println("Run 'bench run -h' for the sweep flags.")
}

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	min := fs.Int("min", 100, "smallest text size")
	max := fs.Int("max", 100000, "largest text size (exclusive)")
	step := fs.Int("step", 500, "text size step")
	patternLen := fs.Int("pattern-len", 10, "random pattern length")
	pattern := fs.String("pattern", "", "explicit pattern (overrides -pattern-len)")
	iterations := fs.Int("iterations", 20, "timed searches per measurement")
	warmup := fs.Int("warmup", 3, "warmup searches per measurement")
	seed := fs.Int64("seed", 1, "random seed")
	algos := fs.String("algos", "", "comma-separated algorithms (default all)")
	textFile := fs.String("text", "", "corpus file to search instead of random text")
	chart := fs.Bool("chart", true, "render an ASCII chart")
	save := fs.Bool("save", false, "save the report to the run store")
	storeDir := fs.String("store", defaultStoreDir, "run store directory")
	fs.Parse(args)

	cfg := bench.Config{
		Sizes:      bench.SizeRange(*min, *max, *step),
		PatternLen: *patternLen,
		Pattern:    *pattern,
		Iterations: *iterations,
		Warmup:     *warmup,
		Seed:       *seed,
	}

	if *algos != "" {
		selected, err := parseAlgos(*algos)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Algorithms = selected
	}

	if *textFile != "" {
		c, err := corpus.Open(*textFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Text = c.Text()
		c.Close()
		fmt.Printf("Loaded corpus %s (%d chars)\n", *textFile, len(cfg.Text))
	}

	fmt.Println("String Matching Benchmark")
	fmt.Println("=========================")
	fmt.Println()
	fmt.Printf("Sizes: %d..%d step %d, pattern length %d, %d iterations, seed %d\n\n",
		*min, *max, *step, cfg.PatternLen, cfg.Iterations, cfg.Seed)

	start := time.Now()
	rep, err := bench.NewRunner(cfg).Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Completed in %.2f seconds\n\n", time.Since(start).Seconds())

	printReport(rep, *chart)

	if *save {
		saveReport(rep, *storeDir)
	}
}

func parseAlgos(list string) ([]match.Algorithm, error) {
	var selected []match.Algorithm
	for _, name := range strings.Split(list, ",") {
		algo, ok := match.ByName(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q (try bf, kmp or bm)", name)
		}
		selected = append(selected, algo)
	}
	return selected, nil
}

func printReport(rep *bench.Report, chart bool) {
	fmt.Println("RESULTS")
	fmt.Println("-------")
	report.WriteTable(os.Stdout, rep)
	fmt.Println()

	if chart {
		report.WriteChart(os.Stdout, rep)
		fmt.Println()
	}
}

func saveReport(rep *bench.Report, dir string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating store directory: %v\n", err)
		os.Exit(1)
	}
	s := openStore(dir)
	defer s.Close()

	id, err := s.SaveRun(rep)
	if err != nil {
		fmt.Printf("Error saving run: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved as run %d\n", id)
}

func openStore(dir string) *store.RunStore {
	s, err := store.Open(dir)
	if err != nil {
		fmt.Printf("Error opening run store: %v\n", err)
		os.Exit(1)
	}
	return s
}

func listCmd(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	storeDir := fs.String("store", defaultStoreDir, "run store directory")
	fs.Parse(args)

	s := openStore(*storeDir)
	defer s.Close()

	summaries, err := s.ListRuns()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if len(summaries) == 0 {
		fmt.Println("No saved runs.")
		return
	}

	fmt.Printf("  %-4s  %-19s  %-8s  %-11s  %-10s  %s\n",
		"ID", "Created", "Seed", "PatternLen", "MaxSize", "Algorithms")
	for _, sum := range summaries {
		fmt.Printf("  %-4d  %-19s  %-8d  %-11d  %-10d  %s\n",
			sum.ID, sum.CreatedAt.Format("2006-01-02 15:04:05"),
			sum.Seed, sum.PatternLen, sum.MaxSize,
			strings.Join(sum.Algorithms, ", "))
	}
}

func parseRunID(args []string) (uint64, []string) {
	if len(args) < 1 {
		fmt.Println("Missing run ID")
		os.Exit(1)
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid run ID: %s\n", args[0])
		os.Exit(1)
	}
	return id, args[1:]
}

func showCmd(args []string) {
	id, rest := parseRunID(args)

	fs := flag.NewFlagSet("show", flag.ExitOnError)
	storeDir := fs.String("store", defaultStoreDir, "run store directory")
	chart := fs.Bool("chart", true, "render an ASCII chart")
	fs.Parse(rest)

	s := openStore(*storeDir)
	defer s.Close()

	rep, err := s.GetRun(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %d (created %s, seed %d)\n\n",
		id, rep.CreatedAt.Format("2006-01-02 15:04:05"), rep.Seed)
	printReport(rep, *chart)
}

func deleteCmd(args []string) {
	id, rest := parseRunID(args)

	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	storeDir := fs.String("store", defaultStoreDir, "run store directory")
	fs.Parse(rest)

	s := openStore(*storeDir)
	defer s.Close()

	if err := s.DeleteRun(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted run %d\n", id)
}

func exportCmd(args []string) {
	id, rest := parseRunID(args)

	fs := flag.NewFlagSet("export", flag.ExitOnError)
	storeDir := fs.String("store", defaultStoreDir, "run store directory")
	out := fs.String("csv", "", "output file (default stdout)")
	fs.Parse(rest)

	s := openStore(*storeDir)
	defer s.Close()

	rep, err := s.GetRun(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := report.WriteCSV(w, rep); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		fmt.Printf("Exported run %d to %s\n", id, *out)
	}
}
