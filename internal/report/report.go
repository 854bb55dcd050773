// Package report renders benchmark reports as tables, ASCII charts and
// CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"harshagw/strmatch/internal/bench"
)

// WriteTable writes an aligned latency table, one row per text size and
// one column per algorithm.
func WriteTable(w io.Writer, r *bench.Report) error {
	if len(r.Series) == 0 {
		_, err := fmt.Fprintln(w, "  (no data)")
		return err
	}

	fmt.Fprintf(w, "  %-10s", "Size")
	for _, s := range r.Series {
		fmt.Fprintf(w, "  %14s", s.Algorithm)
	}
	fmt.Fprintln(w)

	for i, size := range r.Sizes {
		fmt.Fprintf(w, "  %-10d", size)
		for _, s := range r.Series {
			fmt.Fprintf(w, "  %14s", formatLatency(s.Points[i].AvgNanos))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func formatLatency(nanos int64) string {
	switch {
	case nanos >= 1e6:
		return fmt.Sprintf("%.2f ms", float64(nanos)/1e6)
	case nanos >= 1e3:
		return fmt.Sprintf("%.2f µs", float64(nanos)/1e3)
	default:
		return fmt.Sprintf("%d ns", nanos)
	}
}

const (
	chartHeight = 16
	chartWidth  = 72
)

// WriteChart writes an ASCII chart of average search time against text
// size, one mark per algorithm.
func WriteChart(w io.Writer, r *bench.Report) error {
	if len(r.Series) == 0 || len(r.Sizes) == 0 {
		_, err := fmt.Fprintln(w, "  (no data)")
		return err
	}

	marks := []byte{'B', 'K', 'M', '#', '+', '@'}

	var maxNanos int64
	for _, s := range r.Series {
		for _, p := range s.Points {
			if p.AvgNanos > maxNanos {
				maxNanos = p.AvgNanos
			}
		}
	}
	if maxNanos == 0 {
		maxNanos = 1
	}

	grid := make([][]byte, chartHeight)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", chartWidth))
	}

	for si, s := range r.Series {
		mark := marks[si%len(marks)]
		for pi, p := range s.Points {
			col := 0
			if len(s.Points) > 1 {
				col = pi * (chartWidth - 1) / (len(s.Points) - 1)
			}
			row := chartHeight - 1 - int(p.AvgNanos*int64(chartHeight-1)/maxNanos)
			grid[row][col] = mark
		}
	}

	fmt.Fprintf(w, "  avg time (max %s)\n", formatLatency(maxNanos))
	for _, line := range grid {
		fmt.Fprintf(w, "  |%s\n", string(line))
	}
	fmt.Fprintf(w, "  +%s\n", strings.Repeat("-", chartWidth))

	lo, hi := fmt.Sprint(r.Sizes[0]), fmt.Sprint(r.Sizes[len(r.Sizes)-1])
	pad := chartWidth - len(lo) - len(hi)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(w, "   %s%s%s (text size)\n", lo, strings.Repeat(" ", pad), hi)

	fmt.Fprint(w, "  legend:")
	for si, s := range r.Series {
		fmt.Fprintf(w, " %c=%s", marks[si%len(marks)], s.Algorithm)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteCSV writes the report as size,algorithm,avg_ns,matches rows.
func WriteCSV(w io.Writer, r *bench.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"size", "algorithm", "avg_ns", "matches"}); err != nil {
		return err
	}
	for _, s := range r.Series {
		for _, p := range s.Points {
			row := []string{
				strconv.Itoa(p.Size),
				s.Algorithm,
				strconv.FormatInt(p.AvgNanos, 10),
				strconv.Itoa(p.Matches),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
