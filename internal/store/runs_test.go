package store

import (
	"testing"
	"time"

	"harshagw/strmatch/internal/bench"
)

func testReport(seed int64) *bench.Report {
	return &bench.Report{
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		Seed:       seed,
		PatternLen: 10,
		Iterations: 20,
		Sizes:      []int{100, 600, 1100},
		Series: []bench.Series{
			{
				Algorithm: "KMP",
				Points: []bench.Point{
					{Size: 100, AvgNanos: 1200, Matches: 0},
					{Size: 600, AvgNanos: 6800, Matches: 1},
					{Size: 1100, AvgNanos: 12000, Matches: 1},
				},
			},
		},
	}
}

func openTestStore(t *testing.T) *RunStore {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetRun(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveRun(testReport(7))
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("first run ID = %d, want 1", id)
	}

	got, err := s.GetRun(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Seed != 7 || got.PatternLen != 10 || len(got.Series) != 1 {
		t.Errorf("round-tripped report mismatch: %+v", got)
	}
	if got.Series[0].Points[1].AvgNanos != 6800 {
		t.Errorf("point data lost: %+v", got.Series[0].Points)
	}
}

func TestRunIDsIncrement(t *testing.T) {
	s := openTestStore(t)

	for want := uint64(1); want <= 3; want++ {
		id, err := s.SaveRun(testReport(int64(want)))
		if err != nil {
			t.Fatal(err)
		}
		if id != want {
			t.Errorf("run ID = %d, want %d", id, want)
		}
	}
}

func TestListRuns(t *testing.T) {
	s := openTestStore(t)

	s.SaveRun(testReport(1))
	s.SaveRun(testReport(2))

	summaries, err := s.ListRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].ID != 1 || summaries[1].ID != 2 {
		t.Errorf("IDs out of order: %d, %d", summaries[0].ID, summaries[1].ID)
	}
	if summaries[0].MaxSize != 1100 {
		t.Errorf("MaxSize = %d, want 1100", summaries[0].MaxSize)
	}
	if len(summaries[0].Algorithms) != 1 || summaries[0].Algorithms[0] != "KMP" {
		t.Errorf("Algorithms = %v", summaries[0].Algorithms)
	}
}

func TestDeleteRun(t *testing.T) {
	s := openTestStore(t)

	id, _ := s.SaveRun(testReport(1))
	if err := s.DeleteRun(id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetRun(id); err == nil {
		t.Error("expected error for deleted run")
	}

	// Unknown ID is a no-op.
	if err := s.DeleteRun(999); err != nil {
		t.Errorf("deleting unknown ID: %v", err)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetRun(42); err == nil {
		t.Error("expected error for missing run")
	}
}
