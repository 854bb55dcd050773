package verify

import "testing"

func TestRunAllAgree(t *testing.T) {
	summary := Run(Config{
		Trials:        300,
		Seed:          7,
		MaxTextLen:    200,
		MaxPatternLen: 6,
	})

	if !summary.OK() {
		for _, m := range summary.Mismatches {
			t.Error(m)
		}
	}
	if summary.Passed != summary.Cases {
		t.Errorf("passed %d of %d cases", summary.Passed, summary.Cases)
	}
	if summary.Cases <= 300 {
		t.Errorf("expected fixed cases on top of 300 trials, got %d total", summary.Cases)
	}
}

func TestCheckAgreement(t *testing.T) {
	if ms := Check("abracadabra", "abra"); len(ms) != 0 {
		t.Errorf("unexpected mismatches: %v", ms)
	}
}

func TestCheckDetectsDisagreement(t *testing.T) {
	// A broken matcher restarting the pattern index from zero on every
	// mismatch would miss overlapping occurrences; simulate that by
	// comparing position sets directly.
	want := newPositionSet([]int{0, 1, 2})
	missed := newPositionSet([]int{0, 2})
	if want.equals(missed) {
		t.Error("differing position sets reported equal")
	}

	outOfOrder := newPositionSet([]int{2, 0, 1})
	if outOfOrder.equals(want) {
		t.Error("unordered positions reported equal to ordered ones")
	}

	duplicated := newPositionSet([]int{0, 0, 1, 2})
	if duplicated.equals(want) {
		t.Error("duplicated positions reported equal")
	}
}

func TestRunDeterminism(t *testing.T) {
	cfg := Config{Trials: 50, Seed: 3, MaxTextLen: 100, MaxPatternLen: 5}
	a, b := Run(cfg), Run(cfg)
	if a.Cases != b.Cases || a.Passed != b.Passed {
		t.Errorf("same seed gave different summaries: %+v vs %+v", a, b)
	}
}
