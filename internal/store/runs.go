// Package store persists benchmark reports using BoltDB.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"

	"harshagw/strmatch/internal/bench"
)

var (
	bucketRuns     = []byte("runs")
	bucketCounters = []byte("counters")
	keyNextRunID   = []byte("next_run_id")
)

// RunSummary is the listing view of a stored run.
type RunSummary struct {
	ID         uint64
	CreatedAt  time.Time
	Seed       int64
	PatternLen int
	Iterations int
	MaxSize    int
	Algorithms []string
}

// RunStore provides persistent storage for benchmark runs.
type RunStore struct {
	db *bolt.DB
}

// Open opens or creates the run database in dir.
func Open(dir string) (*RunStore, error) {
	dbPath := filepath.Join(dir, "runs.db")
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketRuns, bucketCounters} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &RunStore{db: db}, nil
}

// SaveRun stores a report and returns its assigned run ID.
func (s *RunStore) SaveRun(report *bench.Report) (uint64, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return 0, err
	}

	var id uint64
	err = s.db.Update(func(tx *bolt.Tx) error {
		counters := tx.Bucket(bucketCounters)
		if prev := counters.Get(keyNextRunID); prev != nil {
			id = binary.BigEndian.Uint64(prev)
		}
		id++
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, id)
		if err := counters.Put(keyNextRunID, buf); err != nil {
			return err
		}
		return tx.Bucket(bucketRuns).Put(buf, data)
	})
	return id, err
}

// GetRun loads a stored report by ID.
func (s *RunStore) GetRun(id uint64) (*bench.Report, error) {
	var report bench.Report
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketRuns).Get(runKey(id))
		if data == nil {
			return fmt.Errorf("run %d not found", id)
		}
		return json.Unmarshal(data, &report)
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListRuns returns summaries for all stored runs in ID order.
func (s *RunStore) ListRuns() ([]RunSummary, error) {
	var summaries []RunSummary
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRuns).ForEach(func(k, v []byte) error {
			var report bench.Report
			if err := json.Unmarshal(v, &report); err != nil {
				return err
			}
			summaries = append(summaries, summarize(binary.BigEndian.Uint64(k), &report))
			return nil
		})
	})
	return summaries, err
}

// DeleteRun removes a stored run. Deleting an unknown ID is not an
// error.
func (s *RunStore) DeleteRun(id uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRuns).Delete(runKey(id))
	})
}

// Close closes the underlying database.
func (s *RunStore) Close() error {
	return s.db.Close()
}

func runKey(id uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	return buf
}

func summarize(id uint64, report *bench.Report) RunSummary {
	summary := RunSummary{
		ID:         id,
		CreatedAt:  report.CreatedAt,
		Seed:       report.Seed,
		PatternLen: report.PatternLen,
		Iterations: report.Iterations,
	}
	if len(report.Sizes) > 0 {
		summary.MaxSize = report.Sizes[len(report.Sizes)-1]
	}
	for _, series := range report.Series {
		summary.Algorithms = append(summary.Algorithms, series.Algorithm)
	}
	return summary
}
