// Package archive keeps a history of completed counting runs in a
// key-value store, one record per run keyed by run ID. Only run
// metadata is kept; phrase counts themselves never leave the flat-text
// output.
package archive

import (
	"fmt"
	"sort"
	"time"

	"pkg.jsn.cam/phrasetop/pkg/phrasetop"
	"pkg.jsn.cam/phrasetop/pkg/storage"
)

var runsBucket = []byte("runs")

// Record is the persisted summary of one run.
type Record struct {
	ID            string    `json:"id"`
	InputPath     string    `json:"input_path"`
	SourceSize    int64     `json:"source_size"`
	SplitCount    int       `json:"split_count"`
	SkippedSplits int       `json:"skipped_splits"`
	UniquePhrases int       `json:"unique_phrases"`
	TotalPhrases  int       `json:"total_phrases"`
	TopPhrase     string    `json:"top_phrase,omitempty"`
	TopCount      int       `json:"top_count,omitempty"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

// Archive stores run records. It implements phrasetop.Recorder.
type Archive struct {
	store *storage.JSONStore
}

// Open creates an archive backed by a bbolt database at dbPath.
func Open(dbPath string) (*Archive, error) {
	backend, err := storage.NewBboltBackend(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	return New(backend)
}

// New creates an archive on top of an existing backend.
func New(backend storage.Backend) (*Archive, error) {
	if err := backend.CreateBucket(runsBucket); err != nil {
		return nil, fmt.Errorf("create runs bucket: %w", err)
	}
	return &Archive{store: storage.NewJSONStore(backend)}, nil
}

// RecordRun persists the summary of a completed run.
func (a *Archive) RecordRun(res phrasetop.Result) error {
	rec := Record{
		ID:            res.RunID,
		InputPath:     res.InputPath,
		SourceSize:    res.SourceSize,
		SplitCount:    len(res.Splits),
		SkippedSplits: res.SkippedSplits,
		UniquePhrases: res.UniquePhrases,
		TotalPhrases:  res.TotalPhrases,
		StartedAt:     res.StartedAt,
		FinishedAt:    res.FinishedAt,
	}
	if len(res.Top) > 0 {
		rec.TopPhrase = res.Top[0].Phrase
		rec.TopCount = res.Top[0].Count
	}

	return a.store.PutJSON(runsBucket, []byte(rec.ID), rec)
}

// Get returns the record for a run ID, or nil if the run is unknown.
func (a *Archive) Get(runID string) (*Record, error) {
	var rec Record
	if err := a.store.GetJSON(runsBucket, []byte(runID), &rec); err != nil {
		return nil, err
	}
	if rec.ID == "" {
		return nil, nil
	}
	return &rec, nil
}

// List returns all run records, most recently started first.
func (a *Archive) List() ([]Record, error) {
	var records []Record
	err := a.store.ForEachJSON(runsBucket,
		func() interface{} { return &Record{} },
		func(k []byte, v interface{}) error {
			records = append(records, *v.(*Record))
			return nil
		})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})
	return records, nil
}

// Close closes the underlying store.
func (a *Archive) Close() error {
	return a.store.Close()
}
