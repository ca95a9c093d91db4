package phrasetop

import "time"

// Entry is one (phrase, count) pair in a selection result.
type Entry struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// Split describes one contiguous byte range of the source file that has
// been materialized as its own file. The union of all splits covers the
// source exactly, with no gaps or overlaps.
type Split struct {
	Index  int    `json:"index"` // 1-based, matches the file name
	Offset int64  `json:"offset"`
	Length int64  `json:"length"`
	Path   string `json:"path"`
}

// PhraseCounts accumulates phrase occurrence counts. It remembers the
// order in which phrases were first seen; that order is the tie-break
// for equal counts in TopN. It only ever grows.
type PhraseCounts struct {
	counts map[string]int
	order  []string
	total  int
}

// NewPhraseCounts returns an empty accumulator.
func NewPhraseCounts() *PhraseCounts {
	return &PhraseCounts{counts: make(map[string]int)}
}

// Add increments the count for phrase, inserting it at 1 if absent.
func (c *PhraseCounts) Add(phrase string) {
	c.AddN(phrase, 1)
}

// AddN increments the count for phrase by n.
func (c *PhraseCounts) AddN(phrase string, n int) {
	if _, seen := c.counts[phrase]; !seen {
		c.order = append(c.order, phrase)
	}
	c.counts[phrase] += n
	c.total += n
}

// Count returns the current count for phrase, or 0 if it was never added.
func (c *PhraseCounts) Count(phrase string) int {
	return c.counts[phrase]
}

// Len returns the number of unique phrases.
func (c *PhraseCounts) Len() int {
	return len(c.order)
}

// Total returns the total number of phrase occurrences added.
func (c *PhraseCounts) Total() int {
	return c.total
}

// Entries returns all (phrase, count) pairs in first-insertion order.
// The returned slice is freshly allocated and safe to reorder.
func (c *PhraseCounts) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, phrase := range c.order {
		entries = append(entries, Entry{Phrase: phrase, Count: c.counts[phrase]})
	}
	return entries
}

// Merge adds every count from other into c, summing counts per phrase.
// Phrases new to c keep other's relative order after c's existing ones,
// so merging partial accumulators is associative on counts.
func (c *PhraseCounts) Merge(other *PhraseCounts) {
	for _, phrase := range other.order {
		c.AddN(phrase, other.counts[phrase])
	}
}

// Result summarizes one completed counting run.
type Result struct {
	RunID         string    `json:"run_id"`
	InputPath     string    `json:"input_path"`
	SourceSize    int64     `json:"source_size"`
	Splits        []Split   `json:"splits"`
	SkippedSplits int       `json:"skipped_splits"`
	UniquePhrases int       `json:"unique_phrases"`
	TotalPhrases  int       `json:"total_phrases"`
	Top           []Entry   `json:"top"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

// Recorder receives a summary of a completed run, e.g. for a run archive.
type Recorder interface {
	RecordRun(res Result) error
}
