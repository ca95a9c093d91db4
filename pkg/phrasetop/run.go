package phrasetop

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultSplitCount is the number of byte-range splits the source file
// is partitioned into. If the size does not divide evenly one extra
// split is produced for the remainder.
const DefaultSplitCount = 10

// Config describes one counting run. Zero values mean defaults where a
// default exists; only InputPath is required.
type Config struct {
	// InputPath is the source file of delimiter-separated phrases.
	InputPath string

	// WorkDir receives the split files. Defaults to the directory of
	// InputPath. Split files are left in place after the run.
	WorkDir string

	// OutputPath receives the rendered result, appended one line per
	// run. Defaults to topphrases.out inside WorkDir.
	OutputPath string

	// Splits is the number of byte-range splits (default 10).
	Splits int

	// Limit is the maximum number of top phrases selected (default
	// 100000). A negative limit selects nothing.
	Limit int

	// Delimiter separates phrases within a line (default '|').
	Delimiter byte

	// BufferSize is the fixed transfer buffer used while splitting
	// (default 8 KiB).
	BufferSize int

	// Logger receives progress and skip diagnostics. Nil discards.
	Logger *log.Logger

	// Recorder, if set, receives the run summary after the output has
	// been written. Recorder failures are logged, not fatal.
	Recorder Recorder
}

func (cfg *Config) applyDefaults() error {
	if cfg.InputPath == "" {
		return ErrNoInputPath
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = filepath.Dir(cfg.InputPath)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = filepath.Join(cfg.WorkDir, "topphrases.out")
	}
	if cfg.Splits == 0 {
		cfg.Splits = DefaultSplitCount
	}
	if cfg.Splits < 0 {
		return ErrInvalidSplitCount
	}
	if cfg.Limit == 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Delimiter == 0 {
		cfg.Delimiter = DefaultDelimiter
	}
	if cfg.Delimiter == '\n' || cfg.Delimiter == '\r' {
		return ErrInvalidDelimiter
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.BufferSize < 0 {
		return ErrInvalidBufferSize
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return nil
}

// Run executes the full pipeline, strictly in sequence: split the source
// into byte-range files, stream every split through the phrase counter
// into one shared accumulator, select the top entries and append the
// rendered result to the output file.
//
// Splitting errors are fatal and abort the run. A split that cannot be
// read back during counting is logged and skipped; its bytes simply
// contribute no phrases.
func Run(cfg Config) (*Result, error) {
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:     uuid.New().String(),
		InputPath: cfg.InputPath,
		StartedAt: time.Now(),
	}

	splits, err := SplitFile(cfg.InputPath, cfg.WorkDir, cfg.Splits, cfg.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", cfg.InputPath, err)
	}
	res.Splits = splits
	for _, sp := range splits {
		res.SourceSize += sp.Length
	}
	cfg.Logger.Printf("[SPLIT] %s: %d bytes into %d splits", cfg.InputPath, res.SourceSize, len(splits))

	counts := NewPhraseCounts()
	res.SkippedSplits = aggregateSplits(splits, cfg.Delimiter, counts, cfg.Logger)
	res.UniquePhrases = counts.Len()
	res.TotalPhrases = counts.Total()
	cfg.Logger.Printf("[COUNT] %d phrases, %d unique (%d splits skipped)",
		res.TotalPhrases, res.UniquePhrases, res.SkippedSplits)

	res.Top = TopN(counts, cfg.Limit)

	if err := AppendResult(cfg.OutputPath, res.Top); err != nil {
		return nil, err
	}
	res.FinishedAt = time.Now()
	cfg.Logger.Printf("[RUN] %s: top %d appended to %s", res.RunID, len(res.Top), cfg.OutputPath)

	if cfg.Recorder != nil {
		if err := cfg.Recorder.RecordRun(*res); err != nil {
			cfg.Logger.Printf("[RUN] recording run %s failed: %v", res.RunID, err)
		}
	}

	return res, nil
}

// aggregateSplits streams every split file into counts, accumulating
// globally across splits. A split that cannot be opened or read is
// logged and skipped; the others still count. Returns the number of
// splits skipped.
func aggregateSplits(splits []Split, delim byte, counts *PhraseCounts, logger *log.Logger) int {
	skipped := 0
	for _, sp := range splits {
		f, err := os.Open(sp.Path)
		if err != nil {
			logger.Printf("[COUNT] skipping split %d: %v", sp.Index, err)
			skipped++
			continue
		}

		err = CountPhrases(f, delim, counts)
		f.Close()
		if err != nil {
			logger.Printf("[COUNT] skipping split %d after read error: %v", sp.Index, err)
			skipped++
		}
	}
	return skipped
}
