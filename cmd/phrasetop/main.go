package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"pkg.jsn.cam/phrasetop/internal/archive"
	"pkg.jsn.cam/phrasetop/pkg/phrasetop"
)

var (
	path        = flag.String("path", "", "Path to the input file of delimiter-separated phrases")
	output      = flag.String("output", "", "Output file the result is appended to (default topphrases.out next to the splits)")
	workDir     = flag.String("workdir", "", "Directory for split files (default: directory of the input file)")
	splits      = flag.Int("splits", phrasetop.DefaultSplitCount, "Number of byte-range splits")
	limit       = flag.Int("limit", phrasetop.DefaultLimit, "Maximum number of top phrases to select")
	delimiter   = flag.String("delimiter", "|", "Single-character phrase delimiter")
	bufferSize  = flag.Int("buffer", phrasetop.DefaultBufferSize, "Transfer buffer size in bytes used while splitting")
	archivePath = flag.String("archive", "", "Path to a run-archive database (empty disables archiving)")
	quiet       = flag.Bool("quiet", false, "Suppress progress logging")
)

func main() {
	flag.Parse()

	if *path == "" {
		log.Fatal("path is required")
	}
	if len(*delimiter) != 1 {
		log.Fatalf("delimiter must be a single character, got %q", *delimiter)
	}

	cfg := phrasetop.Config{
		InputPath:  *path,
		WorkDir:    *workDir,
		OutputPath: *output,
		Splits:     *splits,
		Limit:      *limit,
		Delimiter:  (*delimiter)[0],
		BufferSize: *bufferSize,
	}
	if !*quiet {
		cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	if *archivePath != "" {
		a, err := archive.Open(*archivePath)
		if err != nil {
			log.Fatalf("Failed to open run archive: %v", err)
		}
		defer a.Close()
		cfg.Recorder = a
	}

	res, err := phrasetop.Run(cfg)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	fmt.Printf("Run completed!\n")
	fmt.Printf("  Run ID:       %s\n", res.RunID)
	fmt.Printf("  Source:       %s (%s)\n", res.InputPath, humanize.Bytes(uint64(res.SourceSize)))
	fmt.Printf("  Splits:       %d (%d skipped)\n", len(res.Splits), res.SkippedSplits)
	fmt.Printf("  Phrases:      %s total, %s unique\n",
		humanize.Comma(int64(res.TotalPhrases)), humanize.Comma(int64(res.UniquePhrases)))
	fmt.Printf("  Selected:     %d\n", len(res.Top))
	fmt.Printf("  Duration:     %v\n", res.FinishedAt.Sub(res.StartedAt))

	if len(res.Top) > 0 {
		n := len(res.Top)
		if n > 10 {
			n = 10
		}
		fmt.Printf("\nTop %d phrases:\n", n)
		for _, e := range res.Top[:n] {
			fmt.Printf("  %-40s %s\n", e.Phrase, humanize.Comma(int64(e.Count)))
		}
	}
}
