package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"pkg.jsn.cam/phrasetop/cmd/testdata/generator"
)

/*generates test corpora of delimiter-separated phrases for manual runs and benchmarks*/

var (
	Name       = flag.String("generator", "phrases", "Generator to use: "+strings.Join(generator.List(), ", "))
	TotalCount = flag.Int64("total_count", 0, "Total number of lines to generate (0 = generator default)")
	VocabSize  = flag.Int("vocab", 1000, "Number of unique phrases in the vocabulary")
	OutputPath = flag.String("output", "var/phrases.txt", "Output file path")
	Seed       = flag.Uint64("seed", 0, "Random seed (0 = time-based)")
)

func main() {
	flag.Parse()

	generator.SetVocabSize(*Name, *VocabSize)
	gen, err := generator.Get(*Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	seed := *Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen.Init(rand.New(rand.NewPCG(seed, 0xda7a)))

	count := *TotalCount
	if count <= 0 {
		count = gen.DefaultCount()
	}

	if err := os.MkdirAll(filepath.Dir(*OutputPath), 0755); err != nil {
		panic(err)
	}
	file, err := os.Create(*OutputPath)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	bar := progressbar.Default(count, "generating")

	for i := int64(0); i < count; i++ {
		if err := gen.WriteLine(w); err != nil {
			panic(err)
		}
		if i%1000 == 0 {
			bar.Add64(1000)
		}
	}
	bar.Finish()

	if err := w.Flush(); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d lines to %s (%s)\n", count, *OutputPath, gen.Description())
}
