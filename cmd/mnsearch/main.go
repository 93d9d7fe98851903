// Command mnsearch searches a corpus file for a literal pattern using the
// Musser-Nishanov AL/HAL engine, printing the match offset and the elapsed
// scan time. It exists to exercise mn.Engine end to end the way the
// original algorithm's speed_test harness did, and as a quick way to sanity
// check a trait choice against a real corpus from the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coregx/musserlib/mn"
	"github.com/coregx/musserlib/mn/trait"
	"github.com/coregx/musserlib/simd"
)

func main() {
	corpusPath := flag.String("corpus", "", "path to the corpus file (required)")
	pattern := flag.String("pattern", "", "pattern to search for (required)")
	traitName := flag.String("trait", "identity", "search trait: identity, dna2, dna3, dna4")
	verbose := flag.Bool("v", false, "print detected CPU features before searching")
	flag.Parse()

	if *corpusPath == "" || *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: mnsearch -corpus FILE -pattern STRING [-trait NAME] [-v]")
		os.Exit(2)
	}

	if *verbose {
		f := simd.DetectCPUFeatures()
		log.Printf("cpu features: avx2=%v asimd=%v", f.AVX2, f.ASIMD)
	}

	corpus, err := os.ReadFile(*corpusPath)
	if err != nil {
		log.Fatalf("mnsearch: %v", err)
	}

	patternBytes := []byte(*pattern)
	tr, err := resolveTrait(*traitName)
	if err != nil {
		log.Fatalf("mnsearch: %v", err)
	}
	if tr != trait.Identity {
		corpus = trait.EncodeDNA(corpus)
		patternBytes = trait.EncodeDNA(patternBytes)
	}

	e, err := mn.NewEngine(patternBytes, tr)
	if err != nil {
		log.Fatalf("mnsearch: %v", err)
	}

	start := time.Now()
	first, last := e.Search(corpus, 0)
	elapsed := time.Since(start)

	if len(patternBytes) == 0 {
		fmt.Printf("empty pattern matches at [%d, %d) (scanned %d bytes in %s)\n", first, last, len(corpus), elapsed)
		return
	}
	if first == last {
		fmt.Printf("no match (scanned %d bytes in %s)\n", len(corpus), elapsed)
		os.Exit(1)
	}
	fmt.Printf("match at [%d, %d) (scanned %d bytes in %s)\n", first, last, len(corpus), elapsed)
}

func resolveTrait(name string) (trait.Trait[byte], error) {
	switch name {
	case "identity":
		return trait.Identity, nil
	case "dna2":
		return trait.DNA2, nil
	case "dna3":
		return trait.DNA3, nil
	case "dna4":
		return trait.DNA4, nil
	default:
		return nil, fmt.Errorf("unknown trait %q", name)
	}
}
