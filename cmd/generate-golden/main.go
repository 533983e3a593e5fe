// Command generate-golden regenerates the spiral layout fixtures under
// internal/spiral/testdata. Before writing anything it cross-checks the
// uint64 sequence engine against an independent big.Int oracle, so a
// regression in the kernel cannot silently become the new expected output.
//
// Run from the repository root:
//
//	go run ./cmd/generate-golden
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/agbru/fibspiral/internal/fib"
	"github.com/agbru/fibspiral/internal/spiral"
)

// goldenIndexes are the sequence lengths with committed layout fixtures,
// kept in sync with the spiral package's golden tests.
var goldenIndexes = []uint64{1, 7, 12}

func main() {
	outDir := flag.String("out", filepath.Join("internal", "spiral", "testdata"), "directory to write fixtures to")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := verifyEngine(); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, n := range goldenIndexes {
		seq, err := fib.Compute(context.Background(), n)
		if err != nil {
			return fmt.Errorf("computing F(0..%d): %w", n, err)
		}
		layout, ok := spiral.Derive(seq)
		if !ok {
			return fmt.Errorf("no layout for n=%d", n)
		}

		data, err := json.MarshalIndent(layout, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding layout for n=%d: %w", n, err)
		}
		data = append(data, '\n')

		path := filepath.Join(outDir, fmt.Sprintf("layout_n%d.golden.json", n))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("wrote %s (%d squares, %d arcs)\n", path, len(layout.Squares), len(layout.Arcs))
	}
	return nil
}

// verifyEngine compares every representable term against the big.Int oracle.
func verifyEngine() error {
	seq, err := fib.Compute(context.Background(), fib.MaxUint64Index)
	if err != nil {
		return fmt.Errorf("computing full sequence: %w", err)
	}
	for _, term := range seq {
		want := fibBig(term.Index)
		if !want.IsUint64() || want.Uint64() != term.Value {
			return fmt.Errorf("engine disagrees with oracle at F(%d): engine %d, oracle %s",
				term.Index, term.Value, want)
		}
	}
	return nil
}

// fibBig computes F(n) with arbitrary precision, independent of the uint64
// engine it serves as a reference for.
func fibBig(n uint64) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
