package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"timeblock-stats/cmd/blockgen/engine"
)

func main() {
	scenario := flag.String("scenario", "balanced", "Scenario to generate: balanced, fragmented, overloaded")
	out := flag.String("out", "./blocks.json", "Output file for the generated time blocks")
	count := flag.Int("count", 20, "Number of blocks to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Count:    *count,
		Seed:     *seed,
		Now:      time.Now(),
	}

	fmt.Printf("Generating scenario '%s' (Count: %d, Seed: %d) to %s...\n", cfg.Scenario, cfg.Count, cfg.Seed, *out)

	items, err := engine.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate blocks: %v\n", err)
		os.Exit(1)
	}

	if err := engine.Save(*out, items); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save blocks: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
