package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"timeblock-stats/internal/blocks"
)

type GeneratorConfig struct {
	Scenario string // "balanced", "fragmented" or "overloaded"
	Count    int
	Seed     int64
	Now      time.Time
}

var titles = []string{
	"Team meeting",
	"Client call",
	"Implement feature",
	"Fix bug in parser",
	"Study Go course",
	"Sprint planning",
	"Regression tests",
	"Write documentation",
	"Deep architecture research",
	"Routine email",
	"Important release prep",
	"Gym",
}

var statuses = []string{blocks.StatusCompleted, blocks.StatusActive, blocks.StatusPlanned}

// Generate builds Count blocks for the scenario. The same seed always yields
// the same blocks.
func Generate(cfg GeneratorConfig) ([]blocks.TimeBlock, error) {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count must not be negative: %d", cfg.Count)
	}

	var minDur, spread int
	completedBias := 0.0
	switch cfg.Scenario {
	case "balanced":
		minDur, spread = 45, 60 // 45-104 min, mostly deep work
		completedBias = 0.5
	case "fragmented":
		minDur, spread = 5, 35 // 5-39 min, below the fragmentation threshold
	case "overloaded":
		minDur, spread = 150, 240 // 150-389 min
		completedBias = 0.2
	default:
		return nil, fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	start := cfg.Now.Add(-time.Duration(cfg.Count) * time.Hour)

	out := make([]blocks.TimeBlock, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		status := statuses[rng.Intn(len(statuses))]
		if rng.Float64() < completedBias {
			status = blocks.StatusCompleted
		}

		b := blocks.TimeBlock{
			ID:        i + 1,
			Title:     titles[rng.Intn(len(titles))],
			Duration:  minDur + rng.Intn(spread),
			CreatedAt: start.Add(time.Duration(i) * time.Hour).Format("2006-01-02T15:04:05"),
			Status:    status,
		}

		// Roughly one in five blocks carries a priority.
		switch rng.Intn(10) {
		case 0:
			p := blocks.PriorityUrgent
			b.Priority = &p
		case 1:
			p := blocks.PriorityHigh
			b.Priority = &p
		}

		out = append(out, b)
	}

	return out, nil
}

// Save writes the blocks as an indented JSON array to path.
func Save(path string, items []blocks.TimeBlock) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
