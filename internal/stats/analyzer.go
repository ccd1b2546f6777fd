package stats

import (
	"time"

	"timeblock-stats/internal/blocks"

	"github.com/rs/zerolog/log"
)

// ProcessorName identifies this engine in every report.
const ProcessorName = "go"

// ProcessedBlock is an input block enriched with its per-block scores.
type ProcessedBlock struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Duration  int      `json:"duration"`
	CreatedAt string   `json:"created_at"`
	Status    string   `json:"status"`
	Priority  *string  `json:"priority,omitempty"`
	Tags      []string `json:"tags,omitempty"`

	Efficiency             float64  `json:"efficiency"`
	PriorityScore          float64  `json:"priority_score"`
	OptimalTime            string   `json:"optimal_time"`
	ProcessedAt            string   `json:"processed_at"`
	Category               string   `json:"category"`
	FocusRating            float64  `json:"focus_rating"`
	EnergyLevel            string   `json:"energy_level"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// Report is the complete output of one run.
type Report struct {
	ProcessedBlocks         []ProcessedBlock   `json:"processed_blocks"`
	TotalEfficiency         float64            `json:"total_efficiency"`
	OptimizationSuggestions []string           `json:"optimization_suggestions"`
	PerformanceMetrics      PerformanceMetrics `json:"performance_metrics"`
	Processor               string             `json:"processor"`
}

// Analyzer runs the scoring and aggregation pipeline. It holds no state
// between calls.
type Analyzer struct {
	Policy Policy
	Now    func() time.Time
}

// NewAnalyzer creates an Analyzer with the default policy and wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Policy: DefaultPolicy(),
		Now:    time.Now,
	}
}

// ProcessBlock scores a single block.
func (a *Analyzer) ProcessBlock(b blocks.TimeBlock) ProcessedBlock {
	return ProcessedBlock{
		ID:                     b.ID,
		Title:                  b.Title,
		Duration:               b.Duration,
		CreatedAt:              b.CreatedAt,
		Status:                 b.Status,
		Priority:               b.Priority,
		Tags:                   b.Tags,
		Efficiency:             CalculateEfficiency(b),
		PriorityScore:          CalculatePriorityScore(b),
		OptimalTime:            SuggestOptimalTime(b),
		ProcessedAt:            a.Now().UTC().Format(time.RFC3339Nano),
		Category:               DetermineCategory(b),
		FocusRating:            CalculateFocusRating(b),
		EnergyLevel:            DetermineEnergyLevel(b),
		ImprovementSuggestions: GenerateBlockSuggestions(b),
	}
}

// Analyze scores every block in input order, aggregates the metrics and
// derives the optimization suggestions.
func (a *Analyzer) Analyze(items []blocks.TimeBlock) Report {
	if len(items) == 0 {
		log.Debug().Msg("No time blocks to analyze")
		return Report{
			ProcessedBlocks:         []ProcessedBlock{},
			OptimizationSuggestions: []string{SuggestAddBlocks},
			PerformanceMetrics:      EmptyMetrics(),
			Processor:               ProcessorName,
		}
	}

	processed := make([]ProcessedBlock, 0, len(items))
	var efficiencySum float64
	for _, b := range items {
		pb := a.ProcessBlock(b)
		efficiencySum += pb.Efficiency
		processed = append(processed, pb)
	}

	metrics := GeneratePerformanceMetrics(items, a.Policy)
	suggestions := GenerateOptimizationSuggestions(items, metrics, a.Policy)

	log.Debug().
		Int("blocks", len(items)).
		Int("totalDuration", metrics.TotalDuration).
		Float64("fragmentation", metrics.FragmentationIndex).
		Str("burnoutRisk", metrics.BurnoutRisk).
		Msg("Time blocks analyzed")

	return Report{
		ProcessedBlocks:         processed,
		TotalEfficiency:         efficiencySum / float64(len(items)),
		OptimizationSuggestions: suggestions,
		PerformanceMetrics:      metrics,
		Processor:               ProcessorName,
	}
}
