package stats

import (
	"math"

	"timeblock-stats/internal/blocks"
)

// Burnout risk levels.
const (
	BurnoutLow    = "Low"
	BurnoutMedium = "Medium"
	BurnoutHigh   = "High"
)

// PerformanceMetrics aggregates all blocks of a run.
type PerformanceMetrics struct {
	TotalDuration          int                      `json:"total_duration"`
	AverageDuration        float64                  `json:"average_duration"`
	EfficiencyDistribution map[string]int           `json:"efficiency_distribution"`
	PeakProductivityHours  []int                    `json:"peak_productivity_hours"`
	FragmentationIndex     float64                  `json:"fragmentation_index"` // % of blocks below the fragmentation threshold
	ProductivityScore      float64                  `json:"productivity_score"`
	FocusTimePercentage    float64                  `json:"focus_time_percentage"`
	CategoryBreakdown      map[string]CategoryStats `json:"category_breakdown"`
	WeeklyTrend            []DaySummary             `json:"weekly_trend"`
	BurnoutRisk            string                   `json:"burnout_risk"`
}

// CategoryStats is the rollup for one resolved category.
type CategoryStats struct {
	TotalTime      int     `json:"total_time"`
	Efficiency     float64 `json:"efficiency"`      // mean
	CompletionRate float64 `json:"completion_rate"` // % completed
	Count          int     `json:"count"`
}

// DaySummary is one entry of the weekly trend.
type DaySummary struct {
	Day        string  `json:"day"`
	TotalTime  float64 `json:"total_time"`
	Efficiency float64 `json:"efficiency"`
}

// peakProductivityHours is a fixed placeholder, not derived from input.
var peakProductivityHours = []int{9, 10, 11, 14, 15}

// weeklyTrendShape spreads the weekly total uniformly and skews it with
// static multipliers. There is no per-day grouping of blocks.
var weeklyTrendShape = []struct {
	day        string
	time       float64
	efficiency float64
}{
	{"Monday", 1.2, 0.95},
	{"Wednesday", 1.0, 1.0},
	{"Friday", 0.8, 0.9},
}

// EmptyMetrics returns the zeroed metrics reported for an empty input.
func EmptyMetrics() PerformanceMetrics {
	return PerformanceMetrics{
		EfficiencyDistribution: map[string]int{},
		PeakProductivityHours:  []int{},
		CategoryBreakdown:      map[string]CategoryStats{},
		WeeklyTrend:            []DaySummary{},
		BurnoutRisk:            BurnoutLow,
	}
}

// GeneratePerformanceMetrics rolls every block up into fleet-level metrics.
func GeneratePerformanceMetrics(items []blocks.TimeBlock, policy Policy) PerformanceMetrics {
	if len(items) == 0 {
		return EmptyMetrics()
	}

	m := EmptyMetrics()
	n := float64(len(items))

	type categoryAcc struct {
		total      int
		efficiency float64
		completed  int
		count      int
	}
	categories := make(map[string]*categoryAcc)

	var efficiencySum float64
	fragments, focused := 0, 0

	for _, b := range items {
		efficiency := CalculateEfficiency(b)
		efficiencySum += efficiency
		m.TotalDuration += b.Duration
		m.EfficiencyDistribution[lookup(efficiencyBandTable, int(efficiency))]++

		if b.Duration < policy.FragmentationThreshold {
			fragments++
		}
		if b.Duration >= policy.FocusThreshold {
			focused++
		}

		category := DetermineCategory(b)
		acc, ok := categories[category]
		if !ok {
			acc = &categoryAcc{}
			categories[category] = acc
		}
		acc.total += b.Duration
		acc.efficiency += efficiency
		acc.count++
		if b.IsCompleted() {
			acc.completed++
		}
	}

	m.AverageDuration = float64(m.TotalDuration) / n
	m.PeakProductivityHours = append(m.PeakProductivityHours, peakProductivityHours...)
	m.FragmentationIndex = float64(fragments) / n * 100
	m.ProductivityScore = efficiencySum / n
	m.FocusTimePercentage = float64(focused) / n * 100

	for name, acc := range categories {
		m.CategoryBreakdown[name] = CategoryStats{
			TotalTime:      acc.total,
			Efficiency:     acc.efficiency / float64(acc.count),
			CompletionRate: float64(acc.completed) / float64(acc.count) * 100,
			Count:          acc.count,
		}
	}

	m.WeeklyTrend = weeklyTrend(m.TotalDuration, m.ProductivityScore)
	m.BurnoutRisk = classifyBurnout(m.TotalDuration, m.FragmentationIndex, policy)

	return m
}

func weeklyTrend(totalDuration int, productivity float64) []DaySummary {
	daily := float64(totalDuration) / 7
	trend := make([]DaySummary, 0, len(weeklyTrendShape))
	for _, s := range weeklyTrendShape {
		trend = append(trend, DaySummary{
			Day:        s.day,
			TotalTime:  math.Round(daily*s.time*10) / 10,
			Efficiency: math.Round(math.Min(productivity*s.efficiency, 100)*10) / 10,
		})
	}
	return trend
}

func classifyBurnout(totalDuration int, fragmentation float64, policy Policy) string {
	switch {
	case totalDuration > policy.BurnoutHighTotal && fragmentation > policy.BurnoutHighFragmentation:
		return BurnoutHigh
	case totalDuration > policy.BurnoutMediumTotal:
		return BurnoutMedium
	default:
		return BurnoutLow
	}
}

// CompletionRate returns the percentage of blocks with the completed status.
func CompletionRate(items []blocks.TimeBlock) float64 {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, b := range items {
		if b.IsCompleted() {
			completed++
		}
	}
	return float64(completed) / float64(len(items)) * 100
}
