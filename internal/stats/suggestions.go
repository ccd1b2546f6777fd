package stats

import "timeblock-stats/internal/blocks"

// Optimization messages, one per rule.
const (
	SuggestMergeShortBlocks  = "🔄 Too many short blocks. Try merging similar tasks."
	SuggestLongerBlocks      = "⏰ Increase block length for better concentration (60-90 minutes recommended)."
	SuggestSplitLongBlocks   = "✂️ Split long blocks into shorter ones for better focus."
	SuggestMorePlannedTime   = "📈 Increase total planned time to raise productivity."
	SuggestRealisticPlanning = "✅ Low task completion rate. Plan more realistically."
	SuggestMorningHardTasks  = "🌅 Schedule hard tasks in the morning (9:00-12:00)."
	SuggestAfternoonRoutine  = "🍽️ Use afternoons for routine tasks."
	SuggestKeepGoing         = "🎉 Excellent planning! Keep it up."
	SuggestAddBlocks         = "Add time blocks to analyze."
)

// GenerateOptimizationSuggestions turns aggregate thresholds into advice.
// Rules are evaluated in a fixed order; the completion rate is recomputed
// from items.
func GenerateOptimizationSuggestions(items []blocks.TimeBlock, metrics PerformanceMetrics, policy Policy) []string {
	var suggestions []string

	if metrics.FragmentationIndex > policy.HighFragmentation {
		suggestions = append(suggestions, SuggestMergeShortBlocks)
	}

	if metrics.AverageDuration < policy.ShortAverage {
		suggestions = append(suggestions, SuggestLongerBlocks)
	} else if metrics.AverageDuration > policy.LongAverage {
		suggestions = append(suggestions, SuggestSplitLongBlocks)
	}

	if metrics.TotalDuration < policy.LowTotal {
		suggestions = append(suggestions, SuggestMorePlannedTime)
	}

	if CompletionRate(items) < policy.LowCompletionRate {
		suggestions = append(suggestions, SuggestRealisticPlanning)
	}

	suggestions = append(suggestions, SuggestMorningHardTasks, SuggestAfternoonRoutine)

	if len(suggestions) == 0 {
		suggestions = []string{SuggestKeepGoing}
	}

	return suggestions
}
