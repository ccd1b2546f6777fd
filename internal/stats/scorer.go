package stats

import (
	"math"

	"timeblock-stats/internal/blocks"
)

// recencyFactor stands in for a creation-time bonus that was never
// implemented; created_at is not parsed.
const recencyFactor = 1.0

// Per-block improvement messages.
const (
	SuggestTooShort    = "⚠️ Block is too short for productive work. Extend it to at least 25 minutes."
	SuggestShortFocus  = "🍅 Good length for a short focus session (Pomodoro)."
	SuggestDeepWork    = "🎯 Ideal length for deep work."
	SuggestSplit       = "✂️ Consider splitting this block into several shorter ones with breaks."
	SuggestStartOnTime = "⏰ Remember to start on time."
	SuggestCompleted   = "🎉 Great job finishing this block!"
	SuggestDoFirst     = "🔥 Urgent task: do it first."
	SuggestMorningSlot = "🌅 High priority: schedule it for the morning."
)

var statusMultipliers = map[string]float64{
	blocks.StatusCompleted: 1.2,
	blocks.StatusActive:    1.0,
	blocks.StatusPlanned:   0.8,
}

const unrecognizedStatusMultiplier = 0.9

var statusPriorityScores = map[string]float64{
	blocks.StatusActive:    30,
	blocks.StatusPlanned:   20,
	blocks.StatusCompleted: 10,
}

const unrecognizedStatusPriorityScore = 15.0

// CalculateEfficiency scores a block 0-100 from its duration bucket and status.
func CalculateEfficiency(b blocks.TimeBlock) float64 {
	base := lookup(baseEfficiencyTable, b.Duration)

	multiplier, ok := statusMultipliers[b.Status]
	if !ok {
		multiplier = unrecognizedStatusMultiplier
	}

	return math.Min(base*multiplier*recencyFactor, 100)
}

// CalculatePriorityScore sums duration, title and status components.
func CalculatePriorityScore(b blocks.TimeBlock) float64 {
	durationScore := math.Min(float64(b.Duration)/120.0, 1.0) * 40

	titleScore := matchFirst(titleScoreRules, b.Title, defaultTitleScore)

	statusScore, ok := statusPriorityScores[b.Status]
	if !ok {
		statusScore = unrecognizedStatusPriorityScore
	}

	return durationScore + titleScore + statusScore
}

// SuggestOptimalTime returns the advisory time window for the block's length.
func SuggestOptimalTime(b blocks.TimeBlock) string {
	return lookup(optimalTimeTable, b.Duration)
}

// DetermineCategory returns the explicit category verbatim, otherwise the
// first category whose keywords occur in the title.
func DetermineCategory(b blocks.TimeBlock) string {
	if b.Category != nil {
		return *b.Category
	}
	return matchFirst(categoryRules, b.Title, CategoryGeneral)
}

// CalculateFocusRating estimates concentration potential on a 1-10 scale.
func CalculateFocusRating(b blocks.TimeBlock) float64 {
	rating := lookup(focusBaseTable, b.Duration) + matchFirst(focusAdjustmentRules, b.Title, 0.0)
	return math.Max(1.0, math.Min(rating, 10.0))
}

// DetermineEnergyLevel labels the energy a block of this length demands.
func DetermineEnergyLevel(b blocks.TimeBlock) string {
	return lookup(energyTable, b.Duration)
}

// GenerateBlockSuggestions returns advisory messages for a single block.
// The result is never nil.
func GenerateBlockSuggestions(b blocks.TimeBlock) []string {
	suggestions := []string{}

	// 26-45 and 91-180 intentionally produce nothing.
	switch d := b.Duration; {
	case d <= 15:
		suggestions = append(suggestions, SuggestTooShort)
	case d <= 25:
		suggestions = append(suggestions, SuggestShortFocus)
	case d >= 46 && d <= 90:
		suggestions = append(suggestions, SuggestDeepWork)
	case d > 180:
		suggestions = append(suggestions, SuggestSplit)
	}

	switch b.Status {
	case blocks.StatusPlanned:
		suggestions = append(suggestions, SuggestStartOnTime)
	case blocks.StatusCompleted:
		suggestions = append(suggestions, SuggestCompleted)
	}

	switch b.PriorityValue() {
	case blocks.PriorityUrgent:
		suggestions = append(suggestions, SuggestDoFirst)
	case blocks.PriorityHigh:
		suggestions = append(suggestions, SuggestMorningSlot)
	}

	return suggestions
}
