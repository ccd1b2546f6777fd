package stats

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// step maps every duration up to and including upTo onto value.
// Tables are scanned in order; the last row must use math.MaxInt.
type step[T any] struct {
	upTo  int
	value T
}

func lookup[T any](table []step[T], minutes int) T {
	for _, s := range table {
		if minutes <= s.upTo {
			return s.value
		}
	}
	return table[len(table)-1].value
}

var baseEfficiencyTable = []step[float64]{
	{30, 60},
	{90, 85},
	{180, 95},
	{300, 80},
	{math.MaxInt, 60},
}

// Optimal time windows. The text is advisory only.
const (
	WindowMorningFocus = "09:00-10:00 (morning focus)"
	WindowPeak         = "10:00-12:00 (peak productivity)"
	WindowAfternoon    = "14:00-17:00 (afternoon work)"
	WindowMorningBlock = "09:00-12:00 (morning block)"
)

var optimalTimeTable = []step[string]{
	{60, WindowMorningFocus},
	{120, WindowPeak},
	{180, WindowAfternoon},
	{math.MaxInt, WindowMorningBlock},
}

var focusBaseTable = []step[float64]{
	{15, 3.0},
	{45, 5.0},
	{90, 8.0},
	{120, 9.5},
	{180, 9.0},
	{math.MaxInt, 7.0},
}

// Energy levels.
const (
	EnergyLow      = "Low"
	EnergyMedium   = "Medium"
	EnergyHigh     = "High"
	EnergyVeryHigh = "Very high"
)

var energyTable = []step[string]{
	{30, EnergyLow},
	{90, EnergyMedium},
	{180, EnergyHigh},
	{math.MaxInt, EnergyVeryHigh},
}

// Efficiency bands, keyed on truncated efficiency.
const (
	BandLow       = "low"
	BandMedium    = "medium"
	BandHigh      = "high"
	BandExcellent = "excellent"
)

var efficiencyBandTable = []step[string]{
	{60, BandLow},
	{80, BandMedium},
	{95, BandHigh},
	{math.MaxInt, BandExcellent},
}

// Categories resolved from titles.
const (
	CategoryCommunication = "Communication"
	CategoryDevelopment   = "Development"
	CategoryLearning      = "Learning"
	CategoryPlanning      = "Planning"
	CategoryTesting       = "Testing"
	CategoryDocumentation = "Documentation"
	CategoryGeneral       = "General tasks"
)

// keywordRule yields label when the folded text contains any keyword.
type keywordRule[T any] struct {
	keywords []string
	label    T
}

// Keywords are stored folded. Russian stems match titles from the original
// desktop planner.
var categoryRules = []keywordRule[string]{
	{[]string{"meeting", "call", "sync", "standup", "interview", "встреч", "звон", "созвон"}, CategoryCommunication},
	{[]string{"develop", "code", "coding", "program", "implement", "refactor", "bug", "fix", "разработ", "код", "программ"}, CategoryDevelopment},
	{[]string{"learn", "study", "course", "tutorial", "read", "обуч", "изуч", "курс"}, CategoryLearning},
	{[]string{"plan", "roadmap", "strategy", "schedule", "планир", "план"}, CategoryPlanning},
	{[]string{"test", "verify", "review", "тест", "провер"}, CategoryTesting},
	{[]string{"doc", "write", "report", "readme", "документ", "отчет", "отчёт"}, CategoryDocumentation},
}

var titleScoreRules = []keywordRule[float64]{
	{[]string{"important", "urgent", "critical", "важн", "срочн"}, 30},
	{[]string{"meeting", "call", "встреча", "звонок"}, 25},
}

const defaultTitleScore = 20.0

var focusAdjustmentRules = []keywordRule[float64]{
	{[]string{"deep", "complex", "architecture", "research", "analysis", "сложн", "исследов", "анализ"}, 1.0},
	{[]string{"routine", "simple", "email", "admin", "рутин", "прост", "почт"}, -0.5},
}

// matchFirst returns the label of the first rule with a keyword contained in
// text, folding case on both sides.
func matchFirst[T any](rules []keywordRule[T], text string, fallback T) T {
	folded := cases.Fold().String(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.label
			}
		}
	}
	return fallback
}

// Policy holds the aggregation thresholds. The fragmentation threshold
// follows the later 45-minute revision; the earlier 60-minute variant is
// not supported.
type Policy struct {
	FragmentationThreshold int // blocks shorter than this are fragments
	FocusThreshold         int // blocks at least this long count as focus time

	BurnoutHighTotal         int
	BurnoutHighFragmentation float64
	BurnoutMediumTotal       int

	HighFragmentation float64
	ShortAverage      float64
	LongAverage       float64
	LowTotal          int
	LowCompletionRate float64
}

// DefaultPolicy returns the canonical threshold set.
func DefaultPolicy() Policy {
	return Policy{
		FragmentationThreshold:   45,
		FocusThreshold:           45,
		BurnoutHighTotal:         600,
		BurnoutHighFragmentation: 60,
		BurnoutMediumTotal:       400,
		HighFragmentation:        50,
		ShortAverage:             45,
		LongAverage:              180,
		LowTotal:                 240,
		LowCompletionRate:        70,
	}
}
