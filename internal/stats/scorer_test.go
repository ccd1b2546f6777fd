package stats

import (
	"math"
	"slices"
	"testing"

	"timeblock-stats/internal/blocks"
)

func ptr(s string) *string { return &s }

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateEfficiency(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		status   string
		expected float64
	}{
		{"ZeroActive", 0, "active", 60},
		{"ShortActive", 30, "active", 60},
		{"MediumLowerEdge", 31, "active", 85},
		{"MediumUpperEdge", 90, "active", 85},
		{"LongActive", 180, "active", 95},
		{"VeryLongActive", 300, "active", 80},
		{"HugeActive", 301, "active", 60},
		{"CompletedCapped", 120, "completed", 100},
		{"CompletedShort", 20, "completed", 72},
		{"PlannedMedium", 60, "planned", 68},
		{"UnknownStatus", 60, "paused", 76.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateEfficiency(blocks.TimeBlock{Duration: tt.duration, Status: tt.status})
			if !approx(got, tt.expected) {
				t.Errorf("CalculateEfficiency() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCalculateEfficiency_IgnoresTextFields(t *testing.T) {
	plain := blocks.TimeBlock{Duration: 100, Status: "planned"}
	decorated := blocks.TimeBlock{
		Duration: 100,
		Status:   "planned",
		Title:    "URGENT deep architecture meeting",
		Category: ptr("Anything"),
		Tags:     []string{"x"},
	}
	if CalculateEfficiency(plain) != CalculateEfficiency(decorated) {
		t.Errorf("Efficiency should depend only on duration and status")
	}
}

func TestCalculateEfficiency_Bounds(t *testing.T) {
	for _, status := range []string{"completed", "active", "planned", "", "done"} {
		for _, d := range []int{0, 1, 15, 30, 31, 90, 91, 180, 181, 300, 301, 10000} {
			got := CalculateEfficiency(blocks.TimeBlock{Duration: d, Status: status})
			if got < 0 || got > 100 {
				t.Errorf("Efficiency(%d, %q) = %v out of [0,100]", d, status, got)
			}
		}
	}
}

func TestCalculatePriorityScore(t *testing.T) {
	tests := []struct {
		name     string
		block    blocks.TimeBlock
		expected float64
	}{
		{"ImportantActive", blocks.TimeBlock{Title: "Important release", Duration: 120, Status: "active"}, 40 + 30 + 30},
		{"UrgentBeatsMeeting", blocks.TimeBlock{Title: "Urgent meeting", Duration: 60, Status: "planned"}, 20 + 30 + 20},
		{"CallCompleted", blocks.TimeBlock{Title: "Client CALL", Duration: 30, Status: "completed"}, 10 + 25 + 10},
		{"PlainUnknownStatus", blocks.TimeBlock{Title: "Gardening", Duration: 240, Status: "paused"}, 40 + 20 + 15},
		{"RussianImportant", blocks.TimeBlock{Title: "Срочно отправить отчет", Duration: 0, Status: "active"}, 0 + 30 + 30},
		{"RussianMeeting", blocks.TimeBlock{Title: "Встреча с командой", Duration: 0, Status: "active"}, 0 + 25 + 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculatePriorityScore(tt.block); !approx(got, tt.expected) {
				t.Errorf("CalculatePriorityScore() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSuggestOptimalTime(t *testing.T) {
	tests := []struct {
		duration int
		expected string
	}{
		{0, WindowMorningFocus},
		{60, WindowMorningFocus},
		{61, WindowPeak},
		{120, WindowPeak},
		{121, WindowAfternoon},
		{180, WindowAfternoon},
		{181, WindowMorningBlock},
		{1000, WindowMorningBlock},
	}

	for _, tt := range tests {
		if got := SuggestOptimalTime(blocks.TimeBlock{Duration: tt.duration}); got != tt.expected {
			t.Errorf("SuggestOptimalTime(%d) = %q, want %q", tt.duration, got, tt.expected)
		}
	}
}

func TestDetermineCategory(t *testing.T) {
	tests := []struct {
		name     string
		block    blocks.TimeBlock
		expected string
	}{
		{"ExplicitOverride", blocks.TimeBlock{Title: "Team meeting about code", Category: ptr("Foo")}, "Foo"},
		{"ExplicitEmpty", blocks.TimeBlock{Title: "Team meeting", Category: ptr("")}, ""},
		{"CommunicationBeforeDevelopment", blocks.TimeBlock{Title: "Meeting to review code"}, CategoryCommunication},
		{"Call", blocks.TimeBlock{Title: "Quick call"}, CategoryCommunication},
		{"Development", blocks.TimeBlock{Title: "Refactor the loader"}, CategoryDevelopment},
		{"Learning", blocks.TimeBlock{Title: "Go course, chapter 3"}, CategoryLearning},
		{"Planning", blocks.TimeBlock{Title: "Quarterly roadmap"}, CategoryPlanning},
		{"Testing", blocks.TimeBlock{Title: "Regression TESTS"}, CategoryTesting},
		{"Documentation", blocks.TimeBlock{Title: "Write API docs"}, CategoryDocumentation},
		{"RussianCommunication", blocks.TimeBlock{Title: "ЗВОНОК клиенту"}, CategoryCommunication},
		{"General", blocks.TimeBlock{Title: "Gym"}, CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineCategory(tt.block); got != tt.expected {
				t.Errorf("DetermineCategory() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCalculateFocusRating(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		duration int
		expected float64
	}{
		{"Tiny", "Stretch", 10, 3.0},
		{"Short", "Stretch", 30, 5.0},
		{"Medium", "Stretch", 60, 8.0},
		{"Peak", "Stretch", 120, 9.5},
		{"Long", "Stretch", 150, 9.0},
		{"VeryLong", "Stretch", 400, 7.0},
		{"DeepPeakCapped", "Deep work", 100, 10.0},
		{"ComplexMedium", "Complex migration", 60, 9.0},
		{"RoutineTiny", "Routine email", 5, 2.5},
		{"DeepWinsOverRoutine", "Deep routine", 60, 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateFocusRating(blocks.TimeBlock{Title: tt.title, Duration: tt.duration})
			if !approx(got, tt.expected) {
				t.Errorf("CalculateFocusRating() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCalculateFocusRating_Bounds(t *testing.T) {
	titles := []string{"", "deep complex research", "routine simple email", "deep routine"}
	for _, title := range titles {
		for _, d := range []int{0, 15, 16, 45, 46, 90, 91, 120, 121, 180, 181, 100000} {
			got := CalculateFocusRating(blocks.TimeBlock{Title: title, Duration: d})
			if got < 1.0 || got > 10.0 {
				t.Errorf("FocusRating(%q, %d) = %v out of [1,10]", title, d, got)
			}
		}
	}
}

func TestDetermineEnergyLevel(t *testing.T) {
	tests := []struct {
		duration int
		expected string
	}{
		{0, EnergyLow},
		{30, EnergyLow},
		{31, EnergyMedium},
		{90, EnergyMedium},
		{91, EnergyHigh},
		{180, EnergyHigh},
		{181, EnergyVeryHigh},
	}

	for _, tt := range tests {
		if got := DetermineEnergyLevel(blocks.TimeBlock{Duration: tt.duration}); got != tt.expected {
			t.Errorf("DetermineEnergyLevel(%d) = %q, want %q", tt.duration, got, tt.expected)
		}
	}
}

func TestGenerateBlockSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		block    blocks.TimeBlock
		expected []string
	}{
		{"TooShort", blocks.TimeBlock{Duration: 15, Status: "active"}, []string{SuggestTooShort}},
		{"ShortFocus", blocks.TimeBlock{Duration: 25, Status: "active"}, []string{SuggestShortFocus}},
		{"GapLow", blocks.TimeBlock{Duration: 30, Status: "active"}, []string{}},
		{"DeepWorkEdge", blocks.TimeBlock{Duration: 46, Status: "active"}, []string{SuggestDeepWork}},
		{"GapHigh", blocks.TimeBlock{Duration: 180, Status: "active"}, []string{}},
		{"Split", blocks.TimeBlock{Duration: 181, Status: "active"}, []string{SuggestSplit}},
		{"PlannedUrgent", blocks.TimeBlock{Duration: 60, Status: "planned", Priority: ptr("urgent")},
			[]string{SuggestDeepWork, SuggestStartOnTime, SuggestDoFirst}},
		{"CompletedHigh", blocks.TimeBlock{Duration: 5, Status: "completed", Priority: ptr("high")},
			[]string{SuggestTooShort, SuggestCompleted, SuggestMorningSlot}},
		{"LowPriorityIgnored", blocks.TimeBlock{Duration: 100, Status: "paused", Priority: ptr("low")}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateBlockSuggestions(tt.block)
			if got == nil {
				t.Fatal("Suggestions must not be nil")
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("GenerateBlockSuggestions() = %v, want %v", got, tt.expected)
			}
		})
	}
}
