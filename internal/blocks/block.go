package blocks

// Recognized status values. Any other status is accepted and scored through
// the "unrecognized" branch of each heuristic.
const (
	StatusCompleted = "completed"
	StatusActive    = "active"
	StatusPlanned   = "planned"
)

// Recognized priority values.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
)

// MaxDuration is the longest accepted block in minutes (one week).
const MaxDuration = 7 * 24 * 60

// TimeBlock is a single user-scheduled work interval as read from input.
type TimeBlock struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Duration  int      `json:"duration"`   // minutes
	CreatedAt string   `json:"created_at"` // passed through verbatim
	Status    string   `json:"status"`
	Priority  *string  `json:"priority,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"` // carried, never scored
}

// PriorityValue returns the priority or "" when absent.
func (b TimeBlock) PriorityValue() string {
	if b.Priority == nil {
		return ""
	}
	return *b.Priority
}

// IsCompleted reports whether the block has the completed status.
func (b TimeBlock) IsCompleted() bool {
	return b.Status == StatusCompleted
}
