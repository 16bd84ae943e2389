package ticket

import "fmt"

// Ticket is a unit of trackable work. Timestamps are Unix milliseconds.
// The ID doubles as the creation timestamp: Repository.Add assigns the
// current wall-clock milliseconds, so two tickets created within the same
// millisecond would collide. Accepted at this scale.
type Ticket struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// Status is the workflow state of a ticket.
type Status string

const (
	// StatusOpen is the default state for newly created tickets
	StatusOpen Status = "open"

	// StatusInProgress marks a ticket somebody is actively working on
	StatusInProgress Status = "in_progress"

	// StatusClosed marks a finished ticket
	StatusClosed Status = "closed"
)

// Priority is the urgency of a ticket. The repository enforces no default;
// callers conventionally supply PriorityMedium.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Stats holds the derived counts for a collection. Tickets with a status
// outside the three recognized values count toward Total only.
type Stats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Closed     int `json:"closed"`
}

// Validate checks if the Status is a valid enum value.
func (s Status) Validate() error {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return nil
	default:
		return fmt.Errorf("unknown status: %q", s)
	}
}

// Validate checks if the Priority is a valid enum value.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("unknown priority: %q", p)
	}
}
