package constants

// TaskStatus represents the state of a work item in the backlog.
// Status values use snake_case for YAML serialization compatibility.
type TaskStatus string

// Task status constants define the valid states a work item can be in.
// These follow the lifecycle:
//
//	Pending → InProgress (claim)
//	InProgress → Done (done), Blocked, Rejected, Cancelled
//	Pending → Rejected, Cancelled
//	Blocked → Pending
const (
	// TaskStatusPending indicates a work item that has not been started.
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusInProgress indicates a work item claimed by an agent
	// and actively being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"

	// TaskStatusDone indicates a work item that has been completed.
	TaskStatusDone TaskStatus = "done"

	// TaskStatusBlocked indicates a work item that cannot proceed until
	// an external condition is resolved.
	TaskStatusBlocked TaskStatus = "blocked"

	// TaskStatusRejected indicates a work item that was explicitly
	// rejected with a reason.
	TaskStatusRejected TaskStatus = "rejected"

	// TaskStatusCancelled indicates a work item that was withdrawn.
	TaskStatusCancelled TaskStatus = "cancelled"
)

// String returns the string representation of the TaskStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone,
		TaskStatusBlocked, TaskStatusRejected, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is an end state.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusDone, TaskStatusRejected, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// ValidTaskStatuses returns all valid status values.
func ValidTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusDone,
		TaskStatusBlocked,
		TaskStatusRejected,
		TaskStatusCancelled,
	}
}

// NormalizeTaskStatus maps status aliases found in on-disk files onto the
// canonical enum. "completed" and "complete" are historical synonyms for
// "done". Normalization happens exactly once, at the data-model boundary;
// resolver and checker code only ever sees canonical values.
func NormalizeTaskStatus(raw string) TaskStatus {
	switch raw {
	case "completed", "complete":
		return TaskStatusDone
	default:
		return TaskStatus(raw)
	}
}

// Complexity represents the effort classification of a work item.
// Higher complexity scales the item's score upward.
type Complexity string

// Complexity constants, ordered low < medium < high < critical.
const (
	ComplexityLow      Complexity = "low"
	ComplexityMedium   Complexity = "medium"
	ComplexityHigh     Complexity = "high"
	ComplexityCritical Complexity = "critical"
)

// String returns the string representation of the Complexity.
func (c Complexity) String() string {
	return string(c)
}

// IsValid checks if the complexity is a valid value.
func (c Complexity) IsValid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh, ComplexityCritical:
		return true
	default:
		return false
	}
}

// DefaultComplexityMultipliers is the default score multiplier table.
// Score(task) = estimate_hours * multiplier[complexity].
func DefaultComplexityMultipliers() map[Complexity]float64 {
	return map[Complexity]float64{
		ComplexityLow:      1,
		ComplexityMedium:   1.25,
		ComplexityHigh:     1.5,
		ComplexityCritical: 2,
	}
}

// Priority represents the urgency of a work item.
// Ranking order is critical < high < medium < low (critical sorts first).
type Priority string

// Priority constants.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the priority is a valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank returns the sort rank of the priority; lower ranks sort first.
// Unknown priorities rank after all known ones.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}
