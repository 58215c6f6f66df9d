package model

import "time"

// Task statuses.  The lifecycle moves strictly forward:
// pending -> in_progress -> completed.  There is no cancelled or rejected
// state, and no transition backward.
const (
    TaskPending    = "pending"
    TaskInProgress = "in_progress"
    TaskCompleted  = "completed"
)

// Task priorities accepted on submission.
const (
    PriorityLow    = "low"
    PriorityMedium = "medium"
    PriorityHigh   = "high"
    PriorityUrgent = "urgent"
)

// Task is a unit of work requested by a client.  AssignedStaffID stays null
// until an admin pairs the task with a staff member; only that staff member
// may advance the status.
type Task struct {
    ID              uint64     // tasks.id
    ClientID        uint64     // tasks.client_id (owner)
    Title           string     // tasks.title
    Description     string     // tasks.description (category folded in as "[Category] " prefix)
    Priority        string     // tasks.priority
    Status          string     // tasks.status
    DueDate         *time.Time // tasks.due_date (nullable)
    HoursEstimated  *float64   // tasks.hours_estimated (nullable)
    HoursActual     *float64   // tasks.hours_actual (nullable)
    AssignedStaffID *uint64    // tasks.assigned_staff_id (nullable FK -> staff.id)
    CreatedAt       time.Time  // tasks.created_at
    UpdatedAt       time.Time  // tasks.updated_at
}

// ValidPriority reports whether p is one of the accepted task priorities.
func ValidPriority(p string) bool {
    switch p {
    case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
        return true
    }
    return false
}

// ValidTaskTransition reports whether a task may move from one status to
// another.  Transitions are monotonic: a completed task never reopens and
// a pending task cannot skip straight to completed.
func ValidTaskTransition(from, to string) bool {
    switch from {
    case TaskPending:
        return to == TaskInProgress
    case TaskInProgress:
        return to == TaskCompleted
    }
    return false
}
