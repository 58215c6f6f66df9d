// Package queue defines message payloads exchanged over the message broker.
package queue

// TaskCompletedEvent is published when the assigned staff member marks a
// task completed.  It carries enough information for the accounting
// consumer to log a service history entry and accrue the client's used
// hours without querying the task again.  EventID is a UUID used to drop
// redelivered messages exactly once.
type TaskCompletedEvent struct {
    EventID     string  `json:"event_id"`
    TaskID      uint64  `json:"task_id"`
    ClientID    uint64  `json:"client_id"`
    StaffID     uint64  `json:"staff_id"`
    Title       string  `json:"title"`
    Description string  `json:"description"`
    HoursActual float64 `json:"hours_actual"`
    CompletedAt string  `json:"completed_at"`
}
