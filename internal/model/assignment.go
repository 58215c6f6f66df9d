package model

import "time"

// Assignment statuses.  An assignment is either active or ended; ending it
// is the only mutation after creation.
const (
    AssignmentActive = "active"
    AssignmentEnded  = "ended"
)

// StaffAssignment is a durable client↔staff pairing, independent of any
// single task.  Created by an admin; set to ended to terminate the pairing.
type StaffAssignment struct {
    ID         uint64    // staff_assignments.id
    StaffID    uint64    // staff_assignments.staff_id
    ClientID   uint64    // staff_assignments.client_id
    Status     string    // staff_assignments.status
    Notes      *string   // staff_assignments.notes (nullable)
    AssignedAt time.Time // staff_assignments.assigned_at
}
