package model

import "time"

// ServiceHistoryEntry is a logged unit of completed service shown to the
// client.  Rows are written by the task completion consumer and are
// read-only to clients.
type ServiceHistoryEntry struct {
    ID          uint64    // service_history.id
    UserID      uint64    // service_history.user_id
    ServiceName string    // service_history.service_name
    Description *string   // service_history.description (nullable)
    HoursUsed   float64   // service_history.hours_used
    Date        time.Time // service_history.date
    Status      string    // service_history.status
    CreatedAt   time.Time // service_history.created_at
}
