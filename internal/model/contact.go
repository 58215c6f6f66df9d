package model

import "time"

// ContactSubmission is an inbound lead from the public contact or
// consultation form.  Rows are inserted anonymously, read by admins and
// never mutated.  Consultation requests share the table with their message
// prefixed "[Consultation Request] ".
type ContactSubmission struct {
    ID        uint64    // contact_submissions.id
    Name      string    // contact_submissions.name
    Email     string    // contact_submissions.email
    Phone     *string   // contact_submissions.phone (nullable)
    Message   string    // contact_submissions.message
    CreatedAt time.Time // contact_submissions.created_at
}
