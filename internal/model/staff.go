package model

import "time"

// Staff roles / seniority levels.
const (
    StaffRoleVA       = "VA"
    StaffRoleSeniorVA = "Senior VA"
    StaffRoleTeamLead = "Team Lead"
    StaffRoleManager  = "Manager"
)

// Staff availability statuses.
const (
    StaffAvailable = "available"
    StaffBusy      = "busy"
    StaffOffline   = "offline"
)

// StaffMember is an agency employee.  Provisioning binds UserID to the
// login created in the same transaction; a row that still carries null
// (imported out of band) is backfilled exactly once on the member's first
// successful sign-in.  Staff rows are created and hard deleted only by
// admins.
type StaffMember struct {
    ID             uint64    // staff.id
    UserID         *uint64   // staff.user_id (nullable FK -> users.id)
    FullName       string    // staff.full_name
    Email          string    // staff.email (unique)
    Phone          *string   // staff.phone (nullable)
    Role           string    // staff.role (VA/Senior VA/Team Lead/Manager)
    Specialization *string   // staff.specialization (nullable)
    Status         string    // staff.status (available/busy/offline)
    HourlyRate     float64   // staff.hourly_rate
    CreatedAt      time.Time // staff.created_at
    UpdatedAt      time.Time // staff.updated_at
}

// ValidStaffRole reports whether r is an accepted staff role.
func ValidStaffRole(r string) bool {
    switch r {
    case StaffRoleVA, StaffRoleSeniorVA, StaffRoleTeamLead, StaffRoleManager:
        return true
    }
    return false
}

// ValidStaffStatus reports whether s is an accepted availability status.
func ValidStaffStatus(s string) bool {
    switch s {
    case StaffAvailable, StaffBusy, StaffOffline:
        return true
    }
    return false
}
