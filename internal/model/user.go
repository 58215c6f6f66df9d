package model

import "time"

// Role names stored in the users.role column and in the JWT "role" claim.
// Clients sign up themselves, staff logins are provisioned by admins, and
// admin accounts are seeded out-of-band.
const (
    RoleClient = "CLIENT"
    RoleStaff  = "STAFF"
    RoleAdmin  = "ADMIN"
)

// User represents a login record as stored in the `users` table.  Each field
// corresponds to a column in the database.  The json tags are omitted here
// because these structs are primarily used internally by the repository
// layer; handlers define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – primary role name (CLIENT, STAFF or ADMIN).
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    IsActive     bool      // users.is_active
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

