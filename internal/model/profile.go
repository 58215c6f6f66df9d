package model

import "time"

// Profile is the client-facing record mirroring a CLIENT user.  It is
// created during signup in the same transaction as the users row and is
// never hard-deleted.  AvatarURL points at the publicly served avatar
// image and is rewritten on every upload.
type Profile struct {
    ID        uint64    // profiles.id (= users.id of the owning client)
    FullName  string    // profiles.full_name
    Email     string    // profiles.email
    Phone     *string   // profiles.phone (nullable)
    AvatarURL *string   // profiles.avatar_url (nullable)
    CreatedAt time.Time // profiles.created_at
    UpdatedAt time.Time // profiles.updated_at
}
