// Package repository defines error values shared across repositories.
// These sentinels let handlers distinguish failure scenarios without
// inspecting driver errors.
package repository

import "errors"

// ErrConflict is returned when a delete or update cannot be
// performed because of conflicting state, such as attempting to
// delete a staff member with active assignments or to end an
// assignment that has already ended. Handlers translate this
// into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
