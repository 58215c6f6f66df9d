package handler

import (
    "database/sql" // transactions for staff provisioning
    "net/http"     // HTTP status codes
    "strconv"      // path param parsing

    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/config"
    "github.com/elevateassist/va-agency-portal/internal/repository"
)

// AdminHandler serves the admin back office: the overview dashboard,
// client and staff management, assignments and the contact inbox.  Routes
// using it are mounted behind both the ADMIN claim check and a live
// user_roles grant check.
type AdminHandler struct {
    Cfg           config.Config
    DB            *sql.DB
    Users         *repository.UserRepo
    Profiles      *repository.ProfileRepo
    Subscriptions *repository.SubscriptionRepo
    Tasks         *repository.TaskRepo
    Staff         *repository.StaffRepo
    Assignments   *repository.AssignmentRepo
    Contacts      *repository.ContactRepo
}

// NewAdminHandler wires the handler with its dependencies.
func NewAdminHandler(cfg config.Config, db *sql.DB, u *repository.UserRepo, p *repository.ProfileRepo, s *repository.SubscriptionRepo, t *repository.TaskRepo, st *repository.StaffRepo, a *repository.AssignmentRepo, ct *repository.ContactRepo) *AdminHandler {
    return &AdminHandler{Cfg: cfg, DB: db, Users: u, Profiles: p, Subscriptions: s, Tasks: t, Staff: st, Assignments: a, Contacts: ct}
}

// pathID parses the ":id" route param; on failure it writes the 400 and
// reports false.
func pathID(c echo.Context) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        _ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
        return 0, false
    }
    return id, true
}
