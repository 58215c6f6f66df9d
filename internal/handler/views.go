package handler

import (
    "time" // timestamps in JSON views

    "github.com/elevateassist/va-agency-portal/internal/model"
    "github.com/elevateassist/va-agency-portal/internal/plan"
)

// JSON views returned by the handlers.  Kept separate from the model
// structs so DB-only fields (password hashes, raw nullables) never leak
// onto the wire.

type profileResp struct {
    ID        uint64    `json:"id"`
    FullName  string    `json:"full_name"`
    Email     string    `json:"email"`
    Phone     *string   `json:"phone"`
    AvatarURL *string   `json:"avatar_url"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

func profileView(p model.Profile) profileResp {
    return profileResp{
        ID:        p.ID,
        FullName:  p.FullName,
        Email:     p.Email,
        Phone:     p.Phone,
        AvatarURL: p.AvatarURL,
        CreatedAt: p.CreatedAt,
        UpdatedAt: p.UpdatedAt,
    }
}

type subscriptionResp struct {
    ID              uint64     `json:"id"`
    Plan            string     `json:"plan"`
    Status          string     `json:"status"`
    Price           float64    `json:"price"`
    HoursIncluded   float64    `json:"hours_included"`
    HoursUsed       float64    `json:"hours_used"`
    HoursRemaining  float64    `json:"hours_remaining"`
    UsagePercent    float64    `json:"usage_percent"`
    BillingCycle    string     `json:"billing_cycle"`
    NextBillingDate *time.Time `json:"next_billing_date"`
}

func subscriptionView(s model.Subscription) subscriptionResp {
    sum := plan.Summarize(&s)
    return subscriptionResp{
        ID:              s.ID,
        Plan:            s.Plan,
        Status:          s.Status,
        Price:           s.Price,
        HoursIncluded:   s.HoursIncluded,
        HoursUsed:       s.HoursUsed,
        HoursRemaining:  sum.HoursRemaining,
        UsagePercent:    sum.UsagePercent,
        BillingCycle:    s.BillingCycle,
        NextBillingDate: s.NextBillingDate,
    }
}

type taskResp struct {
    ID              uint64     `json:"id"`
    ClientID        uint64     `json:"client_id"`
    Title           string     `json:"title"`
    Description     string     `json:"description"`
    Priority        string     `json:"priority"`
    Status          string     `json:"status"`
    DueDate         *time.Time `json:"due_date"`
    HoursEstimated  *float64   `json:"hours_estimated"`
    HoursActual     *float64   `json:"hours_actual"`
    AssignedStaffID *uint64    `json:"assigned_staff_id"`
    CreatedAt       time.Time  `json:"created_at"`
    UpdatedAt       time.Time  `json:"updated_at"`
}

func taskView(t model.Task) taskResp {
    return taskResp{
        ID:              t.ID,
        ClientID:        t.ClientID,
        Title:           t.Title,
        Description:     t.Description,
        Priority:        t.Priority,
        Status:          t.Status,
        DueDate:         t.DueDate,
        HoursEstimated:  t.HoursEstimated,
        HoursActual:     t.HoursActual,
        AssignedStaffID: t.AssignedStaffID,
        CreatedAt:       t.CreatedAt,
        UpdatedAt:       t.UpdatedAt,
    }
}

func taskViews(ts []model.Task) []taskResp {
    out := make([]taskResp, 0, len(ts))
    for _, t := range ts {
        out = append(out, taskView(t))
    }
    return out
}

type staffResp struct {
    ID             uint64    `json:"id"`
    UserID         *uint64   `json:"user_id"`
    FullName       string    `json:"full_name"`
    Email          string    `json:"email"`
    Phone          *string   `json:"phone"`
    Role           string    `json:"role"`
    Specialization *string   `json:"specialization"`
    Status         string    `json:"status"`
    HourlyRate     float64   `json:"hourly_rate"`
    CreatedAt      time.Time `json:"created_at"`
}

func staffView(m model.StaffMember) staffResp {
    return staffResp{
        ID:             m.ID,
        UserID:         m.UserID,
        FullName:       m.FullName,
        Email:          m.Email,
        Phone:          m.Phone,
        Role:           m.Role,
        Specialization: m.Specialization,
        Status:         m.Status,
        HourlyRate:     m.HourlyRate,
        CreatedAt:      m.CreatedAt,
    }
}

func staffViews(ms []model.StaffMember) []staffResp {
    out := make([]staffResp, 0, len(ms))
    for _, m := range ms {
        out = append(out, staffView(m))
    }
    return out
}

type assignmentResp struct {
    ID         uint64    `json:"id"`
    StaffID    uint64    `json:"staff_id"`
    ClientID   uint64    `json:"client_id"`
    Status     string    `json:"status"`
    Notes      *string   `json:"notes"`
    AssignedAt time.Time `json:"assigned_at"`
}

func assignmentView(a model.StaffAssignment) assignmentResp {
    return assignmentResp{
        ID:         a.ID,
        StaffID:    a.StaffID,
        ClientID:   a.ClientID,
        Status:     a.Status,
        Notes:      a.Notes,
        AssignedAt: a.AssignedAt,
    }
}

func assignmentViews(as []model.StaffAssignment) []assignmentResp {
    out := make([]assignmentResp, 0, len(as))
    for _, a := range as {
        out = append(out, assignmentView(a))
    }
    return out
}

type historyResp struct {
    ID          uint64    `json:"id"`
    ServiceName string    `json:"service_name"`
    Description *string   `json:"description"`
    HoursUsed   float64   `json:"hours_used"`
    Date        time.Time `json:"date"`
    Status      string    `json:"status"`
}

func historyViews(es []model.ServiceHistoryEntry) []historyResp {
    out := make([]historyResp, 0, len(es))
    for _, e := range es {
        out = append(out, historyResp{
            ID:          e.ID,
            ServiceName: e.ServiceName,
            Description: e.Description,
            HoursUsed:   e.HoursUsed,
            Date:        e.Date,
            Status:      e.Status,
        })
    }
    return out
}
