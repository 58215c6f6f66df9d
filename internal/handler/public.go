package handler

import (
    "context"  // context with cancellation for DB calls
    "net/http" // HTTP status codes
    "strings"  // input normalization
    "time"     // timeouts

    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/model"
    "github.com/elevateassist/va-agency-portal/internal/plan"
    "github.com/elevateassist/va-agency-portal/internal/repository"
    "github.com/elevateassist/va-agency-portal/internal/validate"
)

// PublicHandler serves the marketing site surface: the plan catalog and
// the contact/consultation intake forms.  No authentication is involved;
// abuse is kept in check by the rate limit middleware, and the catalog is
// served through the response cache.
type PublicHandler struct {
    Contacts *repository.ContactRepo
}

// NewPublicHandler wires the handler with its dependencies.
func NewPublicHandler(ct *repository.ContactRepo) *PublicHandler {
    return &PublicHandler{Contacts: ct}
}

// Plans returns the public plan catalog.
func (h *PublicHandler) Plans(c echo.Context) error {
    type planResp struct {
        Name          string  `json:"name"`
        Price         float64 `json:"price"`
        HoursIncluded float64 `json:"hours_included"`
        BillingCycle  string  `json:"billing_cycle"`
    }
    out := make([]planResp, 0, len(plan.Catalog))
    for _, p := range plan.Catalog {
        out = append(out, planResp{
            Name:          p.Name,
            Price:         p.Price,
            HoursIncluded: p.HoursIncluded,
            BillingCycle:  p.BillingCycle,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"plans": out})
}

type contactReq struct {
    Name    string  `json:"name" validate:"required,max=100"`
    Email   string  `json:"email" validate:"required,email,max=255"`
    Phone   *string `json:"phone" validate:"omitempty,max=20"`
    Message string  `json:"message" validate:"required,max=1000"`
}

// Contact stores a general contact form submission.
func (h *PublicHandler) Contact(c echo.Context) error {
    var req contactReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    req.Message = strings.TrimSpace(req.Message)
    if fields := validate.Struct(req); fields != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
    }

    sub := model.ContactSubmission{
        Name:    req.Name,
        Email:   req.Email,
        Phone:   req.Phone,
        Message: req.Message,
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Contacts.Create(ctx, &sub); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit failed"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": sub.ID})
}

type consultationReq struct {
    Name    string  `json:"name" validate:"required,max=100"`
    Email   string  `json:"email" validate:"required,email,max=255"`
    Phone   *string `json:"phone" validate:"omitempty,max=20"`
    Service string  `json:"service" validate:"omitempty,max=255"`
    Message string  `json:"message" validate:"required,max=1000"`
}

// Consultation stores a consultation request.  It shares the contact
// table; the message is prefixed so admins can tell the two intakes apart,
// and the service of interest is folded in when given.
func (h *PublicHandler) Consultation(c echo.Context) error {
    var req consultationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    req.Service = strings.TrimSpace(req.Service)
    req.Message = strings.TrimSpace(req.Message)
    if fields := validate.Struct(req); fields != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
    }

    msg := "[Consultation Request] "
    if req.Service != "" {
        msg += "Service: " + req.Service + ". "
    }
    msg += req.Message

    sub := model.ContactSubmission{
        Name:    req.Name,
        Email:   req.Email,
        Phone:   req.Phone,
        Message: msg,
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Contacts.Create(ctx, &sub); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit failed"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": sub.ID})
}

// Health is the liveness probe.
func Health(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
