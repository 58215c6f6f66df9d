package handler

import (
    "context"      // context with cancellation for DB calls
    "net/http"     // HTTP status codes
    "strings"      // input normalization
    "time"         // timeouts and due date parsing

    "github.com/labstack/echo/v4" // Echo framework

    "github.com/elevateassist/va-agency-portal/internal/model"
    "github.com/elevateassist/va-agency-portal/internal/repository"
    "github.com/elevateassist/va-agency-portal/internal/storage"
    "github.com/elevateassist/va-agency-portal/internal/validate"
)

// ClientHandler serves the signed-in client portal: profile, avatar,
// subscription usage, task submission and the service history feed.  Every
// route here is scoped to the caller's own records; the user id always
// comes from the JWT, never from the request.
type ClientHandler struct {
    Profiles      *repository.ProfileRepo
    Subscriptions *repository.SubscriptionRepo
    Tasks         *repository.TaskRepo
    History       *repository.ServiceHistoryRepo
    Assignments   *repository.AssignmentRepo
    Avatars       *storage.AvatarStore
}

// NewClientHandler wires the handler with its dependencies.
func NewClientHandler(p *repository.ProfileRepo, s *repository.SubscriptionRepo, t *repository.TaskRepo, h *repository.ServiceHistoryRepo, a *repository.AssignmentRepo, av *storage.AvatarStore) *ClientHandler {
    return &ClientHandler{Profiles: p, Subscriptions: s, Tasks: t, History: h, Assignments: a, Avatars: av}
}

// GetProfile returns the caller's own profile.
func (h *ClientHandler) GetProfile(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    p, err := h.Profiles.GetByID(ctx, userID)
    if err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, profileView(p))
}

type updateProfileReq struct {
    FullName string  `json:"full_name" validate:"required,max=255"`
    Phone    *string `json:"phone" validate:"omitempty,max=32"`
}

// UpdateProfile changes the caller's display name and phone.  Email and
// avatar are managed elsewhere (email is the login identity, the avatar
// has its own upload route).
func (h *ClientHandler) UpdateProfile(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req updateProfileReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.FullName = strings.TrimSpace(req.FullName)
    if fields := validate.Struct(req); fields != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Profiles.Update(ctx, userID, req.FullName, req.Phone); err != nil {
        if err == repository.ErrProfileNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    p, err := h.Profiles.GetByID(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, profileView(p))
}

// UploadAvatar accepts a multipart image upload, resizes it to fit the
// avatar bounds and rewrites the profile's avatar_url.  Re-uploading
// replaces the previous image at the same path.
func (h *ClientHandler) UploadAvatar(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    fh, err := c.FormFile("avatar")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "avatar file required"})
    }
    contentType := fh.Header.Get("Content-Type")
    if err := storage.ValidateUpload(contentType, fh.Size); err != nil {
        switch err {
        case storage.ErrNotImage:
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "file must be an image"})
        case storage.ErrTooLarge:
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "image exceeds 2MB limit"})
        }
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid upload"})
    }

    src, err := fh.Open()
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read upload failed"})
    }
    defer func() { _ = src.Close() }()

    url, err := h.Avatars.Save(userID, fh.Filename, contentType, fh.Size, src)
    if err != nil {
        if err == storage.ErrNotImage || err == storage.ErrTooLarge {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store avatar failed"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Profiles.SetAvatarURL(ctx, userID, url); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update profile failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"avatar_url": url})
}

// GetSubscription returns the caller's subscription with derived usage
// numbers (hours remaining, usage percent).
func (h *ClientHandler) GetSubscription(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    s, err := h.Subscriptions.GetByUserID(ctx, userID)
    if err != nil {
        if err == repository.ErrSubscriptionNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "subscription not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, subscriptionView(s))
}

type submitTaskReq struct {
    Title          string  `json:"title" validate:"required,max=255"`
    Description    string  `json:"description" validate:"required"`
    Category       string  `json:"category" validate:"omitempty,max=100"`
    Priority       string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
    DueDate        *string `json:"due_date"`
    HoursEstimated *float64 `json:"hours_estimated" validate:"omitempty,gte=0"`
}

// SubmitTask creates a new pending task owned by the caller.  An optional
// category is folded into the description as a "[Category] " prefix so the
// task table keeps a single free-text field.
func (h *ClientHandler) SubmitTask(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req submitTaskReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Title = strings.TrimSpace(req.Title)
    req.Description = strings.TrimSpace(req.Description)
    req.Category = strings.TrimSpace(req.Category)
    if fields := validate.Struct(req); fields != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
    }

    priority := req.Priority
    if priority == "" {
        priority = model.PriorityMedium
    }

    var due *time.Time
    if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
        d, err := time.Parse("2006-01-02", strings.TrimSpace(*req.DueDate))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "due_date must be YYYY-MM-DD"})
        }
        due = &d
    }

    desc := req.Description
    if req.Category != "" {
        desc = "[" + req.Category + "] " + desc
    }

    t := model.Task{
        ClientID:       userID,
        Title:          req.Title,
        Description:    desc,
        Priority:       priority,
        Status:         model.TaskPending,
        DueDate:        due,
        HoursEstimated: req.HoursEstimated,
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Tasks.Create(ctx, &t); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create task failed"})
    }
    return c.JSON(http.StatusCreated, taskView(t))
}

// ListTasks returns the caller's tasks, newest first.
func (h *ClientHandler) ListTasks(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    ts, err := h.Tasks.ListByClient(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"tasks": taskViews(ts)})
}

// ListHistory returns the caller's completed-service feed, newest first.
func (h *ClientHandler) ListHistory(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    es, err := h.History.ListByUser(ctx, userID, 100)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"history": historyViews(es)})
}

// ListAssignments returns the caller's staff pairings (active and ended).
func (h *ClientHandler) ListAssignments(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    as, err := h.Assignments.ListByClient(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"assignments": assignmentViews(as)})
}
