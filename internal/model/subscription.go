package model

import "time"

// Subscription statuses.  A trial subscription is created automatically at
// signup; the remaining statuses are set only through the admin edit
// surface.
const (
    SubscriptionTrial     = "trial"
    SubscriptionActive    = "active"
    SubscriptionInactive  = "inactive"
    SubscriptionCancelled = "cancelled"
)

// Subscription is a client's billing and usage plan.  Exactly one row may
// exist per user (UNIQUE on user_id).  HoursUsed is accrued by the task
// completion consumer, never by a client-facing handler.
type Subscription struct {
    ID              uint64     // subscriptions.id
    UserID          uint64     // subscriptions.user_id (owner, unique)
    Plan            string     // subscriptions.plan (Personal/Professional/Business/Enterprise)
    Status          string     // subscriptions.status
    Price           float64    // subscriptions.price (monthly, USD)
    HoursIncluded   float64    // subscriptions.hours_included
    HoursUsed       float64    // subscriptions.hours_used
    BillingCycle    string     // subscriptions.billing_cycle (e.g. "monthly")
    NextBillingDate *time.Time // subscriptions.next_billing_date (nullable)
    CreatedAt       time.Time  // subscriptions.created_at
    UpdatedAt       time.Time  // subscriptions.updated_at
}
