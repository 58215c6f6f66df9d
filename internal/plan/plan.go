// Package plan holds the subscription plan catalog and the usage
// derivations shown on client and admin dashboards.  The catalog is static
// configuration, not database state: rows in the subscriptions table store
// the plan name plus a snapshot of price and included hours taken at
// signup or at the last admin edit.
package plan

import "github.com/elevateassist/va-agency-portal/internal/model"

// Plan describes one tier of the service.
type Plan struct {
    Name         string  `json:"name"`
    Price        float64 `json:"price"`
    HoursIncluded float64 `json:"hours_included"`
    BillingCycle string  `json:"billing_cycle"`
    Description  string  `json:"description"`
}

// Default values applied when a client has no subscription row yet.
const (
    DefaultPlanName      = "Personal"
    DefaultHoursIncluded = 20
    DefaultPrice         = 15
)

// Catalog lists the offered plans in display order.
var Catalog = []Plan{
    {Name: "Personal", Price: 15, HoursIncluded: 20, BillingCycle: "monthly", Description: "Dedicated support for individuals"},
    {Name: "Professional", Price: 30, HoursIncluded: 50, BillingCycle: "monthly", Description: "Expanded support for professionals"},
    {Name: "Business", Price: 60, HoursIncluded: 100, BillingCycle: "monthly", Description: "Team-level support for growing businesses"},
    {Name: "Enterprise", Price: 120, HoursIncluded: 240, BillingCycle: "monthly", Description: "Full-scale support with dedicated account management"},
}

// ByName returns the catalog entry for the given plan name.
func ByName(name string) (Plan, bool) {
    for _, p := range Catalog {
        if p.Name == name {
            return p, true
        }
    }
    return Plan{}, false
}

// UsageSummary captures the derived numbers rendered next to a
// subscription: hours left this cycle and how much of the included
// allotment has been consumed.
type UsageSummary struct {
    HoursRemaining float64 `json:"hours_remaining"`
    UsagePercent   float64 `json:"usage_percent"`
}

// HoursRemaining returns included minus used, floored at zero so an
// over-consumed subscription never reports negative hours.
func HoursRemaining(included, used float64) float64 {
    if rem := included - used; rem > 0 {
        return rem
    }
    return 0
}

// UsagePercent returns used/included as a percentage capped at 100.  Zero
// included hours counts as fully consumed capacity (a full bar), not a
// division error.
func UsagePercent(included, used float64) float64 {
    if included <= 0 {
        return 100
    }
    pct := used / included * 100
    if pct > 100 {
        return 100
    }
    if pct < 0 {
        return 0
    }
    return pct
}

// Summarize derives a UsageSummary from a subscription row.  A nil
// subscription yields the trial defaults (Personal plan, nothing used).
func Summarize(s *model.Subscription) UsageSummary {
    if s == nil {
        return UsageSummary{HoursRemaining: DefaultHoursIncluded, UsagePercent: 0}
    }
    return UsageSummary{
        HoursRemaining: HoursRemaining(s.HoursIncluded, s.HoursUsed),
        UsagePercent:   UsagePercent(s.HoursIncluded, s.HoursUsed),
    }
}
