package plan

import (
    "testing"

    "github.com/elevateassist/va-agency-portal/internal/model"
)

func TestByName(t *testing.T) {
    cases := []struct {
        name  string
        found bool
        price float64
        hours float64
    }{
        {"Personal", true, 15, 20},
        {"Professional", true, 30, 50},
        {"Business", true, 60, 100},
        {"Enterprise", true, 120, 240},
        {"personal", false, 0, 0}, // lookups are case sensitive
        {"Platinum", false, 0, 0},
    }
    for _, c := range cases {
        p, ok := ByName(c.name)
        if ok != c.found {
            t.Errorf("ByName(%q): found=%v, want %v", c.name, ok, c.found)
            continue
        }
        if ok && (p.Price != c.price || p.HoursIncluded != c.hours) {
            t.Errorf("ByName(%q) = %+v, want price=%v hours=%v", c.name, p, c.price, c.hours)
        }
    }
}

func TestDefaultsMatchCatalog(t *testing.T) {
    p, ok := ByName(DefaultPlanName)
    if !ok {
        t.Fatalf("default plan %q missing from catalog", DefaultPlanName)
    }
    if p.Price != DefaultPrice || p.HoursIncluded != DefaultHoursIncluded {
        t.Errorf("default plan %+v does not match defaults price=%v hours=%v",
            p, DefaultPrice, DefaultHoursIncluded)
    }
}

func TestHoursRemaining(t *testing.T) {
    cases := []struct {
        included, used, want float64
    }{
        {20, 0, 20},
        {20, 7.5, 12.5},
        {20, 20, 0},
        {20, 25, 0}, // overrun floors at zero
        {0, 0, 0},
    }
    for _, c := range cases {
        if got := HoursRemaining(c.included, c.used); got != c.want {
            t.Errorf("HoursRemaining(%v, %v) = %v, want %v", c.included, c.used, got, c.want)
        }
    }
}

func TestUsagePercent(t *testing.T) {
    cases := []struct {
        included, used, want float64
    }{
        {20, 0, 0},
        {20, 5, 25},
        {20, 20, 100},
        {20, 40, 100}, // capped
        {0, 0, 100},   // zero capacity reads as a full bar
        {-5, 0, 100},
        {20, -3, 0}, // negative usage clamps to zero
    }
    for _, c := range cases {
        if got := UsagePercent(c.included, c.used); got != c.want {
            t.Errorf("UsagePercent(%v, %v) = %v, want %v", c.included, c.used, got, c.want)
        }
    }
}

func TestSummarize(t *testing.T) {
    if got := Summarize(nil); got.HoursRemaining != DefaultHoursIncluded || got.UsagePercent != 0 {
        t.Errorf("Summarize(nil) = %+v, want trial defaults", got)
    }
    s := &model.Subscription{HoursIncluded: 50, HoursUsed: 10}
    got := Summarize(s)
    if got.HoursRemaining != 40 || got.UsagePercent != 20 {
        t.Errorf("Summarize(%+v) = %+v, want remaining=40 percent=20", s, got)
    }
}
