package model

import "testing"

func TestValidTaskTransition(t *testing.T) {
    cases := []struct {
        from, to string
        want     bool
    }{
        {TaskPending, TaskInProgress, true},
        {TaskInProgress, TaskCompleted, true},
        // no skipping
        {TaskPending, TaskCompleted, false},
        // no going back
        {TaskInProgress, TaskPending, false},
        {TaskCompleted, TaskInProgress, false},
        {TaskCompleted, TaskPending, false},
        // terminal state
        {TaskCompleted, TaskCompleted, false},
        // self-loops
        {TaskPending, TaskPending, false},
        {TaskInProgress, TaskInProgress, false},
        // unknown states
        {"cancelled", TaskCompleted, false},
        {TaskPending, "archived", false},
    }
    for _, c := range cases {
        if got := ValidTaskTransition(c.from, c.to); got != c.want {
            t.Errorf("ValidTaskTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
        }
    }
}

func TestValidPriority(t *testing.T) {
    for _, p := range []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
        if !ValidPriority(p) {
            t.Errorf("ValidPriority(%q) = false, want true", p)
        }
    }
    for _, p := range []string{"", "critical", "LOW", "Medium"} {
        if ValidPriority(p) {
            t.Errorf("ValidPriority(%q) = true, want false", p)
        }
    }
}

func TestValidStaffRoleAndStatus(t *testing.T) {
    for _, r := range []string{StaffRoleVA, StaffRoleSeniorVA, StaffRoleTeamLead, StaffRoleManager} {
        if !ValidStaffRole(r) {
            t.Errorf("ValidStaffRole(%q) = false, want true", r)
        }
    }
    if ValidStaffRole("Intern") || ValidStaffRole("") {
        t.Error("ValidStaffRole accepted an unknown role")
    }
    for _, s := range []string{StaffAvailable, StaffBusy, StaffOffline} {
        if !ValidStaffStatus(s) {
            t.Errorf("ValidStaffStatus(%q) = false, want true", s)
        }
    }
    if ValidStaffStatus("away") || ValidStaffStatus("") {
        t.Error("ValidStaffStatus accepted an unknown status")
    }
}
