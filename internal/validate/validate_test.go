package validate

import (
    "strings"
    "testing"
)

// contactForm mirrors the shape of the public intake forms.
type contactForm struct {
    Name    string  `json:"name" validate:"required,max=100"`
    Email   string  `json:"email" validate:"required,email,max=255"`
    Phone   *string `json:"phone" validate:"omitempty,max=20"`
    Message string  `json:"message" validate:"required,max=1000"`
}

func TestStructValid(t *testing.T) {
    ok := contactForm{
        Name:    "Jordan Miles",
        Email:   "jordan@example.com",
        Message: "I would like to learn more about your services.",
    }
    if fields := Struct(ok); fields != nil {
        t.Fatalf("valid form rejected: %v", fields)
    }
}

func TestStructFieldErrors(t *testing.T) {
    longName := strings.Repeat("x", 300)
    cases := []struct {
        name  string
        form  contactForm
        field string
    }{
        {"missing name", contactForm{Email: "a@b.com", Message: "hi"}, "name"},
        {"name too long", contactForm{Name: longName, Email: "a@b.com", Message: "hi"}, "name"},
        {"missing email", contactForm{Name: "A", Message: "hi"}, "email"},
        {"bad email", contactForm{Name: "A", Email: "not-an-email", Message: "hi"}, "email"},
        {"missing message", contactForm{Name: "A", Email: "a@b.com"}, "message"},
        {"message too long", contactForm{Name: "A", Email: "a@b.com", Message: strings.Repeat("y", 1001)}, "message"},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            fields := Struct(c.form)
            if fields == nil {
                t.Fatal("invalid form accepted")
            }
            if _, ok := fields[c.field]; !ok {
                t.Errorf("expected error on %q, got %v", c.field, fields)
            }
        })
    }
}

// Errors must be keyed by the json tag name, not the Go field name.
func TestStructUsesJSONFieldNames(t *testing.T) {
    fields := Struct(contactForm{})
    for k := range fields {
        if k != strings.ToLower(k) {
            t.Errorf("field key %q is not a json tag name", k)
        }
    }
}

func TestStructOneofAndGte(t *testing.T) {
    type taskForm struct {
        Priority string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
        Hours    float64 `json:"hours_estimated" validate:"gte=0"`
    }
    if fields := Struct(taskForm{Priority: "urgent", Hours: 1.5}); fields != nil {
        t.Fatalf("valid task form rejected: %v", fields)
    }
    fields := Struct(taskForm{Priority: "critical", Hours: -1})
    if fields == nil {
        t.Fatal("invalid task form accepted")
    }
    if _, ok := fields["priority"]; !ok {
        t.Errorf("expected priority error, got %v", fields)
    }
    if _, ok := fields["hours_estimated"]; !ok {
        t.Errorf("expected hours_estimated error, got %v", fields)
    }
}
