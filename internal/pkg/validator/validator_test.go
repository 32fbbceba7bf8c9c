package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-03-10"); !ok {
		t.Error(`IsValidDate("2026-03-10") = false, want true`)
	}
	for _, input := range []string{"2026-3-10", "10-03-2026", "2026-03-10T09:00:00Z", ""} {
		if _, ok := IsValidDate(input); ok {
			t.Errorf("IsValidDate(%q) = true, want false", input)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2026-03-10T09:00:00Z", "2026-03-10T09:00:00+07:00", "2026-03-10T09:00:00.123Z"}
	invalid := []string{"2026-03-10", "09:00:00", "not-a-time", ""}
	for _, input := range valid {
		if _, ok := IsValidDateTime(input); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", input)
		}
	}
	for _, input := range invalid {
		if _, ok := IsValidDateTime(input); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", input)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "from_date", Message: "from_date is required"},
		{Field: "to_date", Message: "to_date is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["from_date"] != "from_date is required" {
		t.Errorf("ToMap()[from_date] = %q", m["from_date"])
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
