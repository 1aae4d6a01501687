package extract

import (
	"testing"

	"github.com/ewetherby/dragnet/internal/findings"
)

func TestEmailsFromText(t *testing.T) {
	text := `Contact me at jane.doe@example.com or work+osint@corp.io.
Broken candidates like not-an-email@ or @nowhere should be ignored.`

	got := Emails(text, "Instagram profile")
	if len(got) != 2 {
		t.Fatalf("expected 2 emails, got %d: %v", len(got), got)
	}
	if got[0].Address != "jane.doe@example.com" {
		t.Errorf("first address = %q", got[0].Address)
	}
	for _, e := range got {
		if e.Confidence != 0.9 {
			t.Errorf("extracted email confidence = %v, want 0.9", e.Confidence)
		}
		if !e.Validated {
			t.Errorf("extracted email %q not marked validated", e.Address)
		}
		if e.Source != "Instagram profile" {
			t.Errorf("source = %q", e.Source)
		}
	}
}

func TestPhonesFromText(t *testing.T) {
	text := "Call 555-123-4567 or 5551234567, maybe 555.123.9999. Not 12345."
	got := Phones(text, "bio")
	if len(got) != 3 {
		t.Fatalf("expected 3 phones, got %d: %v", len(got), got)
	}
	if got[0].Number != "555-123-4567" {
		t.Errorf("first number = %q", got[0].Number)
	}
	for _, p := range got {
		if p.Confidence != 0.8 {
			t.Errorf("extracted phone confidence = %v, want 0.8", p.Confidence)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"john@gmail.com",
		"john.smith@sub.example.co",
		"j_s%+-99@host-name.io",
	}
	invalid := []string{
		"",
		"john",
		"john@",
		"@gmail.com",
		"john@gmail",
		"john@gmail.c",
		"john smith@gmail.com",
		"john@gma il.com",
	}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true, want false", s)
		}
	}
}

func TestContactsIdempotentViaStore(t *testing.T) {
	store := findings.NewStore()
	text := "reach me: jane@example.com / 555-123-4567"

	if added := Contacts(text, "profile", store); added != 2 {
		t.Fatalf("first pass added %d, want 2", added)
	}
	// Re-running over the same text must add nothing.
	if added := Contacts(text, "profile", store); added != 0 {
		t.Errorf("second pass added %d, want 0", added)
	}

	c := store.Counts()
	if c.Emails != 1 || c.Phones != 1 {
		t.Errorf("counts = %+v, want 1 email and 1 phone", c)
	}
}
