package findings

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreDedup(t *testing.T) {
	s := NewStore()

	if !s.AddEmail(Email{Address: "a@b.co", Confidence: 0.9, Validated: true}) {
		t.Fatal("first AddEmail returned false")
	}
	// Same address, different metadata: first write wins.
	if s.AddEmail(Email{Address: "a@b.co", Confidence: 0.3}) {
		t.Error("duplicate AddEmail returned true")
	}

	if !s.AddPhone(Phone{Number: "555-123-4567"}) {
		t.Fatal("first AddPhone returned false")
	}
	if s.AddPhone(Phone{Number: "555-123-4567"}) {
		t.Error("duplicate AddPhone returned true")
	}

	key := ProfileKey("Instagram", "jdoe", KeyAt)
	if !s.AddProfile(key, Profile{Platform: "Instagram", URL: "u1"}) {
		t.Fatal("first AddProfile returned false")
	}
	if s.AddProfile(key, Profile{Platform: "Instagram", URL: "u2"}) {
		t.Error("duplicate AddProfile returned true")
	}
	if got := s.Snapshot().Profiles[key].URL; got != "u1" {
		t.Errorf("later profile overwrote first: url = %q", got)
	}

	if !s.AddUsername("jdoe") || s.AddUsername("jdoe") {
		t.Error("username dedup broken")
	}
	if !s.AddWebsite("jdoe.com") || s.AddWebsite("jdoe.com") {
		t.Error("website dedup broken")
	}
	if !s.SetProfessional("github", "https://github.com/jdoe") {
		t.Fatal("first SetProfessional returned false")
	}
	if s.SetProfessional("github", "https://github.com/other") {
		t.Error("professional slot overwritten")
	}
}

func TestStorePhoneDedupByValue(t *testing.T) {
	s := NewStore()
	s.AddPhone(Phone{Pattern: "(213) XXX-XXXX", AreaCode: "213"})
	if s.AddPhone(Phone{Pattern: "(213) XXX-XXXX", AreaCode: "213", Location: "LA"}) {
		t.Error("pattern value dedup broken")
	}
	// A concrete number and a pattern are distinct values.
	if !s.AddPhone(Phone{Number: "213-555-0100"}) {
		t.Error("distinct number rejected")
	}
	if !s.HasPhone("(213) XXX-XXXX") {
		t.Error("HasPhone missed recorded pattern")
	}
}

func TestStoreFreeze(t *testing.T) {
	s := NewStore()
	s.AddEmail(Email{Address: "a@b.co"})
	s.Freeze()

	if s.AddEmail(Email{Address: "c@d.co"}) {
		t.Error("AddEmail succeeded after Freeze")
	}
	if s.AddPhone(Phone{Number: "555-123-4567"}) {
		t.Error("AddPhone succeeded after Freeze")
	}
	if s.AddProfile("k", Profile{}) {
		t.Error("AddProfile succeeded after Freeze")
	}
	if s.AddUsername("u") || s.AddWebsite("w.com") || s.SetProfessional("github", "x") {
		t.Error("write succeeded after Freeze")
	}

	snap := s.Snapshot()
	if len(snap.Emails) != 1 {
		t.Errorf("frozen snapshot has %d emails, want 1", len(snap.Emails))
	}
}

func TestTrimEmailsKeepsValidatedFirst(t *testing.T) {
	s := NewStore()
	// Interleave validated and unvalidated findings.
	for i := 0; i < 30; i++ {
		s.AddEmail(Email{
			Address:   fmt.Sprintf("user%d@example.com", i),
			Validated: i%2 == 0,
		})
	}
	s.TrimEmails(20)

	snap := s.Snapshot()
	if len(snap.Emails) != 20 {
		t.Fatalf("kept %d emails, want 20", len(snap.Emails))
	}
	validated := 0
	for _, e := range snap.Emails {
		if e.Validated {
			validated++
		}
	}
	if validated != 15 {
		t.Errorf("kept %d validated, want all 15", validated)
	}
	// The first kept entries are the validated ones, insertion order preserved.
	if snap.Emails[0].Address != "user0@example.com" {
		t.Errorf("first kept = %q", snap.Emails[0].Address)
	}

	// Dedup map is rebuilt: dropped addresses are addable again pre-freeze.
	if !s.AddEmail(Email{Address: "user29@example.com"}) {
		t.Error("dropped address still registered as seen")
	}
}

func TestStoreConcurrentWrites(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddEmail(Email{Address: fmt.Sprintf("u%d@x.co", i%10)})
			s.AddUsername(fmt.Sprintf("user%d", i%5))
			s.AddProfile(fmt.Sprintf("key%d", i%7), Profile{})
		}(i)
	}
	wg.Wait()

	c := s.Counts()
	if c.Emails != 10 || c.Usernames != 5 || c.Profiles != 7 {
		t.Errorf("counts after concurrent writes = %+v", c)
	}
}

func TestProfileKeyStyles(t *testing.T) {
	tests := []struct {
		platform string
		style    KeyStyle
		want     string
	}{
		{"Instagram", KeyAt, "Instagram (@jdoe)"},
		{"Reddit", KeyU, "Reddit (u/jdoe)"},
		{"Facebook", KeyRaw, "Facebook (jdoe)"},
	}
	for _, tt := range tests {
		if got := ProfileKey(tt.platform, "jdoe", tt.style); got != tt.want {
			t.Errorf("ProfileKey(%q) = %q, want %q", tt.platform, got, tt.want)
		}
	}
}
