package store

import (
	"path/filepath"
	"testing"

	"github.com/ewetherby/dragnet/internal/findings"
	"github.com/ewetherby/dragnet/internal/report"
)

func sampleReport(name string) *report.Report {
	snap := findings.Snapshot{
		Emails: []findings.Email{
			{Address: "jane@example.com", Source: "profile", Confidence: 0.9, Validated: true},
		},
		Profiles: map[string]findings.Profile{
			"Instagram (@janedoe)": {Platform: "Instagram", URL: "https://www.instagram.com/janedoe/"},
		},
	}
	return report.FromSnapshot(name, "advanced", snap, 25, 10, 0, nil)
}

func TestSaveAndGet(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	rep := sampleReport("Jane Doe")
	if err := s.SaveReport(rep); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	got, err := s.Get(rep.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Jane Doe" || got.ConfidenceScore != 25 {
		t.Errorf("round trip changed report: %+v", got)
	}
	if got.Emails[0].Address != "jane@example.com" {
		t.Errorf("findings lost: %+v", got.Emails)
	}
}

func TestGetMissing(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if _, err := s.Get("no-such-id"); err == nil {
		t.Error("Get of missing id succeeded")
	}
}

func TestListNewestFirst(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	names := []string{"First Target", "Second Target", "Third Target"}
	for _, n := range names {
		if err := s.SaveReport(sampleReport(n)); err != nil {
			t.Fatalf("SaveReport(%q) failed: %v", n, err)
		}
	}

	entries, err := s.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("listed %d entries, want 3", len(entries))
	}
	for _, e := range entries {
		if e.Mode != "advanced" || e.Confidence != 25 {
			t.Errorf("entry fields wrong: %+v", e)
		}
	}

	limited, err := s.List(2)
	if err != nil {
		t.Fatalf("List(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d entries", len(limited))
	}
}

func TestSaveDuplicateIDIgnored(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	rep := sampleReport("Jane Doe")
	if err := s.SaveReport(rep); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := s.SaveReport(rep); err != nil {
		t.Fatalf("duplicate save errored: %v", err)
	}

	entries, err := s.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("duplicate save created %d rows", len(entries))
	}
}

func TestFileBackedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open file store: %v", err)
	}
	rep := sampleReport("Jane Doe")
	if err := s.SaveReport(rep); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and confirm persistence.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get(rep.ID)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got.Name != "Jane Doe" {
		t.Errorf("persisted report name = %q", got.Name)
	}
}
