package findings

import "testing"

func TestScoreEmpty(t *testing.T) {
	if got := AdvancedPolicy.Score(Counts{}); got != 0 {
		t.Errorf("empty counts score = %v, want 0", got)
	}
}

func TestScorePerCategoryCaps(t *testing.T) {
	// Each category saturates independently of the others.
	tests := []struct {
		name string
		c    Counts
		want float64
	}{
		{"social below cap", Counts{Profiles: 3}, 9},
		{"social at cap", Counts{Profiles: 14}, 40},
		{"emails only validated count", Counts{Emails: 8, ValidatedEmails: 2}, 20},
		{"emails capped", Counts{ValidatedEmails: 10}, 30},
		{"phones capped", Counts{Phones: 100}, 15},
		{"websites capped", Counts{Websites: 3}, 10},
		{"professional capped", Counts{Professional: 2}, 5},
	}
	for _, tt := range tests {
		if got := AdvancedPolicy.Score(tt.c); got != tt.want {
			t.Errorf("%s: score = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScoreClampAt100(t *testing.T) {
	c := Counts{
		Profiles:        1000,
		ValidatedEmails: 1000,
		Phones:          1000,
		Websites:        1000,
		Professional:    1000,
	}
	if got := AdvancedPolicy.Score(c); got != 100 {
		t.Errorf("saturated advanced score = %v, want 100", got)
	}
	if got := BasicPolicy.Score(c); got != 100 {
		t.Errorf("saturated basic score = %v, want 100", got)
	}
}

func TestScoreMonotoneInProfiles(t *testing.T) {
	prev := 0.0
	for n := 0; n <= 20; n++ {
		got := AdvancedPolicy.Score(Counts{Profiles: n})
		if got < prev {
			t.Fatalf("score decreased at %d profiles: %v < %v", n, got, prev)
		}
		prev = got
	}
}

func TestPoliciesDisagreeOnSocialWeight(t *testing.T) {
	c := Counts{Profiles: 5}
	adv := AdvancedPolicy.Score(c)
	basic := BasicPolicy.Score(c)
	if adv != 15 {
		t.Errorf("advanced score = %v, want 15", adv)
	}
	if basic != 25 {
		t.Errorf("basic score = %v, want 25", basic)
	}
}

func TestScoreDeterministic(t *testing.T) {
	c := Counts{Profiles: 4, ValidatedEmails: 2, Phones: 1, Websites: 1, Professional: 1}
	first := AdvancedPolicy.Score(c)
	for i := 0; i < 5; i++ {
		if got := AdvancedPolicy.Score(c); got != first {
			t.Fatalf("score not idempotent: %v != %v", got, first)
		}
	}
	want := 12.0 + 20 + 5 + 5 + 2.5
	if first != want {
		t.Errorf("score = %v, want %v", first, want)
	}
}
