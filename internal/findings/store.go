package findings

import "sync"

// Store accumulates findings from concurrent probe and extraction tasks.
// It is owned by exactly one investigation run: created empty, written to
// during the probing fan-out, frozen at the join, then read out into the
// final report. All methods are safe for concurrent use.
type Store struct {
	mu           sync.Mutex
	frozen       bool
	emails       []Email
	emailSeen    map[string]bool
	phones       []Phone
	phoneSeen    map[string]bool
	profiles     map[string]Profile
	usernames    map[string]bool
	websites     []string
	websiteSeen  map[string]bool
	professional map[string]string
}

// NewStore returns an empty accumulator.
func NewStore() *Store {
	return &Store{
		emailSeen:    make(map[string]bool),
		phoneSeen:    make(map[string]bool),
		profiles:     make(map[string]Profile),
		usernames:    make(map[string]bool),
		websiteSeen:  make(map[string]bool),
		professional: make(map[string]string),
	}
}

// AddEmail records an email finding. Returns false if the exact address is
// already present or the store is frozen.
func (s *Store) AddEmail(e Email) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen || s.emailSeen[e.Address] {
		return false
	}
	s.emailSeen[e.Address] = true
	s.emails = append(s.emails, e)
	return true
}

// AddPhone records a phone finding, deduplicated by exact value.
func (s *Store) AddPhone(p Phone) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen || s.phoneSeen[p.Value()] {
		return false
	}
	s.phoneSeen[p.Value()] = true
	s.phones = append(s.phones, p)
	return true
}

// AddProfile records a social profile under its dedup key.
// A later hit for the same key does not overwrite the first.
func (s *Store) AddProfile(key string, p Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen {
		return false
	}
	if _, ok := s.profiles[key]; ok {
		return false
	}
	s.profiles[key] = p
	return true
}

// AddUsername records a username confirmed on at least one platform.
func (s *Store) AddUsername(u string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen || s.usernames[u] {
		return false
	}
	s.usernames[u] = true
	return true
}

// AddWebsite records a responsive personal-website domain.
func (s *Store) AddWebsite(domain string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen || s.websiteSeen[domain] {
		return false
	}
	s.websiteSeen[domain] = true
	s.websites = append(s.websites, domain)
	return true
}

// SetProfessional records a professional-network link (linkedin, github).
func (s *Store) SetProfessional(network, url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen {
		return false
	}
	if _, ok := s.professional[network]; ok {
		return false
	}
	s.professional[network] = url
	return true
}

// HasEmail reports whether the exact address was already recorded.
func (s *Store) HasEmail(address string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emailSeen[address]
}

// HasPhone reports whether the exact phone value was already recorded.
func (s *Store) HasPhone(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phoneSeen[value]
}

// Freeze makes the store read-only. Writes after Freeze return false.
// Called by the orchestrator after every probe task has joined.
func (s *Store) Freeze() {
	s.mu.Lock()
	s.frozen = true
	s.mu.Unlock()
}

// TrimEmails keeps at most n email findings, validated ones first.
// Must be called before Freeze.
func (s *Store) TrimEmails(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen || len(s.emails) <= n {
		return
	}
	kept := make([]Email, 0, n)
	for _, e := range s.emails {
		if e.Validated && len(kept) < n {
			kept = append(kept, e)
		}
	}
	for _, e := range s.emails {
		if !e.Validated && len(kept) < n {
			kept = append(kept, e)
		}
	}
	s.emails = kept
	s.emailSeen = make(map[string]bool, len(kept))
	for _, e := range kept {
		s.emailSeen[e.Address] = true
	}
}

// Snapshot is a read-only copy of everything the store holds.
type Snapshot struct {
	Emails       []Email
	Phones       []Phone
	Profiles     map[string]Profile
	Usernames    []string
	Websites     []string
	Professional map[string]string
}

// Snapshot copies the current contents. Intended for use after Freeze;
// taking one mid-run is safe but sees a point-in-time state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Emails:       append([]Email(nil), s.emails...),
		Phones:       append([]Phone(nil), s.phones...),
		Profiles:     make(map[string]Profile, len(s.profiles)),
		Websites:     append([]string(nil), s.websites...),
		Professional: make(map[string]string, len(s.professional)),
	}
	for k, v := range s.profiles {
		snap.Profiles[k] = v
	}
	for u := range s.usernames {
		snap.Usernames = append(snap.Usernames, u)
	}
	for k, v := range s.professional {
		snap.Professional[k] = v
	}
	return snap
}

// Counts summarizes category sizes for scoring and metadata.
type Counts struct {
	Profiles        int
	ValidatedEmails int
	Emails          int
	Phones          int
	Usernames       int
	Websites        int
	Professional    int
}

// Counts computes the per-category totals.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Counts{
		Profiles:     len(s.profiles),
		Emails:       len(s.emails),
		Phones:       len(s.phones),
		Usernames:    len(s.usernames),
		Websites:     len(s.websites),
		Professional: len(s.professional),
	}
	for _, e := range s.emails {
		if e.Validated {
			c.ValidatedEmails++
		}
	}
	return c
}
