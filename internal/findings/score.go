package findings

// Policy is a confidence-scoring weight table. Each category contributes
// weight * count, capped per category; the sum is clamped to [0, 100].
type Policy struct {
	Name            string
	Social          float64
	SocialCap       float64
	Email           float64 // validated emails only
	EmailCap        float64
	Phone           float64
	PhoneCap        float64
	Website         float64
	WebsiteCap      float64
	Professional    float64
	ProfessionalCap float64
}

// AdvancedPolicy weights findings for the full multi-phase investigation.
var AdvancedPolicy = Policy{
	Name:            "advanced",
	Social:          3,
	SocialCap:       40,
	Email:           10,
	EmailCap:        30,
	Phone:           5,
	PhoneCap:        15,
	Website:         5,
	WebsiteCap:      10,
	Professional:    2.5,
	ProfessionalCap: 5,
}

// BasicPolicy weights social profiles more aggressively. The two tables
// intentionally coexist; basic and advanced runs report different scores
// for identical findings.
var BasicPolicy = Policy{
	Name:            "basic",
	Social:          5,
	SocialCap:       50,
	Email:           10,
	EmailCap:        30,
	Phone:           5,
	PhoneCap:        15,
	Website:         5,
	WebsiteCap:      10,
	Professional:    2.5,
	ProfessionalCap: 5,
}

// Score computes the 0-100 confidence score for the given counts.
// Deterministic and idempotent: purely a function of the counts.
func (p Policy) Score(c Counts) float64 {
	score := 0.0
	score += capped(float64(c.Profiles)*p.Social, p.SocialCap)
	score += capped(float64(c.ValidatedEmails)*p.Email, p.EmailCap)
	score += capped(float64(c.Phones)*p.Phone, p.PhoneCap)
	score += capped(float64(c.Websites)*p.Website, p.WebsiteCap)
	score += capped(float64(c.Professional)*p.Professional, p.ProfessionalCap)
	if score > 100 {
		return 100
	}
	return score
}

func capped(v, cap float64) float64 {
	if v > cap {
		return cap
	}
	return v
}
