// Package investigate drives the identity-resolution pipeline: candidate
// generation, concurrent platform probing with interleaved contact
// extraction, aggregation, and confidence scoring.
package investigate

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ewetherby/dragnet/internal/advisory"
	"github.com/ewetherby/dragnet/internal/extract"
	"github.com/ewetherby/dragnet/internal/findings"
	"github.com/ewetherby/dragnet/internal/identgen"
	"github.com/ewetherby/dragnet/internal/logging"
	"github.com/ewetherby/dragnet/internal/probe"
	"github.com/ewetherby/dragnet/internal/report"
)

// Mode selects the investigation depth and its scoring policy.
type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeAdvanced Mode = "advanced"
)

// Policy returns the scoring weight table for the mode. The two tables
// intentionally differ; see findings.BasicPolicy.
func (m Mode) Policy() findings.Policy {
	if m == ModeBasic {
		return findings.BasicPolicy
	}
	return findings.AdvancedPolicy
}

// defaults per mode: how many usernames are probed per platform, how many
// against link hubs, and the worker limit.
func (m Mode) defaults() (usernameBudget, hubBudget, concurrency int) {
	if m == ModeBasic {
		return 5, 5, 10
	}
	return 10, 5, 15
}

// State tracks the orchestrator through its one-way lifecycle.
type State int

const (
	StateInit State = iota
	StateGenerating
	StateProbing
	StateAggregating
	StateScoring
	StateDone
)

// String implements fmt.Stringer for logging and the UI.
func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating candidates"
	case StateProbing:
		return "probing platforms"
	case StateAggregating:
		return "aggregating findings"
	case StateScoring:
		return "scoring"
	case StateDone:
		return "done"
	default:
		return "init"
	}
}

// Event is a progress notification for front ends.
type Event struct {
	State   State
	Message string
}

// Stats counts probe dispatch results for one run. Individual task
// failures are absorbed here instead of propagating.
type Stats struct {
	Probes int64
	Found  int64
	Errors int64
}

// Options configures one investigation run.
type Options struct {
	Location   string
	Age        string
	Profession string
	Mode       Mode

	// Concurrency bounds the probe worker pool. Zero uses the mode default.
	Concurrency int
	// UsernameBudget limits usernames probed per platform. Zero uses the
	// mode default. Probing the full generated set is a deliberate non-goal.
	UsernameBudget int
	// LinkHubBudget limits usernames probed on link aggregators.
	LinkHubBudget int

	// OnEvent receives progress notifications. May be nil. Called from
	// multiple goroutines; handlers must be cheap and thread-safe.
	OnEvent func(Event)
}

// prober is the narrow probing surface the orchestrator needs,
// an interface for dependency injection in tests.
type prober interface {
	Probe(ctx context.Context, d probe.Descriptor, username string) probe.Result
	ProbeWebsite(ctx context.Context, domain string) bool
	HarvestGitHubEmails(ctx context.Context, username string) ([]string, error)
}

// maxEmailFindings caps how many email findings survive aggregation.
const maxEmailFindings = 20

// Investigator runs exactly one investigation and is then spent; construct
// a fresh one per target so each run owns a fresh aggregation store.
type Investigator struct {
	prober  prober
	advisor advisory.Client // optional, may be nil
	opts    Options

	store *findings.Store
	state State
	spent bool

	probes      atomic.Int64
	foundCount  atomic.Int64
	probeErrors atomic.Int64
}

// New creates an Investigator backed by a real Prober.
func New(p *probe.Prober, advisor advisory.Client, opts Options) *Investigator {
	return NewWithProber(p, advisor, opts)
}

// NewWithProber allows injecting a custom prober (for testing).
func NewWithProber(p prober, advisor advisory.Client, opts Options) *Investigator {
	if opts.Mode == "" {
		opts.Mode = ModeAdvanced
	}
	ub, hb, conc := opts.Mode.defaults()
	if opts.UsernameBudget <= 0 {
		opts.UsernameBudget = ub
	}
	if opts.LinkHubBudget <= 0 {
		opts.LinkHubBudget = hb
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = conc
	}

	return &Investigator{
		prober:  p,
		advisor: advisor,
		opts:    opts,
		store:   findings.NewStore(),
	}
}

// State returns the current lifecycle state.
func (inv *Investigator) State() State {
	return inv.state
}

// Stats returns the probe counters for the run so far.
func (inv *Investigator) Stats() Stats {
	return Stats{
		Probes: inv.probes.Load(),
		Found:  inv.foundCount.Load(),
		Errors: inv.probeErrors.Load(),
	}
}

// Run executes the full pipeline and returns the final report. No finding
// failure is fatal: an empty or unmatched name yields an empty-but-valid
// report. Cancelling ctx abandons outstanding probes at their next I/O
// checkpoint and still produces a report from whatever was collected.
func (inv *Investigator) Run(ctx context.Context, name string) (*report.Report, error) {
	if inv.spent {
		return nil, fmt.Errorf("investigator is not reusable; construct a new one per run")
	}
	inv.spent = true

	logging.Info("investigation starting", "name", name, "mode", inv.opts.Mode)

	// Candidate generation
	inv.setState(StateGenerating)
	plan := inv.plan(ctx, name)
	inv.emit("generated %d username and %d email candidates",
		len(plan.UsernamePatterns), len(plan.EmailPatterns))

	// Concurrent probing with interleaved extraction
	inv.setState(StateProbing)
	inv.fanOut(ctx, name, plan)

	// Synchronous aggregation of generated candidates
	inv.setState(StateAggregating)
	inv.aggregate(plan)
	inv.store.TrimEmails(maxEmailFindings)
	inv.store.Freeze()

	// Pure scoring pass
	inv.setState(StateScoring)
	policy := inv.opts.Mode.Policy()
	score := policy.Score(inv.store.Counts())

	notes := []string{
		"breach database search not performed: requires external API credentials",
	}
	rep := report.FromSnapshot(name, string(inv.opts.Mode), inv.store.Snapshot(), score,
		int(inv.probes.Load()), int(inv.probeErrors.Load()), notes)

	inv.setState(StateDone)
	logging.Info("investigation complete", "name", name,
		"profiles", rep.Metadata.TotalPlatforms,
		"emails", rep.Metadata.TotalEmails,
		"phones", rep.Metadata.TotalPhones,
		"probes", rep.Metadata.ProbesAttempted,
		"errors", rep.Metadata.ProbeErrors,
		"confidence", rep.ConfidenceScore)
	return rep, nil
}

// plan obtains the candidate plan, preferring the advisory service and
// falling back to rule-based generation on any failure. The fallback path
// is behaviorally identical to running with no advisor at all.
func (inv *Investigator) plan(ctx context.Context, name string) advisory.Plan {
	if inv.advisor != nil && inv.advisor.Available() {
		targetCtx := map[string]string{}
		if inv.opts.Location != "" {
			targetCtx["location"] = inv.opts.Location
		}
		if inv.opts.Age != "" {
			targetCtx["age"] = inv.opts.Age
		}
		if inv.opts.Profession != "" {
			targetCtx["profession"] = inv.opts.Profession
		}

		plan, err := inv.advisor.Suggest(ctx, name, targetCtx)
		if err == nil {
			return plan
		}
		logging.Warn("advisory suggestion failed, using rule-based fallback",
			"service", inv.advisor.Name(), "error", err)
	}
	return advisory.FallbackPlan(name)
}

// fanOut dispatches one task per (candidate, platform) pair plus link-hub
// and website probes, bounded by the concurrency limit. A single task's
// failure never aborts the batch; the join waits for every dispatched task.
func (inv *Investigator) fanOut(ctx context.Context, name string, plan advisory.Plan) {
	probeUsers := prefix(plan.UsernamePatterns, inv.opts.UsernameBudget)
	hubUsers := prefix(plan.UsernamePatterns, inv.opts.LinkHubBudget)

	var g errgroup.Group
	g.SetLimit(inv.opts.Concurrency)

	for _, username := range probeUsers {
		for _, desc := range probe.Catalog() {
			g.Go(func() error {
				inv.probePlatform(ctx, desc, username)
				return nil // errors are absorbed per task
			})
		}
	}

	for _, username := range hubUsers {
		for _, desc := range probe.HubCatalog() {
			g.Go(func() error {
				inv.probeHub(ctx, desc, username)
				return nil
			})
		}
	}

	for _, domain := range identgen.WebsiteCandidates(name, plan.UsernamePatterns) {
		g.Go(func() error {
			inv.probeSite(ctx, domain)
			return nil
		})
	}

	_ = g.Wait()
}

// probePlatform runs one existence check and feeds every found body
// straight into contact extraction.
func (inv *Investigator) probePlatform(ctx context.Context, desc probe.Descriptor, username string) {
	if ctx.Err() != nil {
		return
	}

	res := inv.prober.Probe(ctx, desc, username)
	inv.probes.Add(1)

	switch res.Outcome {
	case probe.OutcomeError:
		inv.probeErrors.Add(1)
		return
	case probe.OutcomeNotFound:
		return
	}

	inv.foundCount.Add(1)
	key := desc.Key(username)
	if inv.store.AddProfile(key, findings.Profile{
		Platform: desc.Name,
		URL:      res.URL,
		Username: username,
		Source:   "Direct probe",
		Verified: res.Verified,
	}) {
		inv.emit("found %s", key)
	}
	inv.store.AddUsername(username)

	if desc.Professional != "" {
		inv.store.SetProfessional(desc.Professional, res.URL)
	}

	if n := extract.Contacts(res.Body, desc.Name+" profile", inv.store); n > 0 {
		inv.emit("extracted %d contact(s) from %s", n, key)
	}

	if desc.HarvestEmails {
		inv.harvestCommitEmails(ctx, username)
	}
}

// probeHub checks a link-aggregator page and mines its anchors for
// secondary profiles without further network calls.
func (inv *Investigator) probeHub(ctx context.Context, desc probe.Descriptor, username string) {
	if ctx.Err() != nil {
		return
	}

	res := inv.prober.Probe(ctx, desc, username)
	inv.probes.Add(1)

	switch res.Outcome {
	case probe.OutcomeError:
		inv.probeErrors.Add(1)
		return
	case probe.OutcomeNotFound:
		return
	}

	inv.foundCount.Add(1)
	key := desc.Key(username)
	if inv.store.AddProfile(key, findings.Profile{
		Platform: desc.Name,
		URL:      res.URL,
		Username: username,
		Source:   "Direct probe",
	}) {
		inv.emit("found %s", key)
	}
	inv.store.AddUsername(username)

	for _, link := range probe.ExtractHubLinks(res.Body) {
		linkKey := fmt.Sprintf("%s (%s)", link.Platform, link.URL)
		if inv.store.AddProfile(linkKey, findings.Profile{
			Platform: link.Platform,
			URL:      link.URL,
			Source:   desc.Name,
		}) {
			inv.emit("found %s via %s", link.Platform, desc.Name)
		}
	}

	extract.Contacts(res.Body, desc.Name, inv.store)
}

// probeSite records personal-website domains that answer.
func (inv *Investigator) probeSite(ctx context.Context, domain string) {
	if ctx.Err() != nil {
		return
	}
	inv.probes.Add(1)
	if inv.prober.ProbeWebsite(ctx, domain) {
		if inv.store.AddWebsite(domain) {
			inv.emit("found website %s", domain)
		}
	}
}

// harvestCommitEmails surfaces commit author emails as near-authoritative
// email findings. Harvest failures are content errors, absorbed per item.
func (inv *Investigator) harvestCommitEmails(ctx context.Context, username string) {
	emails, err := inv.prober.HarvestGitHubEmails(ctx, username)
	if err != nil {
		logging.Debug("commit email harvest failed", "username", username, "error", err)
		return
	}
	for _, addr := range emails {
		if inv.store.AddEmail(findings.Email{
			Address:    addr,
			Source:     "GitHub commits",
			Confidence: 0.95,
			Validated:  true,
		}) {
			inv.emit("found commit email %s", addr)
		}
	}
}

// aggregate folds the generated candidates into the store: syntactically
// valid emails join the validated subset, invalid candidates are dropped
// silently, and location-derived phone patterns are attached.
func (inv *Investigator) aggregate(plan advisory.Plan) {
	validated := 0
	for _, addr := range plan.EmailPatterns {
		if !extract.ValidEmail(addr) {
			continue // ValidationError: dropped, not surfaced
		}
		if inv.store.AddEmail(findings.Email{
			Address:    addr,
			Source:     "Generated pattern",
			Confidence: 0.3,
			Validated:  true,
		}) {
			validated++
		}
	}
	if validated > 0 {
		inv.emit("validated %d generated email candidates", validated)
	}

	for _, p := range identgen.PhonePatterns(inv.opts.Location) {
		inv.store.AddPhone(p)
	}
}

func (inv *Investigator) setState(s State) {
	inv.state = s
	logging.Debug("investigation state", "state", s.String())
	if inv.opts.OnEvent != nil {
		inv.opts.OnEvent(Event{State: s, Message: s.String()})
	}
}

func (inv *Investigator) emit(format string, args ...interface{}) {
	if inv.opts.OnEvent == nil {
		return
	}
	inv.opts.OnEvent(Event{State: inv.state, Message: fmt.Sprintf(format, args...)})
}

// prefix returns at most n leading elements of s.
func prefix(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
