// Package progress keeps the streak, counter and badge state of the single
// user served by this process.
package progress

import (
	"sync"
	"time"
)

// UserProgress is the mutable engagement record. The zero value is the
// pristine state.
type UserProgress struct {
	StreakCount         int
	LastInteractionDate *time.Time
	TotalInteractions   int
	ThoughtsOrganized   int
	VoiceInteractions   int
	BriefingsViewed     int
	EarnedBadges        []BadgeID
}

// Snapshot is a read-only projection of UserProgress for reporting.
type Snapshot struct {
	StreakCount       int        `json:"streak_count"`
	EarnedBadges      []string   `json:"earned_badges"`
	TotalInteractions int        `json:"total_interactions"`
	ThoughtsOrganized int        `json:"thoughts_organized"`
	VoiceInteractions int        `json:"voice_interactions"`
	BriefingsViewed   int        `json:"briefings_viewed"`
	LastInteraction   *time.Time `json:"last_interaction,omitempty"`
}

type BadgeStatus struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Requirement int    `json:"requirement"`
}

// Engine owns a UserProgress and applies the update rules to it. All
// methods are safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	state UserProgress
	loc   *time.Location
}

type Option func(*Engine)

// WithLocation sets the time zone used to derive calendar dates.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{loc: time.Local}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecordInteraction advances the daily streak for an interaction at now.
// Several interactions on the same calendar day count once; a missed day
// restarts the streak at 1.
func (e *Engine) RecordInteraction(now time.Time) {
	if now.IsZero() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.civilDate(now)
	last := e.state.LastInteractionDate

	if last == nil {
		e.state.StreakCount = 1
		e.state.LastInteractionDate = &today
		e.evaluate(BadgeFirstStep)
		return
	}

	gap := daysBetween(*last, today)
	switch {
	case gap < 0:
		// clock went backwards; keep the later date
		return
	case gap == 0:
	case gap == 1:
		e.state.StreakCount++
		e.evaluateMetric(MetricStreakCount)
	default:
		e.state.StreakCount = 1
	}

	e.state.LastInteractionDate = &today
}

// IncrementCounter adds amount to a counter metric and evaluates the badges
// tied to it. streak_count is not a counter and is ignored here.
func (e *Engine) IncrementCounter(metric Metric, amount int) {
	if amount <= 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch metric {
	case MetricTotalInteractions:
		e.state.TotalInteractions += amount
	case MetricThoughtsOrganized:
		e.state.ThoughtsOrganized += amount
	case MetricVoiceInteractions:
		e.state.VoiceInteractions += amount
	case MetricBriefingsViewed:
		e.state.BriefingsViewed += amount
	default:
		return
	}
	e.evaluateMetric(metric)
}

// EvaluateBadge awards the badge if its metric has reached the threshold.
// It reports whether the badge was newly earned by this call.
func (e *Engine) EvaluateBadge(id BadgeID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.evaluate(id)
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.state.EarnedBadges))
	for _, id := range e.state.EarnedBadges {
		if b, ok := LookupBadge(id); ok {
			names = append(names, b.Name)
		}
	}

	var last *time.Time
	if e.state.LastInteractionDate != nil {
		d := *e.state.LastInteractionDate
		last = &d
	}

	return Snapshot{
		StreakCount:       e.state.StreakCount,
		EarnedBadges:      names,
		TotalInteractions: e.state.TotalInteractions,
		ThoughtsOrganized: e.state.ThoughtsOrganized,
		VoiceInteractions: e.state.VoiceInteractions,
		BriefingsViewed:   e.state.BriefingsViewed,
		LastInteraction:   last,
	}
}

// BadgeProgress reports every catalog badge in declaration order.
func (e *Engine) BadgeProgress() []BadgeStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]BadgeStatus, 0, len(Catalog))
	for _, b := range Catalog {
		out = append(out, BadgeStatus{
			Name:        b.Name,
			Description: b.Description,
			Earned:      e.hasBadge(b.ID),
			Requirement: b.Threshold,
		})
	}
	return out
}

// LatestBadge returns the display name of the most recently earned badge.
func (e *Engine) LatestBadge() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.state.EarnedBadges)
	if n == 0 {
		return "", false
	}
	b, ok := LookupBadge(e.state.EarnedBadges[n-1])
	return b.Name, ok
}

// Reset returns the engine to the pristine state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = UserProgress{}
}

func (e *Engine) evaluateMetric(metric Metric) {
	for _, b := range Catalog {
		if b.Metric == metric {
			e.evaluate(b.ID)
		}
	}
}

// evaluate must be called with mu held.
func (e *Engine) evaluate(id BadgeID) bool {
	b, ok := LookupBadge(id)
	if !ok || e.hasBadge(id) {
		return false
	}
	if e.metricValue(b.Metric) < b.Threshold {
		return false
	}
	e.state.EarnedBadges = append(e.state.EarnedBadges, id)
	return true
}

func (e *Engine) hasBadge(id BadgeID) bool {
	for _, earned := range e.state.EarnedBadges {
		if earned == id {
			return true
		}
	}
	return false
}

func (e *Engine) metricValue(metric Metric) int {
	switch metric {
	case MetricTotalInteractions:
		return e.state.TotalInteractions
	case MetricStreakCount:
		return e.state.StreakCount
	case MetricThoughtsOrganized:
		return e.state.ThoughtsOrganized
	case MetricVoiceInteractions:
		return e.state.VoiceInteractions
	case MetricBriefingsViewed:
		return e.state.BriefingsViewed
	}
	return 0
}

func (e *Engine) civilDate(t time.Time) time.Time {
	y, m, d := t.In(e.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween expects both dates to come from civilDate.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
