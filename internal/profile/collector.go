package profile

import (
	"fmt"
	"strings"
)

// AcceptFunc is an optional per-field acceptance check. A rejected answer
// re-prompts the same field without touching any lock.
type AcceptFunc func(answer string) bool

// CollectorConfig tunes the interview. The zero value asks every canonical
// field in enumeration order and completes once all of them are locked.
type CollectorConfig struct {
	// Fields overrides the interview field set. Defaults to Fields().
	Fields []string
	// Weights is consulted when PrioritizeByWeight is set. Defaults to
	// DefaultWeights().
	Weights map[string]float64
	// CompletionThreshold is the number of locked fields at which the
	// interview is considered complete. Zero means all fields.
	CompletionThreshold int
	// PrioritizeByWeight asks the unlocked field with the highest weight
	// first instead of following the static order.
	PrioritizeByWeight bool
	// Accept holds optional per-field acceptance checks.
	Accept map[string]AcceptFunc
}

// AdvanceResult reports what a submitted answer did to the interview.
type AdvanceResult struct {
	// Accepted is false when the answer was rejected and the same field
	// must be re-prompted.
	Accepted bool
	// Field is the field the answer was recorded under (or re-prompted).
	Field string
	// Complete mirrors IsComplete after the submission.
	Complete bool
	// Next is the next field to ask, empty when every field is locked.
	Next string
}

// Collector walks the profile fields one answer per turn, never re-asking
// a locked field.
type Collector struct {
	profile   *Profile
	fields    []string
	weights   map[string]float64
	threshold int
	byWeight  bool
	accept    map[string]AcceptFunc

	// pending is the field re-opened by the latest unlock request. It is
	// asked next regardless of ordering, then cleared.
	pending string
}

func NewCollector(profile *Profile, cfg *CollectorConfig) (*Collector, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if cfg == nil {
		cfg = &CollectorConfig{}
	}

	source := cfg.Fields
	if len(source) == 0 {
		source = Fields()
	}
	fields := make([]string, len(source))
	for i, field := range source {
		canonical := CanonicalField(field)
		if canonical == "" {
			return nil, fmt.Errorf("unknown profile field %q", field)
		}
		fields[i] = canonical
	}

	weights := cfg.Weights
	if weights == nil {
		weights = DefaultWeights()
	}

	threshold := cfg.CompletionThreshold
	if threshold <= 0 {
		threshold = len(fields)
	}
	if threshold > len(fields) {
		return nil, fmt.Errorf("completion threshold %d exceeds field count %d", threshold, len(fields))
	}

	return &Collector{
		profile:   profile,
		fields:    fields,
		weights:   weights,
		threshold: threshold,
		byWeight:  cfg.PrioritizeByWeight,
		accept:    cfg.Accept,
	}, nil
}

// Current returns the field to ask next. ok is false once every field is
// locked.
func (c *Collector) Current() (string, bool) {
	if c.pending != "" && !c.profile.Locked(c.pending) {
		return c.pending, true
	}

	if c.byWeight {
		return c.heaviestUnlocked()
	}

	for _, field := range c.fields {
		if !c.profile.Locked(field) {
			return field, true
		}
	}
	return "", false
}

// SubmitAnswer records free text against the current field and advances.
// Blank input re-prompts without consuming the turn.
func (c *Collector) SubmitAnswer(raw string) AdvanceResult {
	field, ok := c.Current()
	if !ok {
		return AdvanceResult{Accepted: false, Complete: c.IsComplete()}
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		return AdvanceResult{Accepted: false, Field: field, Complete: c.IsComplete(), Next: field}
	}

	if fn, exists := c.accept[field]; exists && fn != nil && !fn(answer) {
		return AdvanceResult{Accepted: false, Field: field, Complete: c.IsComplete(), Next: field}
	}

	c.profile.Set(field, answer)
	if c.pending == field {
		c.pending = ""
	}

	next, _ := c.Current()
	return AdvanceResult{
		Accepted: true,
		Field:    field,
		Complete: c.IsComplete(),
		Next:     next,
	}
}

// RequestUnlock re-opens exactly one field so it is asked again next. It
// reports whether anything changed; unknown or unanswered fields are a
// no-op.
func (c *Collector) RequestUnlock(field string) bool {
	if !c.profile.Unlock(field) {
		return false
	}

	c.pending = CanonicalField(field)
	return true
}

// Reset forgets the pending unlock so the interview starts from the top
// again. The profile itself is reset separately.
func (c *Collector) Reset() {
	c.pending = ""
}

// IsComplete reports whether enough fields are locked.
func (c *Collector) IsComplete() bool {
	return c.profile.LockedCount() >= c.threshold
}

// Fields returns the interview field set in static order.
func (c *Collector) Fields() []string {
	fields := make([]string, len(c.fields))
	copy(fields, c.fields)
	return fields
}

func (c *Collector) heaviestUnlocked() (string, bool) {
	best := ""
	bestWeight := -1.0
	for _, field := range c.fields {
		if c.profile.Locked(field) {
			continue
		}
		if weight := c.weights[field]; weight > bestWeight {
			best = field
			bestWeight = weight
		}
	}
	return best, best != ""
}
