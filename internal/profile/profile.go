package profile

// Profile holds the answers collected so far. A field answered once is
// locked and stays locked until an explicit unlock or a session reset.
type Profile struct {
	answers map[string]string
	locked  map[string]bool
}

func NewProfile() *Profile {
	return &Profile{
		answers: make(map[string]string),
		locked:  make(map[string]bool),
	}
}

// Set stores an answer for a canonical field and locks it. Unknown field
// names are rejected so the profile never carries a key outside the
// enumeration.
func (p *Profile) Set(field, answer string) bool {
	field = CanonicalField(field)
	if field == "" {
		return false
	}

	p.answers[field] = answer
	p.locked[field] = true
	return true
}

// Get returns the stored answer for a field, empty when unanswered.
func (p *Profile) Get(field string) string {
	return p.answers[CanonicalField(field)]
}

func (p *Profile) Locked(field string) bool {
	return p.locked[CanonicalField(field)]
}

// Unlock clears the lock and stored value for exactly one field. It
// reports whether anything changed; unknown fields are a no-op.
func (p *Profile) Unlock(field string) bool {
	field = CanonicalField(field)
	if field == "" || !p.locked[field] {
		return false
	}

	delete(p.answers, field)
	delete(p.locked, field)
	return true
}

func (p *Profile) LockedCount() int {
	return len(p.locked)
}

// Snapshot returns a copy of the answered fields, safe to hand to
// collaborators.
func (p *Profile) Snapshot() map[string]string {
	snapshot := make(map[string]string, len(p.answers))
	for field, answer := range p.answers {
		snapshot[field] = answer
	}
	return snapshot
}

// Reset discards every answer and lock.
func (p *Profile) Reset() {
	p.answers = make(map[string]string)
	p.locked = make(map[string]bool)
}
