package profile

import (
	"sort"
	"strings"
)

// BrandFilterSet tracks the user's explicit brand exclusions and
// preferences for the session. The two sets stay disjoint: preferring a
// brand clears it from the blocked set and vice versa.
type BrandFilterSet struct {
	blocked   map[string]struct{}
	preferred map[string]struct{}
}

func NewBrandFilterSet() *BrandFilterSet {
	return &BrandFilterSet{
		blocked:   make(map[string]struct{}),
		preferred: make(map[string]struct{}),
	}
}

func (b *BrandFilterSet) Block(brands ...string) {
	for _, brand := range brands {
		key := brandKey(brand)
		if key == "" {
			continue
		}
		b.blocked[key] = struct{}{}
		delete(b.preferred, key)
	}
}

func (b *BrandFilterSet) Prefer(brands ...string) {
	for _, brand := range brands {
		key := brandKey(brand)
		if key == "" {
			continue
		}
		b.preferred[key] = struct{}{}
		delete(b.blocked, key)
	}
}

// Allows reports whether a brand may appear in results. Blocking wins over
// preference; a non-empty preferred set restricts results to its members.
func (b *BrandFilterSet) Allows(brand string) bool {
	key := brandKey(brand)
	if _, blocked := b.blocked[key]; blocked {
		return false
	}
	if len(b.preferred) == 0 {
		return true
	}
	_, preferred := b.preferred[key]
	return preferred
}

func (b *BrandFilterSet) Blocked() []string   { return sortedKeys(b.blocked) }
func (b *BrandFilterSet) Preferred() []string { return sortedKeys(b.preferred) }

func (b *BrandFilterSet) Reset() {
	b.blocked = make(map[string]struct{})
	b.preferred = make(map[string]struct{})
}

func brandKey(brand string) string {
	return strings.ToLower(strings.TrimSpace(brand))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
