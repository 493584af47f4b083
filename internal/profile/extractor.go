package profile

import "strings"

// Action classifies what a free-text message asks the session to do.
type Action int

const (
	// ActionAnswer records the text against the current interview field.
	ActionAnswer Action = iota
	// ActionUnlock re-opens a previously answered field.
	ActionUnlock
	// ActionBlockBrand excludes a brand from all future results.
	ActionBlockBrand
	// ActionPreferBrand restricts results to the preferred brands.
	ActionPreferBrand
)

// Extraction is the interpretation of one free-text message.
type Extraction struct {
	Action Action
	// Field is set for ActionUnlock.
	Field string
	// Value carries the answer text or the brand name.
	Value string
}

// FieldExtractor interprets a raw user message in the context of the field
// currently being asked. Implementations stay outside the matcher's
// deterministic path.
type FieldExtractor interface {
	Extract(raw, currentField string) Extraction
}

// PromptedExtractor attributes every message to the field whose question
// is on screen. This is the exact-field-prompt interview style.
type PromptedExtractor struct{}

func NewPromptedExtractor() *PromptedExtractor { return &PromptedExtractor{} }

func (e *PromptedExtractor) Extract(raw, currentField string) Extraction {
	return Extraction{
		Action: ActionAnswer,
		Field:  currentField,
		Value:  strings.TrimSpace(raw),
	}
}

// KeywordExtractor sniffs free-form messages for change-my-field and brand
// inclusion/exclusion statements before falling back to a plain answer.
type KeywordExtractor struct {
	// Brands lists the catalog's known brand names so brand statements
	// can be recognized without guessing.
	Brands []string
}

func NewKeywordExtractor(brands []string) *KeywordExtractor {
	return &KeywordExtractor{Brands: brands}
}

var changePrefixes = []string{"change my ", "change ", "update my ", "update "}

var blockPrefixes = []string{"exclude ", "avoid ", "no ", "not ", "block "}

var preferPrefixes = []string{"prefer ", "only ", "just "}

func (e *KeywordExtractor) Extract(raw, currentField string) Extraction {
	text := strings.TrimSpace(raw)
	lower := strings.ToLower(text)

	for _, prefix := range changePrefixes {
		rest, ok := strings.CutPrefix(lower, prefix)
		if !ok {
			continue
		}
		if field := CanonicalField(strings.TrimSpace(rest)); field != "" {
			return Extraction{Action: ActionUnlock, Field: field}
		}
	}

	if brand, ok := e.matchBrand(lower, blockPrefixes); ok {
		return Extraction{Action: ActionBlockBrand, Value: brand}
	}
	if brand, ok := e.matchBrand(lower, preferPrefixes); ok {
		return Extraction{Action: ActionPreferBrand, Value: brand}
	}

	return Extraction{Action: ActionAnswer, Field: currentField, Value: text}
}

func (e *KeywordExtractor) matchBrand(lower string, prefixes []string) (string, bool) {
	for _, prefix := range prefixes {
		rest, ok := strings.CutPrefix(lower, prefix)
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		for _, brand := range e.Brands {
			if strings.EqualFold(brand, rest) {
				return brand, true
			}
		}
	}
	return "", false
}
