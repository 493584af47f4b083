package matching

import (
	"regexp"
	"strconv"
	"strings"
)

var budgetLiteral = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([kK])?`)

// ParseBudget extracts a numeric ceiling from free-text budget answers like
// "under $50k, maybe less" or "25,000". Currency symbols and thousands
// separators are stripped, a "k" suffix multiplies the leading number by
// 1000, and the first number found wins. Unparsable text falls back to the
// provided default.
func ParseBudget(text string, fallback float64) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(text)

	match := budgetLiteral.FindStringSubmatch(cleaned)
	if match == nil {
		return fallback
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return fallback
	}

	if match[2] != "" {
		value *= 1000
	}

	return value
}
