package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var msrpFigure = regexp.MustCompile(`\$\s*([\d,]+)`)

// ParseMSRPRange derives numeric price bounds from an MSRP range string of
// the form "$32,000" or "$32,000 - $41,500". A text with no dollar figure
// yields PriceUnknown for both bounds: a missing price must never read as
// free.
func ParseMSRPRange(s string) (min, max float64) {
	matches := msrpFigure.FindAllStringSubmatch(s, 2)
	if len(matches) == 0 {
		return PriceUnknown, PriceUnknown
	}

	min = parseFigure(matches[0][1])
	max = min
	if len(matches) > 1 {
		max = parseFigure(matches[1][1])
	}

	return min, max
}

func parseFigure(figure string) float64 {
	figure = strings.ReplaceAll(figure, ",", "")
	value, err := strconv.ParseFloat(figure, 64)
	if err != nil {
		return PriceUnknown
	}
	return value
}
