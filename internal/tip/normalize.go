package tip

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Plain decimal notation with an optional exponent. strconv.ParseFloat
// also takes "Inf", "NaN", hex floats and underscores; those are not
// amounts a user types into a bill field.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseAmount parses a bill amount. Leading and trailing spaces and ASCII
// control characters are ignored. Empty or invalid text yields 0.
// Negative values are returned as-is.
func ParseAmount(text string) float64 {
	return parseDecimal(text)
}

// ParsePercent parses a tip percentage with the same rules as ParseAmount.
// No bounds are enforced.
func ParsePercent(text string) float64 {
	return parseDecimal(text)
}

// ParsePeopleCount parses the number of people splitting the bill. Unlike
// the decimal fields it does not trim surrounding whitespace. Empty,
// invalid or out-of-range text yields 1. Zero and negative counts are
// returned unchanged.
func ParsePeopleCount(text string) int {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 1
	}
	return int(n)
}

// Normalize converts raw text into numeric inputs.
func Normalize(raw RawInput) NormalizedInput {
	return NormalizedInput{
		Amount:     ParseAmount(raw.Amount),
		TipPercent: ParsePercent(raw.TipPercent),
		People:     ParsePeopleCount(raw.People),
		RoundUp:    raw.RoundUp,
	}
}

// isPadding matches the characters number parsing skips around a value:
// space and everything below it.
func isPadding(r rune) bool {
	return r <= ' '
}

func parseDecimal(text string) float64 {
	text = strings.TrimFunc(text, isPadding)
	if !decimalPattern.MatchString(text) {
		return 0
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0
	}
	return v
}
