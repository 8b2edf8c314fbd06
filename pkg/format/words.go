package format

import (
	"math"
	"strings"
)

// WordsConverter spells out currency amounts in English with configurable
// major and minor unit names. The written form carries no trailing "Only"
// suffix. No Go library in use elsewhere in this codebase offers the
// Naira/Kobo unit remapping, so the conversion lives here.
type WordsConverter struct {
	MajorUnit string
	MinorUnit string
}

// NewWordsConverter returns a converter for the default Naira/Kobo units.
func NewWordsConverter() *WordsConverter {
	return &WordsConverter{MajorUnit: "Naira", MinorUnit: "Kobo"}
}

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// Seven scales cover every int64: the largest value has 19 digits, which
// is at most seven three-digit groups.
var scales = [...]string{
	"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion",
	"Quintillion",
}

// AmountInWords converts an amount in minor units (kobo) to words,
// e.g. 123456 -> "One Thousand Two Hundred Thirty Four Naira and
// Fifty Six Kobo". A zero minor part is omitted.
func (c *WordsConverter) AmountInWords(minorUnits int64) string {
	if minorUnits == math.MinInt64 {
		// Cannot be negated; shave one kobo rather than overflow.
		minorUnits++
	}
	negative := minorUnits < 0
	if negative {
		minorUnits = -minorUnits
	}

	major := minorUnits / 100
	minor := minorUnits % 100

	var parts []string
	if negative {
		parts = append(parts, "Minus")
	}
	parts = append(parts, c.Integer(major), c.MajorUnit)
	if minor > 0 {
		parts = append(parts, "and", c.Integer(minor), c.MinorUnit)
	}

	return strings.Join(parts, " ")
}

// Integer spells out a non-negative integer in English words.
func (c *WordsConverter) Integer(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n == math.MinInt64 {
		n++
	}
	if n < 0 {
		return "Minus " + c.Integer(-n)
	}

	// Break into groups of three digits, least significant first.
	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		parts = append(parts, hundredsInWords(groups[i]))
		if scales[i] != "" {
			parts = append(parts, scales[i])
		}
	}

	return strings.Join(parts, " ")
}

func hundredsInWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, ones[n%10])
		}
	case n > 0:
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}
