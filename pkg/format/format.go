// Package format holds the pure field formatting helpers used when
// normalizing form input before it is persisted or rendered into a
// document. Every function degrades to an empty string or best-effort
// output on bad input; none of them return errors or panic.
package format

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// DOBPattern is the strict dd/mm/yyyy pattern used by date-of-birth fields.
// Conversion to words must only run once the whole pattern matches.
var DOBPattern = regexp.MustCompile(`^(0?[1-9]|[12][0-9]|3[01])/(0?[1-9]|1[0-2])/\d{4}$`)

// CapitalizeEveryWord uppercases the first character of every word in a
// sentence, leaving the rest of each word unchanged. Words are split on
// single spaces, so the word count of the input is preserved. Applying it
// twice gives the same result as applying it once.
func CapitalizeEveryWord(sentence string) string {
	if sentence == "" {
		return ""
	}

	words := strings.Split(sentence, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}

	return strings.Join(words, " ")
}

// FilterNonNumbers strips everything except digits and the first decimal
// point. A second decimal point is dropped, not an error.
func FilterNonNumbers(value string) string {
	var b strings.Builder
	seenPoint := false
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatAmount normalizes a raw amount string for display: non-numeric
// characters are removed, the fractional part is truncated (not rounded)
// to two digits, and thousands separators are inserted every three digits
// working right-to-left on the integer part.
func FormatAmount(value string) string {
	numeric := FilterNonNumbers(value)
	if numeric == "" {
		return ""
	}

	intPart := numeric
	fracPart := ""
	if i := strings.IndexByte(numeric, '.'); i >= 0 {
		intPart = numeric[:i]
		fracPart = numeric[i+1:]
		if len(fracPart) > 2 {
			fracPart = fracPart[:2]
		}
		fracPart = "." + fracPart
	}

	return groupThousands(intPart) + fracPart
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DateInWords converts a strict dd/mm/yyyy date into its written form,
// e.g. "1st January, 1990". Input that does not fully match the pattern
// yields an empty string so a partially typed date never produces output.
func DateInWords(date string) string {
	if !DOBPattern.MatchString(date) {
		return ""
	}

	parts := strings.Split(date, "/")
	day := atoi(parts[0])
	month := atoi(parts[1])

	return fmt.Sprintf("%d%s %s, %s", day, ordinalSuffix(day), monthNames[month-1], parts[2])
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
