// Package moneyfmt provides the input sanitizing and parsing used by
// currency and percentage form fields. Fields never reject input; invalid
// characters are stripped as typed and parsing failures surface as typed
// errors only where a derived figure genuinely needs the number.
package moneyfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// SanitizeDecimal strips every rune that cannot appear in a decimal amount,
// keeping at most one decimal point. This mirrors the on-change filtering of
// currency inputs: "1,2a3.4.5" becomes "123.45".
func SanitizeDecimal(raw string) string {
	var b strings.Builder
	seenPoint := false
	for _, r := range raw {
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

// ParseAmount parses a currency string such as "£12,500.40" into its numeric
// value. Empty input is a ParseError; callers treating blanks as zero should
// check first.
func ParseAmount(raw string) (float64, error) {
	cleaned := SanitizeDecimal(raw)
	if cleaned == "" || cleaned == "." {
		return 0, ParseError{Input: raw, Reason: "no numeric content"}
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ParseError{Input: raw, Reason: err.Error()}
	}
	return val, nil
}

// ParsePercent parses a percentage string such as "1.25%" into its numeric
// value.
func ParsePercent(raw string) (float64, error) {
	return ParseAmount(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
}

// FormatPercent renders a percentage to two decimal places with the suffix,
// e.g. "1.25%".
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// FormatAmount renders a currency amount to two decimal places without a
// symbol; the presentation layer owns the symbol.
func FormatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// Mean averages the percentage strings that parse, ignoring blanks and
// malformed entries. It returns false when nothing parsed.
func Mean(percents []string) (float64, bool) {
	sum := 0.0
	count := 0
	for _, p := range percents {
		if strings.TrimSpace(p) == "" {
			continue
		}
		val, err := ParsePercent(p)
		if err != nil {
			continue
		}
		sum += val
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
