// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatSigned formats an integer with an explicit sign and comma grouping.
// e.g., 1234 -> "+1,234", -56 -> "-56", 0 -> "+0"
func FormatSigned(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return "+" + FormatNumber(n)
}

// FormatPct formats a 0-100 percentage with one decimal.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatSignedPct formats a 0-100 percentage delta with an explicit sign.
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

// FormatUSD formats a dollar amount with an explicit sign.
func FormatUSD(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}
