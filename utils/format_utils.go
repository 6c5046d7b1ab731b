package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a dollar amount with thousands separators, the
// way the dashboard KPI cards display it.
func FormatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String()
}

// FormatPercent renders a signed percentage with two decimals.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}
