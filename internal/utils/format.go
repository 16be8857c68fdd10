package utils

import (
	"fmt"
	"strings"
)

// FormatChartValue renders a bar label for a value. Tables whose largest
// value is at most 100 (shares, percentages, rates) keep one decimal;
// everything else is rounded to whole units. Thousands get comma separators.
func FormatChartValue(value, tableMax float64) string {
	if tableMax <= 100 {
		return groupThousands(fmt.Sprintf("%.1f", value))
	}
	return groupThousands(fmt.Sprintf("%.0f", value))
}

// groupThousands inserts comma separators into the integer part of a
// formatted number, e.g. "27360.5" -> "27,360.5".
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
