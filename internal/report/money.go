package report

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney renders a currency value with thousands separators and two
// decimal places, e.g. $1,234.56. Negative values render as -$1,234.56.
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(math.Round(v * 100))
	whole := cents / 100
	frac := cents % 100
	out := fmt.Sprintf("$%s.%02d", groupThousands(whole), frac)
	if neg {
		return "-" + out
	}
	return out
}

// FormatAxis renders a currency value for chart axes: thousands
// separators, no decimals, e.g. $1,234.
func FormatAxis(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	out := "$" + groupThousands(int64(math.Round(v)))
	if neg {
		return "-" + out
	}
	return out
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	if n < 0 {
		return "-" + groupThousands(int64(-n))
	}
	return groupThousands(int64(n))
}

func groupThousands(v int64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
