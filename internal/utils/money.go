package utils // shared formatting helpers

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders a price the way the storefront templates expect:
// rounded to whole units and grouped with a dot as thousands separator
// (common in Colombia), e.g. 15000 -> "15.000".  The currency symbol is
// left to the template.
func FormatPrice(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var b strings.Builder
		b.Grow(len(s) + len(s)/3)
		// Insert separators from the left.
		rem := len(s) % 3
		if rem == 0 {
			rem = 3
		}
		b.WriteString(s[:rem])
		for i := rem; i < len(s); i += 3 {
			b.WriteByte('.')
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
