package albums

import (
	"strconv"
	"strings"
)

// FormatCount renders a count the way the gallery displays likes:
// 1500 -> "1.5K", 2000000 -> "2M", small values verbatim.
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return trimTrailingZero(float64(n)/1_000_000) + "M"
	case n >= 1000:
		return trimTrailingZero(float64(n)/1000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

func trimTrailingZero(v float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}
