package offer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"skybook/pkg/format"
)

// leading decimal number, the way browsers read "129.90 EUR" as 129.9
var amountPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseAmount reads a provider money amount. A missing amount reads as
// zero; anything without a leading number is not parseable.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	m := amountPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseTimestamp(s string) (time.Time, bool) {
	return format.ParseTimestamp(s)
}
