package utils

import (
	"math"
	"strings"
	"time"
)

// ParseDate parses a YYYY-MM-DD board date
func ParseDate(value string) (time.Time, bool) {
	t, err := time.Parse(DATE_LAYOUT, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WithinDays reports whether two dates are at most days apart. A negative
// window is treated as zero.
func WithinDays(a, b time.Time, days int) bool {
	if days < 0 {
		days = 0
	}
	apart := math.Abs(a.Sub(b).Hours()) / 24
	return apart <= float64(days)
}

// ContainsFold is a case-insensitive substring match. An empty needle matches.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// RoundHalfUp rounds to the nearest integer with .5 going up, matching how the
// dashboard displays averages.
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
